// Package counter animates a displayed integer from zero to a target over a
// fixed duration split into a fixed number of steps.
//
// Every step adds target/steps to an accumulator. Intermediate frames show the
// floor of the accumulator; the first frame where the accumulator reaches the
// target shows the target exactly and ends the animation.
package counter

import (
	"context"
	"math"
	"strconv"
	"time"
)

const (
	DefaultDuration = 2 * time.Second
	DefaultSteps    = 60
)

// Config controls the cadence of an animation.
type Config struct {
	Duration time.Duration
	Steps    int
}

// DefaultConfig returns the 2s / 60 step cadence.
func DefaultConfig() Config {
	return Config{Duration: DefaultDuration, Steps: DefaultSteps}
}

func (c Config) normalized() Config {
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Steps <= 0 {
		c.Steps = DefaultSteps
	}
	return c
}

// Interval is the time between two frames.
func (c Config) Interval() time.Duration {
	c = c.normalized()
	if d := c.Duration / time.Duration(c.Steps); d > 0 {
		return d
	}
	return time.Nanosecond
}

// Format renders a displayed value with its suffix, e.g. "30+".
func Format(value int, suffix string) string {
	return strconv.Itoa(value) + suffix
}

type stepper struct {
	target    int
	increment float64
	current   float64
	done      bool
}

func newStepper(target, steps int) stepper {
	if target < 0 {
		target = 0
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	return stepper{target: target, increment: float64(target) / float64(steps)}
}

// next advances one step and returns the value to display.
func (s *stepper) next() (int, bool) {
	if s.done {
		return s.target, true
	}
	s.current += s.increment
	if s.current >= float64(s.target) {
		s.done = true
		return s.target, true
	}
	return int(math.Floor(s.current)), false
}

// Frames returns every value displayed after activation, in order.
// The last element is always target.
func Frames(target, steps int) []int {
	s := newStepper(target, steps)
	var out []int
	for {
		v, done := s.next()
		out = append(out, v)
		if done {
			return out
		}
	}
}

// Counter runs one animation on a wall-clock ticker.
type Counter struct {
	target int
	suffix string
	cfg    Config
}

// New creates a Counter for target. Negative targets are treated as zero.
func New(target int, suffix string, cfg Config) *Counter {
	if target < 0 {
		target = 0
	}
	return &Counter{target: target, suffix: suffix, cfg: cfg.normalized()}
}

func (c *Counter) Target() int    { return c.target }
func (c *Counter) Suffix() string { return c.suffix }

// Run calls onFrame once per tick until the target is displayed or ctx is
// done. The ticker is stopped on every return path.
func (c *Counter) Run(ctx context.Context, onFrame func(value int)) error {
	s := newStepper(c.target, c.cfg.Steps)
	ticker := time.NewTicker(c.cfg.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			v, done := s.next()
			if onFrame != nil {
				onFrame(v)
			}
			if done {
				return nil
			}
		}
	}
}
