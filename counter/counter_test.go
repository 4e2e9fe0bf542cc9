package counter

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFramesEndAtTarget(t *testing.T) {
	for _, target := range []int{0, 1, 7, 10, 18, 30, 59, 60, 61, 1000, 10_000_000} {
		frames := Frames(target, DefaultSteps)
		if len(frames) == 0 {
			t.Fatalf("target %d: no frames", target)
		}
		if last := frames[len(frames)-1]; last != target {
			t.Errorf("target %d: last frame = %d", target, last)
		}
		prev := 0
		for i, v := range frames {
			if v < prev {
				t.Errorf("target %d: frame %d decreased from %d to %d", target, i, prev, v)
			}
			if v < 0 || v > target {
				t.Errorf("target %d: frame %d out of range: %d", target, i, v)
			}
			prev = v
		}
	}
}

func TestFramesIntermediateAreFloor(t *testing.T) {
	frames := Frames(30, 60)
	if len(frames) != 60 {
		t.Fatalf("frames = %d, want 60", len(frames))
	}
	// 0.5 per step
	for i, v := range frames[:len(frames)-1] {
		want := (i + 1) / 2
		if v != want {
			t.Fatalf("frame %d = %d, want %d", i, v, want)
		}
	}
}

func TestFramesZeroTarget(t *testing.T) {
	frames := Frames(0, 60)
	if len(frames) != 1 || frames[0] != 0 {
		t.Fatalf("unexpected frames for zero target: %v", frames)
	}
}

func TestFramesNegativeTargetClamped(t *testing.T) {
	frames := Frames(-5, 60)
	if len(frames) != 1 || frames[0] != 0 {
		t.Fatalf("unexpected frames for negative target: %v", frames)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(30, "+"); got != "30+" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format(10, "M+"); got != "10M+" {
		t.Fatalf("Format = %q", got)
	}
}

func TestConfigInterval(t *testing.T) {
	if got := DefaultConfig().Interval(); got != 2*time.Second/60 {
		t.Fatalf("default interval = %s", got)
	}
	if got := (Config{}).Interval(); got != 2*time.Second/60 {
		t.Fatalf("zero config interval = %s", got)
	}
	if got := (Config{Duration: 1, Steps: 60}).Interval(); got <= 0 {
		t.Fatalf("interval must be positive, got %s", got)
	}
}

func TestCounterRunReachesTarget(t *testing.T) {
	c := New(30, "+", Config{Duration: 20 * time.Millisecond, Steps: 10})

	var frames []int
	if err := c.Run(context.Background(), func(v int) { frames = append(frames, v) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("frames = %v", frames)
	}
	last := frames[len(frames)-1]
	if got := Format(last, c.Suffix()); got != "30+" {
		t.Fatalf("final display = %q, want %q", got, "30+")
	}
}

func TestCounterRunCancelled(t *testing.T) {
	c := New(30, "+", Config{Duration: time.Hour, Steps: 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := c.Run(ctx, func(int) { calls++ })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no frames after cancel, got %d", calls)
	}
}
