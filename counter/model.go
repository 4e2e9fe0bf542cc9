package counter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the counter with the matching ID.
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// Model is a bubbletea component showing one animated statistic.
type Model struct {
	id      int
	tag     int
	cfg     Config
	target  int
	suffix  string
	label   string
	step    stepper
	value   int
	running bool
	done    bool
}

// NewModel creates an inactive counter displaying 0.
func NewModel(target int, suffix, label string, cfg Config) Model {
	if target < 0 {
		target = 0
	}
	cfg = cfg.normalized()
	return Model{
		id:     nextID(),
		cfg:    cfg,
		target: target,
		suffix: suffix,
		label:  label,
		step:   newStepper(target, cfg.Steps),
	}
}

func (m Model) ID() int                 { return m.id }
func (m Model) Value() int              { return m.value }
func (m Model) Label() string           { return m.label }
func (m Model) Running() bool           { return m.running }
func (m Model) Done() bool              { return m.done }
func (m Model) Interval() time.Duration { return m.cfg.Interval() }

// Start activates the counter from zero and schedules the first tick.
func (m Model) Start() (Model, tea.Cmd) {
	m.step = newStepper(m.target, m.cfg.Steps)
	m.value = 0
	m.done = false
	m.running = true
	m.tag++
	return m, m.tick()
}

// Stop deactivates the counter. A tick already in flight is dropped when it
// arrives and no further tick is scheduled.
func (m Model) Stop() Model {
	m.running = false
	m.tag++
	return m
}

// Update handles TickMsg values addressed to this counter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if tick.ID != m.id || tick.tag != m.tag || !m.running {
		return m, nil
	}

	v, done := m.step.next()
	m.value = v
	if done {
		m.running = false
		m.done = true
		return m, nil
	}
	return m, m.tick()
}

// View renders the value with its suffix.
func (m Model) View() string {
	return Format(m.value, m.suffix)
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.cfg.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id, tag: tag}
	})
}
