package timer

import (
	"fmt"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Engine owns a State and feeds it events stamped by its Clock. It is not
// safe for concurrent use; callers serialize events on one goroutine.
type Engine struct {
	state State
	clock Clock
}

func New(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock
	}
	return &Engine{
		state: Initial(),
		clock: clock,
	}
}

func (e *Engine) apply(ev Event) Effect {
	var eff Effect
	e.state, eff = Transition(e.state, ev, e.clock.Now())
	return eff
}

func (e *Engine) IncrementSession() { e.apply(IncrementSession) }
func (e *Engine) DecrementSession() { e.apply(DecrementSession) }
func (e *Engine) IncrementRest()    { e.apply(IncrementRest) }
func (e *Engine) DecrementRest()    { e.apply(DecrementRest) }
func (e *Engine) StartStop()        { e.apply(StartStop) }

// Reset restores the initial state. The returned effect asks the caller to
// silence and rewind the alert.
func (e *Engine) Reset() Effect {
	return e.apply(Reset)
}

// Tick recomputes the remaining time from the deadline and switches phase
// when it has run out. At most one phase change happens per call.
func (e *Engine) Tick() Effect {
	return e.apply(Tick)
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Running() bool {
	return e.state.Running
}

// Display is the read-only projection rendered by the presentation layer.
type Display struct {
	SessionMinutes int
	RestMinutes    int
	Label          string
	TimeLeft       string
	Running        bool
	Active         bool
}

func (e *Engine) Display() Display {
	return Project(e.state)
}

func Project(s State) Display {
	return Display{
		SessionMinutes: int(s.SessionLength / time.Minute),
		RestMinutes:    int(s.RestLength / time.Minute),
		Label:          s.Phase.String(),
		TimeLeft:       FormatRemaining(s.TimeLeft),
		Running:        s.Running,
		Active:         s.Active,
	}
}

// FormatRemaining renders d as mm:ss, truncating sub-second remainders.
// Non-positive durations render as 00:00.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00"
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
