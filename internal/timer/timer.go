package timer

import (
	"time"
)

const (
	DefaultSession = 25 * time.Minute
	DefaultRest    = 5 * time.Minute

	MinLength = time.Minute
	MaxLength = 60 * time.Minute

	// TickInterval is the cadence the ticker drives Tick at. It doubles as
	// the expiry threshold: a phase ends once less than one tick remains.
	TickInterval = 100 * time.Millisecond
)

type Phase int

const (
	Session Phase = iota
	Rest
)

func (p Phase) String() string {
	if p == Rest {
		return "Rest"
	}
	return "Session"
}

// Other returns the phase that follows p.
func (p Phase) Other() Phase {
	if p == Session {
		return Rest
	}
	return Session
}

type Event int

const (
	IncrementSession Event = iota
	DecrementSession
	IncrementRest
	DecrementRest
	StartStop
	Reset
	Tick
)

// Effect reports side effects the caller must perform after a transition.
type Effect uint8

const (
	EffectPhaseChanged Effect = 1 << iota
	EffectAlertReset
)

func (e Effect) Has(f Effect) bool {
	return e&f != 0
}

// State is the complete timer state. Deadline is only meaningful while
// Running.
type State struct {
	SessionLength time.Duration
	RestLength    time.Duration
	TimeLeft      time.Duration
	Deadline      time.Time
	Running       bool
	Active        bool
	Phase         Phase
}

func Initial() State {
	return State{
		SessionLength: DefaultSession,
		RestLength:    DefaultRest,
		TimeLeft:      DefaultSession,
		Phase:         Session,
	}
}

// Length returns the configured length of phase p.
func (s State) Length(p Phase) time.Duration {
	if p == Rest {
		return s.RestLength
	}
	return s.SessionLength
}

// Transition applies ev to s at instant now and returns the new state.
func Transition(s State, ev Event, now time.Time) (State, Effect) {
	switch ev {
	case IncrementSession:
		return s.adjust(Session, time.Minute), 0
	case DecrementSession:
		return s.adjust(Session, -time.Minute), 0
	case IncrementRest:
		return s.adjust(Rest, time.Minute), 0
	case DecrementRest:
		return s.adjust(Rest, -time.Minute), 0
	case StartStop:
		return s.startStop(now), 0
	case Reset:
		return Initial(), EffectAlertReset
	case Tick:
		return s.tick(now)
	}
	return s, 0
}

func (s State) adjust(p Phase, delta time.Duration) State {
	if s.Active {
		return s
	}
	length := s.Length(p) + delta
	if length < MinLength || length > MaxLength {
		return s
	}
	if p == Rest {
		s.RestLength = length
	} else {
		s.SessionLength = length
	}
	if s.Phase == p {
		s.TimeLeft = length
	}
	return s
}

func (s State) startStop(now time.Time) State {
	if !s.Active {
		s.Active = true
		s.Phase = Session
		s.TimeLeft = s.SessionLength
	}
	if s.Running {
		s.Running = false
		s.Deadline = time.Time{}
		return s
	}
	s.Deadline = now.Add(s.TimeLeft)
	s.Running = true
	return s
}

func (s State) tick(now time.Time) (State, Effect) {
	if !s.Running || s.Deadline.IsZero() {
		return s, 0
	}
	s.TimeLeft = s.Deadline.Sub(now)
	if s.TimeLeft >= TickInterval {
		return s, 0
	}
	s.Phase = s.Phase.Other()
	s.TimeLeft = s.Length(s.Phase)
	s.Deadline = now.Add(s.TimeLeft)
	return s, EffectPhaseChanged
}
