package clock

import "time"

// Clock источник времени, подменяемый в тестах
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystem() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }

// Stepping advances by Step on every call.
type Stepping struct {
	T    time.Time
	Step time.Duration
}

func (s *Stepping) Now() time.Time {
	now := s.T
	s.T = s.T.Add(s.Step)
	return now
}
