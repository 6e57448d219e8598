// Package quiz holds the typing quiz session state and its scoring.
package quiz

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Session tracks one attempt at typing a word. It is frozen once submitted.
type Session struct {
	clock       clockwork.Clock
	typed       []rune
	backspaces  int
	startedAt   time.Time
	submittedAt time.Time
}

// NewSession starts a session at the clock's current time.
// A nil clock uses real time.
func NewSession(clock clockwork.Clock) *Session {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Session{clock: clock, startedAt: clock.Now()}
}

// Append adds typed runes to the end of the buffer.
func (s *Session) Append(runes ...rune) {
	if s.Submitted() {
		return
	}
	s.typed = append(s.typed, runes...)
}

// DeleteLast removes the last rune and counts a backspace, even when the
// buffer is already empty.
func (s *Session) DeleteLast() {
	if s.Submitted() {
		return
	}
	s.backspaces++
	if len(s.typed) > 0 {
		s.typed = s.typed[:len(s.typed)-1]
	}
}

// Submit freezes the session and records the submit time.
func (s *Session) Submit() {
	if s.Submitted() {
		return
	}
	s.submittedAt = s.clock.Now()
}

// Submitted reports whether Submit has been called.
func (s *Session) Submitted() bool {
	return !s.submittedAt.IsZero()
}

// Text returns the typed text.
func (s *Session) Text() string {
	return string(s.typed)
}

// Backspaces returns the number of delete presses.
func (s *Session) Backspaces() int {
	return s.backspaces
}

// StartedAt returns when the session started.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Elapsed returns the time from start to submit, or to now while still open.
func (s *Session) Elapsed() time.Duration {
	end := s.submittedAt
	if end.IsZero() {
		end = s.clock.Now()
	}
	return end.Sub(s.startedAt)
}
