package domain

import "time"

// LearnSession groups the attempts made between program start and exit.
// It is created at session start, passed explicitly to each call that
// needs it, and discarded at process exit; nothing about it is global.
type LearnSession struct {
	ID        string
	StartedAt time.Time
	Attempts  int
}

// NewLearnSession starts a fresh session.
func NewLearnSession() *LearnSession {
	return &LearnSession{
		ID:        generateID(),
		StartedAt: time.Now(),
	}
}

// RecordAttempt counts a finished attempt against the session.
func (s *LearnSession) RecordAttempt() {
	s.Attempts++
}

// Duration returns how long the session has been running.
func (s *LearnSession) Duration() time.Duration {
	return time.Since(s.StartedAt)
}
