// Package dialog models the user-facing confirmation and notification
// prompts as injected capabilities, so the state machines stay testable
// without a UI host.
package dialog

import "github.com/rs/zerolog"

// Confirmer answers a blocking yes/no prompt. Every delete goes through one.
type Confirmer interface {
	Confirm(message string) bool
}

// Notifier surfaces a one-way message to the user.
type Notifier interface {
	Notify(message string)
}

// Answer is a fixed responder. The HTTP layer wraps the caller's explicit
// confirm flag in one; tests use Answer(true) / Answer(false) directly.
type Answer bool

func (a Answer) Confirm(string) bool { return bool(a) }

// Script replays queued answers and records every prompt it was asked.
type Script struct {
	Answers []bool
	Prompts []string
}

func (s *Script) Confirm(message string) bool {
	s.Prompts = append(s.Prompts, message)
	if len(s.Answers) == 0 {
		return false
	}
	ans := s.Answers[0]
	s.Answers = s.Answers[1:]
	return ans
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Notify(message string) {
	n.Log.Info().Str("component", "dialog").Msg(message)
}

// Silent drops notifications.
type Silent struct{}

func (Silent) Notify(string) {}
