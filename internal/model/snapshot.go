package model

import "strings"

// StatusSnapshot is one decoded status response. Each snapshot replaces the
// previous one on screen; snapshots are never merged.
type StatusSnapshot struct {
	Messages   []string `json:"messages"`
	InProgress bool     `json:"in_progress"`
	Seq        uint64   `json:"-"` // poll tick that produced it
}

// Text returns the messages joined one per line
func (s *StatusSnapshot) Text() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.Messages, "\n")
}

// IsTerminal returns true when the backend reports the job is over
func (s *StatusSnapshot) IsTerminal() bool {
	return s != nil && !s.InProgress
}
