package entities

import "time"

// Registration is unique per (StudentID, EventID). Attended only ever flips
// from false to true.
type Registration struct {
	ID           string
	StudentID    string
	EventID      string
	RegisteredAt time.Time
	Attended     bool
}
