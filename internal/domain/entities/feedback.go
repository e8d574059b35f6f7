package entities

import "time"

const (
	MinRating         = 1
	MaxRating         = 5
	MaxCommentsLength = 500
)

type Feedback struct {
	ID          string
	StudentID   string
	EventID     string
	Rating      int
	Comments    string
	SubmittedAt time.Time
}
