package entities

import "time"

type Student struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// StudentDetails is a student with the event IDs derived from its
// registrations. AttendedEvents is always a subset of Registrations.
type StudentDetails struct {
	Student
	Registrations  []string
	AttendedEvents []string
}

// Session identifies the acting student for student-side mutations.
type Session struct {
	StudentID string
	Locale    string
}
