package entities

import "time"

// Layouts of the calendar fields carried by an Event.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type EventType string

const (
	EventTypeWorkshop EventType = "Workshop"
	EventTypeFest     EventType = "Fest"
	EventTypeSeminar  EventType = "Seminar"
)

// EventTypes lists the accepted event types in display order.
var EventTypes = []EventType{EventTypeWorkshop, EventTypeFest, EventTypeSeminar}

func (t EventType) Valid() bool {
	switch t {
	case EventTypeWorkshop, EventTypeFest, EventTypeSeminar:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

type Event struct {
	ID          string
	Name        string
	Type        EventType
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, 24h
	Location    string
	Description string
	MaxCapacity int
	Status      EventStatus
	CreatedAt   time.Time
}

func (e *Event) IsCompleted() bool {
	return e.Status == StatusCompleted
}

// Day parses Date. The zero time is returned for malformed seed data so that
// such events sort first instead of failing the whole view.
func (e *Event) Day() time.Time {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EventDetails is an event together with the registrations and feedback that
// reference it. Registrations and feedback are stored once; this value is
// assembled by lookup and never written back.
type EventDetails struct {
	Event
	Registrations []Registration
	Feedback      []Feedback
}

// Attendees returns the IDs of students whose registration is marked attended,
// in registration order.
func (d *EventDetails) Attendees() []string {
	out := make([]string, 0, len(d.Registrations))
	for _, r := range d.Registrations {
		if r.Attended {
			out = append(out, r.StudentID)
		}
	}
	return out
}

func (d *EventDetails) HasAttendee(studentID string) bool {
	for _, r := range d.Registrations {
		if r.Attended && r.StudentID == studentID {
			return true
		}
	}
	return false
}

// AvailableSpots may be negative for seed data registered past capacity.
func (d *EventDetails) AvailableSpots() int {
	return d.MaxCapacity - len(d.Registrations)
}
