// Package fixtures loads the demo data set into the in-memory repositories.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

//go:embed seed.toml
var defaultSeed []byte

type Seed struct {
	Students      []Student      `toml:"students"`
	Events        []Event        `toml:"events"`
	Registrations []Registration `toml:"registrations"`
	Feedback      []Feedback     `toml:"feedback"`
}

type Student struct {
	ID        string    `toml:"id"`
	Name      string    `toml:"name"`
	Email     string    `toml:"email"`
	CreatedAt time.Time `toml:"created_at"`
}

// Event carries either Date or DayOffset; DayOffset wins when both are set.
type Event struct {
	ID          string    `toml:"id"`
	Name        string    `toml:"name"`
	Type        string    `toml:"type"`
	Date        string    `toml:"date"`
	DayOffset   *int      `toml:"day_offset"`
	Time        string    `toml:"time"`
	Location    string    `toml:"location"`
	Description string    `toml:"description"`
	MaxCapacity int       `toml:"max_capacity"`
	Status      string    `toml:"status"`
	CreatedAt   time.Time `toml:"created_at"`
}

type Registration struct {
	ID           string    `toml:"id"`
	StudentID    string    `toml:"student_id"`
	EventID      string    `toml:"event_id"`
	RegisteredAt time.Time `toml:"registered_at"`
	Attended     bool      `toml:"attended"`
}

type Feedback struct {
	ID          string    `toml:"id"`
	StudentID   string    `toml:"student_id"`
	EventID     string    `toml:"event_id"`
	Rating      int       `toml:"rating"`
	Comments    string    `toml:"comments"`
	SubmittedAt time.Time `toml:"submitted_at"`
}

// Repositories receives the seed.
type Repositories struct {
	Events        output.EventRepository
	Students      output.StudentRepository
	Registrations output.RegistrationRepository
	Feedback      output.FeedbackRepository
}

// Counts reports what Apply stored.
type Counts struct {
	Students      int
	Events        int
	Registrations int
	Feedback      int
}

// Default parses the embedded demo data set.
func Default() (*Seed, error) {
	return Parse(defaultSeed)
}

// Parse decodes a TOML seed, rejecting unknown keys.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &s, nil
}

// Apply stores the seed. Relative event days are resolved against now seen
// from loc. Seed data is trusted: capacity is not enforced, but every
// registration and feedback must reference a seeded student and event, and
// feedback must come from a student whose attendance is recorded.
func (s *Seed) Apply(ctx context.Context, repos Repositories, now time.Time, loc *time.Location) (Counts, error) {
	if loc == nil {
		loc = time.UTC
	}
	var c Counts
	students := make(map[string]bool, len(s.Students))
	for _, st := range s.Students {
		student := entities.Student{ID: st.ID, Name: st.Name, Email: st.Email, CreatedAt: st.CreatedAt}
		if err := repos.Students.Create(ctx, &student); err != nil {
			return c, fmt.Errorf("seed student %s: %w", st.ID, err)
		}
		students[student.ID] = true
		c.Students++
	}

	events := make(map[string]bool, len(s.Events))
	for _, ev := range s.Events {
		event, err := ev.toEntity(now.In(loc))
		if err != nil {
			return c, err
		}
		if err := repos.Events.Create(ctx, event); err != nil {
			return c, fmt.Errorf("seed event %s: %w", ev.ID, err)
		}
		events[event.ID] = true
		c.Events++
	}

	attended := make(map[[2]string]bool)
	for _, r := range s.Registrations {
		if !students[r.StudentID] || !events[r.EventID] {
			return c, fmt.Errorf("seed registration %s: unknown student %q or event %q", r.ID, r.StudentID, r.EventID)
		}
		reg := entities.Registration{ID: r.ID, StudentID: r.StudentID, EventID: r.EventID, RegisteredAt: r.RegisteredAt, Attended: r.Attended}
		if err := repos.Registrations.Create(ctx, &reg); err != nil {
			return c, fmt.Errorf("seed registration %s: %w", r.ID, err)
		}
		if r.Attended {
			attended[[2]string{r.EventID, r.StudentID}] = true
		}
		c.Registrations++
	}

	for _, f := range s.Feedback {
		if !students[f.StudentID] || !events[f.EventID] {
			return c, fmt.Errorf("seed feedback %s: unknown student %q or event %q", f.ID, f.StudentID, f.EventID)
		}
		if !attended[[2]string{f.EventID, f.StudentID}] {
			return c, fmt.Errorf("seed feedback %s: student %q did not attend event %q", f.ID, f.StudentID, f.EventID)
		}
		if f.Rating < entities.MinRating || f.Rating > entities.MaxRating {
			return c, fmt.Errorf("seed feedback %s: rating %d out of range", f.ID, f.Rating)
		}
		fb := entities.Feedback{ID: f.ID, StudentID: f.StudentID, EventID: f.EventID, Rating: f.Rating, Comments: f.Comments, SubmittedAt: f.SubmittedAt}
		if err := repos.Feedback.Create(ctx, &fb); err != nil {
			return c, fmt.Errorf("seed feedback %s: %w", f.ID, err)
		}
		c.Feedback++
	}
	return c, nil
}

func (ev Event) toEntity(today time.Time) (*entities.Event, error) {
	date := ev.Date
	if ev.DayOffset != nil {
		date = today.AddDate(0, 0, *ev.DayOffset).Format(entities.DateLayout)
	}
	if _, err := time.Parse(entities.DateLayout, date); err != nil {
		return nil, fmt.Errorf("seed event %s: invalid date %q", ev.ID, date)
	}
	typ := entities.EventType(ev.Type)
	if !typ.Valid() {
		return nil, fmt.Errorf("seed event %s: invalid type %q", ev.ID, ev.Type)
	}
	status := entities.EventStatus(ev.Status)
	if status == "" {
		status = entities.StatusUpcoming
	}
	if !status.Valid() {
		return nil, fmt.Errorf("seed event %s: invalid status %q", ev.ID, ev.Status)
	}
	return &entities.Event{
		ID:          ev.ID,
		Name:        ev.Name,
		Type:        typ,
		Date:        date,
		Time:        ev.Time,
		Location:    ev.Location,
		Description: ev.Description,
		MaxCapacity: ev.MaxCapacity,
		Status:      status,
		CreatedAt:   ev.CreatedAt,
	}, nil
}
