package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

// Clock returns the current time.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Stores groups the output repositories the services read and write.
type Stores struct {
	Events        output.EventRepository
	Students      output.StudentRepository
	Registrations output.RegistrationRepository
	Feedback      output.FeedbackRepository
}

func (s Stores) findEvent(ctx context.Context, id string) (*entities.Event, error) {
	e, err := s.Events.FindByID(ctx, id)
	if errors.Is(err, output.ErrNotFound) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s Stores) findStudent(ctx context.Context, id string) (*entities.Student, error) {
	st, err := s.Students.FindByID(ctx, id)
	if errors.Is(err, output.ErrNotFound) {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// eventDetails attaches the registrations and feedback referencing e.
func (s Stores) eventDetails(ctx context.Context, e entities.Event) (entities.EventDetails, error) {
	regs, err := s.Registrations.FindByEventID(ctx, e.ID)
	if err != nil {
		return entities.EventDetails{}, fmt.Errorf("get registrations: %w", err)
	}
	fb, err := s.Feedback.FindByEventID(ctx, e.ID)
	if err != nil {
		return entities.EventDetails{}, fmt.Errorf("get feedback: %w", err)
	}
	return entities.EventDetails{Event: e, Registrations: regs, Feedback: fb}, nil
}

func (s Stores) eventDetailsByID(ctx context.Context, id string) (*entities.EventDetails, error) {
	e, err := s.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := s.eventDetails(ctx, *e)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s Stores) allEventDetails(ctx context.Context) ([]entities.EventDetails, error) {
	events, err := s.Events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]entities.EventDetails, len(events))
	for i := range events {
		if out[i], err = s.eventDetails(ctx, events[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s Stores) studentDetails(ctx context.Context, st entities.Student) (entities.StudentDetails, error) {
	regs, err := s.Registrations.FindByStudentID(ctx, st.ID)
	if err != nil {
		return entities.StudentDetails{}, fmt.Errorf("get registrations: %w", err)
	}
	d := entities.StudentDetails{
		Student:        st,
		Registrations:  make([]string, 0, len(regs)),
		AttendedEvents: make([]string, 0, len(regs)),
	}
	for _, r := range regs {
		d.Registrations = append(d.Registrations, r.EventID)
		if r.Attended {
			d.AttendedEvents = append(d.AttendedEvents, r.EventID)
		}
	}
	return d, nil
}

func (s Stores) allStudentDetails(ctx context.Context) ([]entities.StudentDetails, error) {
	students, err := s.Students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	out := make([]entities.StudentDetails, len(students))
	for i := range students {
		if out[i], err = s.studentDetails(ctx, students[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
