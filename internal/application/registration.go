package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
	"campusevents/pkg/calendar"
)

// EventCard is a student's view of one of their registrations.
type EventCard struct {
	Event             entities.EventDetails
	RegisteredAt      time.Time
	Attended          bool
	Missed            bool
	CanMarkAttendance bool
	FeedbackSubmitted bool
}

// RegistrationService serializes registration and attendance mutations so
// that the capacity and duplicate checks hold until the write.
type RegistrationService struct {
	mu       sync.Mutex
	stores   Stores
	clock    Clock
	location *time.Location
}

func NewRegistrationService(stores Stores, clock Clock, location *time.Location) *RegistrationService {
	if location == nil {
		location = time.UTC
	}
	return &RegistrationService{stores: stores, clock: clock, location: location}
}

// Register rejects completed events, then checks capacity, then duplicates.
func (s *RegistrationService) Register(ctx context.Context, session entities.Session, eventID string) (*entities.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stores.findStudent(ctx, session.StudentID); err != nil {
		return nil, err
	}
	event, err := s.stores.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsCompleted() {
		return nil, domain.ErrEventClosed
	}
	count, err := s.stores.Registrations.CountByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if event.MaxCapacity-count <= 0 {
		return nil, domain.ErrEventFull
	}
	if _, err := s.findRegistration(ctx, event.ID, session.StudentID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotRegistered) {
		return nil, err
	}

	registration := &entities.Registration{
		StudentID:    session.StudentID,
		EventID:      event.ID,
		RegisteredAt: s.clock.now(),
	}
	if err := s.stores.Registrations.Create(ctx, registration); err != nil {
		if errors.Is(err, output.ErrDuplicate) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return registration, nil
}

// MarkAttendance checks the event day, then the registration, then whether
// attendance was already recorded.
func (s *RegistrationService) MarkAttendance(ctx context.Context, session entities.Session, eventID string) (*entities.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.stores.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !calendar.IsEventDay(event.Date, s.clock.now(), s.location) {
		return nil, domain.ErrNotEventDay
	}
	registration, err := s.findRegistration(ctx, event.ID, session.StudentID)
	if err != nil {
		return nil, err
	}
	if registration.Attended {
		return nil, domain.ErrAttendanceMarked
	}
	if err := s.stores.Registrations.MarkAttended(ctx, registration.ID); err != nil {
		return nil, fmt.Errorf("mark attended: %w", err)
	}
	registration.Attended = true
	return registration, nil
}

func (s *RegistrationService) findRegistration(ctx context.Context, eventID, studentID string) (*entities.Registration, error) {
	reg, err := s.stores.Registrations.FindByEventIDAndStudentID(ctx, eventID, studentID)
	if errors.Is(err, output.ErrNotFound) {
		return nil, domain.ErrNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

// MyEvents lists the session student's registrations in registration order.
func (s *RegistrationService) MyEvents(ctx context.Context, session entities.Session) ([]EventCard, error) {
	regs, err := s.stores.Registrations.FindByStudentID(ctx, session.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get registrations: %w", err)
	}
	now := s.clock.now()
	cards := make([]EventCard, 0, len(regs))
	for _, reg := range regs {
		event, err := s.stores.eventDetailsByID(ctx, reg.EventID)
		if errors.Is(err, domain.ErrEventNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		_, fbErr := s.stores.Feedback.FindByEventIDAndStudentID(ctx, reg.EventID, session.StudentID)
		if fbErr != nil && !errors.Is(fbErr, output.ErrNotFound) {
			return nil, fmt.Errorf("get feedback: %w", fbErr)
		}
		cards = append(cards, EventCard{
			Event:             *event,
			RegisteredAt:      reg.RegisteredAt,
			Attended:          reg.Attended,
			Missed:            event.IsCompleted() && !reg.Attended,
			CanMarkAttendance: !reg.Attended && event.Status == entities.StatusUpcoming && calendar.IsEventDay(event.Date, now, s.location),
			FeedbackSubmitted: fbErr == nil,
		})
	}
	return cards, nil
}
