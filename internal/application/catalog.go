package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/listing"
	"campusevents/pkg/calendar"
)

// EventForm is the raw admin input for a new event.
type EventForm struct {
	Name        string
	Type        string
	Date        string
	Time        string
	Location    string
	Description string
	MaxCapacity string
}

type CatalogService struct {
	stores Stores
	clock  Clock
}

func NewCatalogService(stores Stores, clock Clock) *CatalogService {
	return &CatalogService{stores: stores, clock: clock}
}

// CreateEvent validates form and stores a new upcoming event. Nothing is
// stored when validation fails.
func (s *CatalogService) CreateEvent(ctx context.Context, form EventForm) (*entities.Event, error) {
	event, err := form.toEvent()
	if err != nil {
		return nil, err
	}
	event.Status = entities.StatusUpcoming
	event.CreatedAt = s.clock.now()
	if err := s.stores.Events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (f EventForm) toEvent() (*entities.Event, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"type", f.Type},
		{"date", f.Date},
		{"time", f.Time},
		{"location", f.Location},
		{"maxCapacity", f.MaxCapacity},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, r.field)
		}
	}

	typ, ok := parseEventType(f.Type)
	if !ok {
		return nil, domain.ErrInvalidEventType
	}
	date, err := calendar.ParseEventDate(f.Date)
	if err != nil {
		return nil, err
	}
	clock, err := calendar.ParseEventTime(f.Time)
	if err != nil {
		return nil, err
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(f.MaxCapacity))
	if err != nil || capacity <= 0 {
		return nil, domain.ErrInvalidCapacity
	}

	return &entities.Event{
		Name:        strings.TrimSpace(f.Name),
		Type:        typ,
		Date:        date,
		Time:        clock,
		Location:    strings.TrimSpace(f.Location),
		Description: strings.TrimSpace(f.Description),
		MaxCapacity: capacity,
	}, nil
}

// parseEventType accepts any letter case.
func parseEventType(s string) (entities.EventType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range entities.EventTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

func (s *CatalogService) SetEventStatus(ctx context.Context, eventID string, status string) (*entities.Event, error) {
	st := entities.EventStatus(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	event, err := s.stores.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.Status = st
	if err := s.stores.Events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, eventID string) (*entities.EventDetails, error) {
	return s.stores.eventDetailsByID(ctx, eventID)
}

// BrowseEvents recomputes the visible list from the current store contents.
func (s *CatalogService) BrowseEvents(ctx context.Context, q listing.Query) ([]entities.EventDetails, error) {
	events, err := s.stores.allEventDetails(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(events, q), nil
}
