package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository keeps events in memory for the lifetime of the process.
type EventRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Event
	order []string
}

func NewEventRepository() *EventRepository {
	return &EventRepository{byID: make(map[string]entities.Event)}
}

func (r *EventRepository) Create(_ context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == "" {
		event.ID = "event-" + uuid.NewString()
	}
	if _, ok := r.byID[event.ID]; ok {
		return fmt.Errorf("create event %s: %w", event.ID, output.ErrDuplicate)
	}
	r.byID[event.ID] = *event
	r.order = append(r.order, event.ID)
	return nil
}

func (r *EventRepository) FindByID(_ context.Context, id string) (*entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("get event by id %s: %w", id, output.ErrNotFound)
	}
	return &e, nil
}

func (r *EventRepository) List(_ context.Context) ([]entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Event, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}
	return out, nil
}

func (r *EventRepository) Update(_ context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[event.ID]; !ok {
		return fmt.Errorf("update event %s: %w", event.ID, output.ErrNotFound)
	}
	r.byID[event.ID] = *event
	return nil
}
