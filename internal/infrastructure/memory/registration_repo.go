package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

// pairKey is the compound (event, student) index shared by registrations and
// feedback.
type pairKey struct {
	eventID   string
	studentID string
}

// RegistrationRepository stores each registration exactly once. Per-event and
// per-student views are derived from the insertion order on read.
type RegistrationRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entities.Registration
	byPair map[pairKey]*entities.Registration
	order  []*entities.Registration
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{
		byID:   make(map[string]*entities.Registration),
		byPair: make(map[pairKey]*entities.Registration),
	}
}

func (r *RegistrationRepository) Create(_ context.Context, registration *entities.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{eventID: registration.EventID, studentID: registration.StudentID}
	if _, ok := r.byPair[key]; ok {
		return fmt.Errorf("create registration (event=%s, student=%s): %w", key.eventID, key.studentID, output.ErrDuplicate)
	}
	if registration.ID == "" {
		registration.ID = "reg-" + uuid.NewString()
	}
	if _, ok := r.byID[registration.ID]; ok {
		return fmt.Errorf("create registration %s: %w", registration.ID, output.ErrDuplicate)
	}
	stored := *registration
	r.byID[stored.ID] = &stored
	r.byPair[key] = &stored
	r.order = append(r.order, &stored)
	return nil
}

func (r *RegistrationRepository) FindByEventIDAndStudentID(_ context.Context, eventID, studentID string) (*entities.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.byPair[pairKey{eventID: eventID, studentID: studentID}]
	if !ok {
		return nil, fmt.Errorf("get registration (event=%s, student=%s): %w", eventID, studentID, output.ErrNotFound)
	}
	out := *reg
	return &out, nil
}

func (r *RegistrationRepository) FindByEventID(_ context.Context, eventID string) ([]entities.Registration, error) {
	return r.filter(func(reg *entities.Registration) bool { return reg.EventID == eventID }), nil
}

func (r *RegistrationRepository) FindByStudentID(_ context.Context, studentID string) ([]entities.Registration, error) {
	return r.filter(func(reg *entities.Registration) bool { return reg.StudentID == studentID }), nil
}

func (r *RegistrationRepository) CountByEventID(_ context.Context, eventID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, reg := range r.order {
		if reg.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (r *RegistrationRepository) MarkAttended(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("mark registration %s attended: %w", id, output.ErrNotFound)
	}
	reg.Attended = true
	return nil
}

func (r *RegistrationRepository) filter(keep func(*entities.Registration) bool) []entities.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Registration, 0)
	for _, reg := range r.order {
		if keep(reg) {
			out = append(out, *reg)
		}
	}
	return out
}
