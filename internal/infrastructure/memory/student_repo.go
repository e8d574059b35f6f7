package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

var _ output.StudentRepository = (*StudentRepository)(nil)

type StudentRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Student
	order []string
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{byID: make(map[string]entities.Student)}
}

func (r *StudentRepository) Create(_ context.Context, student *entities.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if student.ID == "" {
		student.ID = "student-" + uuid.NewString()
	}
	if _, ok := r.byID[student.ID]; ok {
		return fmt.Errorf("create student %s: %w", student.ID, output.ErrDuplicate)
	}
	r.byID[student.ID] = *student
	r.order = append(r.order, student.ID)
	return nil
}

func (r *StudentRepository) FindByID(_ context.Context, id string) (*entities.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("get student by id %s: %w", id, output.ErrNotFound)
	}
	return &s, nil
}

func (r *StudentRepository) List(_ context.Context) ([]entities.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Student, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}
	return out, nil
}
