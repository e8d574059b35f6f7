package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/output"
)

type StudentService struct {
	stores Stores
	clock  Clock
}

func NewStudentService(stores Stores, clock Clock) *StudentService {
	return &StudentService{stores: stores, clock: clock}
}

// EnsureStudent returns the student with id, creating it on first contact.
func (s *StudentService) EnsureStudent(ctx context.Context, id, name, email string) (*entities.Student, error) {
	st, err := s.stores.Students.FindByID(ctx, id)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, output.ErrNotFound) {
		return nil, fmt.Errorf("get student: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = id
	}
	st = &entities.Student{
		ID:        id,
		Name:      name,
		Email:     strings.TrimSpace(email),
		CreatedAt: s.clock.now(),
	}
	if err := s.stores.Students.Create(ctx, st); err != nil {
		if errors.Is(err, output.ErrDuplicate) {
			return s.stores.findStudent(ctx, id)
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	return st, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (*entities.StudentDetails, error) {
	st, err := s.stores.findStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := s.stores.studentDetails(ctx, *st)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SearchStudents returns the students whose name or ID contains search,
// case-insensitively, in creation order. An empty search returns everyone.
func (s *StudentService) SearchStudents(ctx context.Context, search string) ([]entities.Student, error) {
	students, err := s.stores.Students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	caser := cases.Fold()
	term := caser.String(strings.TrimSpace(search))
	if term == "" {
		return students, nil
	}
	out := students[:0]
	for _, st := range students {
		if strings.Contains(caser.String(st.Name), term) || strings.Contains(caser.String(st.ID), term) {
			out = append(out, st)
		}
	}
	return out, nil
}
