package output

import (
	"context"

	"campusevents/internal/domain/entities"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entities.Student) error
	FindByID(ctx context.Context, id string) (*entities.Student, error)
	// List returns students in creation order.
	List(ctx context.Context) ([]entities.Student, error)
}
