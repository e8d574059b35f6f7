package output

import (
	"context"

	"campusevents/internal/domain/entities"
)

// RegistrationRepository is the only place registrations are stored. It is
// indexed by (eventID, studentID); Create fails with ErrDuplicate on a
// second registration for the same pair.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *entities.Registration) error
	FindByEventIDAndStudentID(ctx context.Context, eventID, studentID string) (*entities.Registration, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.Registration, error)
	FindByStudentID(ctx context.Context, studentID string) ([]entities.Registration, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
	MarkAttended(ctx context.Context, id string) error
}
