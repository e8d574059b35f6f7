package output

import (
	"context"

	"campusevents/internal/domain/entities"
)

// FeedbackRepository stores feedback once, indexed by (eventID, studentID).
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
	FindByEventIDAndStudentID(ctx context.Context, eventID, studentID string) (*entities.Feedback, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.Feedback, error)
}
