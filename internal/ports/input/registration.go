package input

import (
	"context"

	"campusevents/internal/application"
	"campusevents/internal/domain/entities"
)

type RegistrationUseCase interface {
	Register(ctx context.Context, session entities.Session, eventID string) (*entities.Registration, error)
	MarkAttendance(ctx context.Context, session entities.Session, eventID string) (*entities.Registration, error)
	MyEvents(ctx context.Context, session entities.Session) ([]application.EventCard, error)
}

type FeedbackUseCase interface {
	SubmitFeedback(ctx context.Context, session entities.Session, eventID string, rating int, comments string) (*entities.Feedback, error)
}

type StudentUseCase interface {
	EnsureStudent(ctx context.Context, id, name, email string) (*entities.Student, error)
	GetStudent(ctx context.Context, id string) (*entities.StudentDetails, error)
	SearchStudents(ctx context.Context, search string) ([]entities.Student, error)
}

var (
	_ RegistrationUseCase = (*application.RegistrationService)(nil)
	_ FeedbackUseCase     = (*application.FeedbackService)(nil)
	_ StudentUseCase      = (*application.StudentService)(nil)
)
