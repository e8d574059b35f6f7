package input

import (
	"context"

	"campusevents/internal/application"
	"campusevents/internal/domain/entities"
)

type ReportUseCase interface {
	EventReports(ctx context.Context) ([]entities.EventReport, error)
	EventReport(ctx context.Context, eventID string) (*entities.EventReport, error)
	StudentReport(ctx context.Context, studentID string) (*entities.StudentReport, error)
	TopActiveStudents(ctx context.Context, limit int) ([]entities.StudentReport, error)
	MostPopularEvents(ctx context.Context, limit int) ([]entities.EventReport, error)
	Dashboard(ctx context.Context, limit int) (*application.Dashboard, error)
	ExportEventReport(ctx context.Context, eventID string) (string, []byte, error)
}

var _ ReportUseCase = (*application.ReportService)(nil)
