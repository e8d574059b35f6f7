package application

import (
	"context"

	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/reporting"
)

// Dashboard is the admin overview: counters plus both rankings.
type Dashboard struct {
	Summary       entities.DashboardSummary
	PopularEvents []entities.EventReport
	TopStudents   []entities.StudentReport
}

// ReportService derives every report from the store on each call; nothing is
// cached between calls.
type ReportService struct {
	stores Stores
}

func NewReportService(stores Stores) *ReportService {
	return &ReportService{stores: stores}
}

func (s *ReportService) EventReports(ctx context.Context) ([]entities.EventReport, error) {
	events, err := s.stores.allEventDetails(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.GenerateEventReports(events), nil
}

func (s *ReportService) EventReport(ctx context.Context, eventID string) (*entities.EventReport, error) {
	event, err := s.stores.eventDetailsByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	r := reporting.GenerateEventReport(event)
	return &r, nil
}

func (s *ReportService) StudentReport(ctx context.Context, studentID string) (*entities.StudentReport, error) {
	st, err := s.stores.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	details, err := s.stores.studentDetails(ctx, *st)
	if err != nil {
		return nil, err
	}
	events, err := s.stores.allEventDetails(ctx)
	if err != nil {
		return nil, err
	}
	r := reporting.GenerateStudentReport(&details, events)
	return &r, nil
}

func (s *ReportService) TopActiveStudents(ctx context.Context, limit int) ([]entities.StudentReport, error) {
	students, err := s.stores.allStudentDetails(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.stores.allEventDetails(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.TopActiveStudents(students, events, limit), nil
}

func (s *ReportService) MostPopularEvents(ctx context.Context, limit int) ([]entities.EventReport, error) {
	reports, err := s.EventReports(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.MostPopularEvents(reports, limit), nil
}

// Dashboard composes the summary with both rankings, each capped at limit.
func (s *ReportService) Dashboard(ctx context.Context, limit int) (*Dashboard, error) {
	events, err := s.stores.allEventDetails(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.stores.allStudentDetails(ctx)
	if err != nil {
		return nil, err
	}
	popular, err := s.MostPopularEvents(ctx, limit)
	if err != nil {
		return nil, err
	}
	top, err := s.TopActiveStudents(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Summary:       reporting.Summarize(events, len(students)),
		PopularEvents: popular,
		TopStudents:   top,
	}, nil
}

// ExportEventReport returns the downloadable report and its file name.
func (s *ReportService) ExportEventReport(ctx context.Context, eventID string) (string, []byte, error) {
	event, err := s.stores.eventDetailsByID(ctx, eventID)
	if err != nil {
		return "", nil, err
	}
	content, err := reporting.BuildReportDocument(event).Marshal()
	if err != nil {
		return "", nil, err
	}
	return reporting.ReportFileName(event.Name), content, nil
}
