package reporting

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"campusevents/internal/domain/entities"
	"campusevents/pkg/calendar"
)

// ReportDocument is the downloadable per-event report. Field order is the
// order of the serialized document.
type ReportDocument struct {
	EventName            string          `json:"eventName"`
	EventType            string          `json:"eventType"`
	Date                 string          `json:"date"`
	Time                 string          `json:"time"`
	Location             string          `json:"location"`
	TotalRegistrations   int             `json:"totalRegistrations"`
	AttendancePercentage int             `json:"attendancePercentage"`
	AverageFeedbackScore float64         `json:"averageFeedbackScore"`
	PopularityScore      float64         `json:"popularityScore"`
	Feedback             []FeedbackEntry `json:"feedback"`
}

type FeedbackEntry struct {
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func BuildReportDocument(event *entities.EventDetails) ReportDocument {
	report := GenerateEventReport(event)
	doc := ReportDocument{
		EventName:            event.Name,
		EventType:            string(event.Type),
		Date:                 calendar.FormatLongDate(event.Date),
		Time:                 calendar.FormatClock(event.Time),
		Location:             event.Location,
		TotalRegistrations:   report.TotalRegistrations,
		AttendancePercentage: report.AttendancePercentage,
		AverageFeedbackScore: report.AverageFeedbackScore,
		PopularityScore:      report.PopularityScore,
		Feedback:             make([]FeedbackEntry, 0, len(event.Feedback)),
	}
	for _, f := range event.Feedback {
		doc.Feedback = append(doc.Feedback, FeedbackEntry{
			Rating:      f.Rating,
			Comments:    f.Comments,
			SubmittedAt: f.SubmittedAt,
		})
	}
	return doc
}

// Marshal serializes the document as two-space indented JSON.
func (d ReportDocument) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// ReportFileName turns "Tech Talk 2025" into "tech-talk-2025-report.json".
func ReportFileName(eventName string) string {
	slug := strings.ToLower(whitespaceRun.ReplaceAllString(eventName, "-"))
	return slug + "-report.json"
}
