package reporting

import "campusevents/internal/domain/entities"

func GenerateEventReport(event *entities.EventDetails) entities.EventReport {
	return entities.EventReport{
		EventID:              event.ID,
		EventName:            event.Name,
		TotalRegistrations:   len(event.Registrations),
		AttendancePercentage: AttendancePercentage(event),
		AverageFeedbackScore: AverageFeedbackScore(event),
		PopularityScore:      PopularityScore(event),
	}
}

// GenerateEventReports keeps the order of events.
func GenerateEventReports(events []entities.EventDetails) []entities.EventReport {
	out := make([]entities.EventReport, len(events))
	for i := range events {
		out[i] = GenerateEventReport(&events[i])
	}
	return out
}

// GenerateStudentReport counts attended events from the events' attendee sets
// and registered events from the student's own registrations.
func GenerateStudentReport(student *entities.StudentDetails, events []entities.EventDetails) entities.StudentReport {
	attended := 0
	for i := range events {
		if events[i].HasAttendee(student.ID) {
			attended++
		}
	}
	registered := len(student.Registrations)
	return entities.StudentReport{
		StudentID:          student.ID,
		StudentName:        student.Name,
		EventsAttended:     attended,
		EventsRegistered:   registered,
		ParticipationScore: attended*2 + registered,
	}
}

// Summarize builds the admin dashboard counters.
func Summarize(events []entities.EventDetails, studentCount int) entities.DashboardSummary {
	s := entities.DashboardSummary{
		TotalEvents:    len(events),
		ActiveStudents: studentCount,
	}
	for i := range events {
		s.TotalRegistrations += len(events[i].Registrations)
		s.TotalAttendees += len(events[i].Attendees())
	}
	if s.TotalRegistrations > 0 {
		s.AverageAttendance = int(roundHalfUp(float64(s.TotalAttendees) / float64(s.TotalRegistrations) * 100))
	}
	return s
}
