package reporting

import (
	"math"

	"campusevents/internal/domain/entities"
)

// AttendancePercentage returns round(100 * attendees / registrations), or 0
// for an event without registrations.
func AttendancePercentage(event *entities.EventDetails) int {
	if len(event.Registrations) == 0 {
		return 0
	}
	attendees := len(event.Attendees())
	return int(roundHalfUp(float64(attendees) / float64(len(event.Registrations)) * 100))
}

// AverageFeedbackScore returns the mean rating rounded half-up to one decimal,
// or 0 when the event has no feedback.
func AverageFeedbackScore(event *entities.EventDetails) float64 {
	if len(event.Feedback) == 0 {
		return 0
	}
	total := 0
	for _, f := range event.Feedback {
		total += f.Rating
	}
	return roundTenths(float64(total) / float64(len(event.Feedback)))
}

// PopularityScore weighs registrations plus feedback volume scaled by its
// average rating. An event without feedback scores its registration count.
func PopularityScore(event *entities.EventDetails) float64 {
	registrationScore := float64(len(event.Registrations))
	feedbackScore := AverageFeedbackScore(event) * float64(len(event.Feedback))
	return registrationScore + feedbackScore
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundTenths(v float64) float64 {
	return roundHalfUp(v*10) / 10
}
