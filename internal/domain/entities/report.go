package entities

// EventReport is derived on demand from an EventDetails and never stored.
type EventReport struct {
	EventID              string  `json:"eventId"`
	EventName            string  `json:"eventName"`
	TotalRegistrations   int     `json:"totalRegistrations"`
	AttendancePercentage int     `json:"attendancePercentage"`
	AverageFeedbackScore float64 `json:"averageFeedbackScore"`
	PopularityScore      float64 `json:"popularityScore"`
}

// StudentReport is derived on demand from a StudentDetails and the events.
type StudentReport struct {
	StudentID          string `json:"studentId"`
	StudentName        string `json:"studentName"`
	EventsAttended     int    `json:"eventsAttended"`
	EventsRegistered   int    `json:"eventsRegistered"`
	ParticipationScore int    `json:"participationScore"`
}

// DashboardSummary aggregates the admin overview counters.
type DashboardSummary struct {
	TotalEvents        int `json:"totalEvents"`
	TotalRegistrations int `json:"totalRegistrations"`
	TotalAttendees     int `json:"totalAttendees"`
	AverageAttendance  int `json:"averageAttendance"`
	ActiveStudents     int `json:"activeStudents"`
}
