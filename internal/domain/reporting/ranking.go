package reporting

import (
	"cmp"
	"slices"

	"campusevents/internal/domain/entities"
)

// DefaultLimit is the length of the dashboard rankings.
const DefaultLimit = 3

// TopActiveStudents ranks students by participation score, highest first.
// Equal scores keep the order of students. A limit <= 0 means DefaultLimit.
func TopActiveStudents(students []entities.StudentDetails, events []entities.EventDetails, limit int) []entities.StudentReport {
	reports := make([]entities.StudentReport, len(students))
	for i := range students {
		reports[i] = GenerateStudentReport(&students[i], events)
	}
	slices.SortStableFunc(reports, func(a, b entities.StudentReport) int {
		return cmp.Compare(b.ParticipationScore, a.ParticipationScore)
	})
	return truncate(reports, limit)
}

// MostPopularEvents ranks reports by popularity score, highest first, without
// reordering the input. Equal scores keep the input order. A limit <= 0 means
// DefaultLimit.
func MostPopularEvents(reports []entities.EventReport, limit int) []entities.EventReport {
	return truncate(RankByPopularity(reports), limit)
}

// RankByPopularity returns every report sorted by popularity score, highest
// first.
func RankByPopularity(reports []entities.EventReport) []entities.EventReport {
	out := slices.Clone(reports)
	slices.SortStableFunc(out, func(a, b entities.EventReport) int {
		return cmp.Compare(b.PopularityScore, a.PopularityScore)
	})
	return out
}

func truncate[T any](s []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(s) > limit {
		s = s[:limit]
	}
	return s
}
