// Package listing builds the visible event list for the browsing and
// management screens: search, type filter and a single sort key.
package listing

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/reporting"
)

// Audience selects which screen the list is built for.
type Audience int

const (
	AudienceAdmin Audience = iota
	AudienceStudent
)

type SortKey string

const (
	SortDate          SortKey = "date"
	SortRegistrations SortKey = "registrations"
	SortAttendance    SortKey = "attendance"
	SortPopularity    SortKey = "popularity"
)

// TypeAll disables the type filter.
const TypeAll = "all"

// ParseSortKey reports whether s names a known sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDate, SortRegistrations, SortAttendance, SortPopularity:
		return k, true
	}
	return SortDate, false
}

type Query struct {
	Audience Audience
	Search   string
	Type     string // an entities.EventType, TypeAll or ""
	Sort     SortKey
}

// Apply returns the events matching q in display order. The input slice is
// not modified. Equal sort keys keep the input order.
func Apply(events []entities.EventDetails, q Query) []entities.EventDetails {
	caser := cases.Fold()
	term := caser.String(strings.TrimSpace(q.Search))

	rows := make([]row, 0, len(events))
	for i := range events {
		e := &events[i]
		if q.Audience == AudienceStudent && e.IsCompleted() {
			continue
		}
		if !matchesType(e, q.Type) || !matchesSearch(caser, e, term, q.Audience) {
			continue
		}
		rows = append(rows, row{event: e, report: reporting.GenerateEventReport(e)})
	}

	slices.SortStableFunc(rows, comparator(q))

	out := make([]entities.EventDetails, len(rows))
	for i, r := range rows {
		out[i] = *r.event
	}
	return out
}

type row struct {
	event  *entities.EventDetails
	report entities.EventReport
}

func matchesType(e *entities.EventDetails, filter string) bool {
	if filter == "" || strings.EqualFold(filter, TypeAll) {
		return true
	}
	return string(e.Type) == filter
}

func matchesSearch(caser cases.Caser, e *entities.EventDetails, term string, audience Audience) bool {
	if term == "" {
		return true
	}
	fields := []string{e.Name, e.Location}
	if audience == AudienceStudent {
		fields = append(fields, e.Description)
	}
	for _, f := range fields {
		if strings.Contains(caser.String(f), term) {
			return true
		}
	}
	return false
}

func comparator(q Query) func(a, b row) int {
	switch q.Sort {
	case SortRegistrations:
		return func(a, b row) int {
			return cmp.Compare(b.report.TotalRegistrations, a.report.TotalRegistrations)
		}
	case SortAttendance:
		return func(a, b row) int {
			return cmp.Compare(b.report.AttendancePercentage, a.report.AttendancePercentage)
		}
	case SortPopularity:
		return func(a, b row) int {
			return cmp.Compare(b.report.PopularityScore, a.report.PopularityScore)
		}
	default:
		if q.Audience == AudienceStudent {
			return func(a, b row) int {
				return a.event.Day().Compare(b.event.Day())
			}
		}
		return func(a, b row) int {
			return b.event.Day().Compare(a.event.Day())
		}
	}
}
