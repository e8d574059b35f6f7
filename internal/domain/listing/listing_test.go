package listing

import (
	"reflect"
	"testing"

	"campusevents/internal/domain/entities"
)

func fixture() []entities.EventDetails {
	mk := func(id, name string, typ entities.EventType, date, location, desc string, status entities.EventStatus, regs, attended int) entities.EventDetails {
		d := entities.EventDetails{Event: entities.Event{
			ID: id, Name: name, Type: typ, Date: date, Time: "10:00",
			Location: location, Description: desc, MaxCapacity: 50, Status: status,
		}}
		for i := 0; i < regs; i++ {
			d.Registrations = append(d.Registrations, entities.Registration{StudentID: string(rune('a' + i)), EventID: id, Attended: i < attended})
		}
		return d
	}
	return []entities.EventDetails{
		mk("go", "Go Workshop", entities.EventTypeWorkshop, "2025-04-10", "Lab 3", "Concurrency basics", entities.StatusUpcoming, 3, 1),
		mk("fest", "Spring Fest", entities.EventTypeFest, "2025-03-20", "Main Lawn", "Music and food stalls", entities.StatusUpcoming, 5, 0),
		mk("ai", "AI Seminar", entities.EventTypeSeminar, "2025-05-02", "Auditorium", "Guest lecture on workshop tooling", entities.StatusOngoing, 2, 2),
		mk("old", "Résumé Workshop", entities.EventTypeWorkshop, "2025-01-15", "Career Center", "CV review", entities.StatusCompleted, 4, 4),
	}
}

func ids(events []entities.EventDetails) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"admin default sort is date descending", Query{Audience: AudienceAdmin}, []string{"ai", "go", "fest", "old"}},
		{"student hides completed and sorts date ascending", Query{Audience: AudienceStudent, Sort: SortDate}, []string{"fest", "go", "ai"}},
		{"admin search matches name case-insensitively", Query{Audience: AudienceAdmin, Search: "WORK"}, []string{"go", "old"}},
		{"admin search ignores description", Query{Audience: AudienceAdmin, Search: "lecture"}, []string{}},
		{"student search covers description", Query{Audience: AudienceStudent, Search: "lecture"}, []string{"ai"}},
		{"search covers location", Query{Audience: AudienceAdmin, Search: "lawn"}, []string{"fest"}},
		{"search folds non-ASCII case", Query{Audience: AudienceAdmin, Search: "RÉSUMÉ"}, []string{"old"}},
		{"type filter", Query{Audience: AudienceAdmin, Type: "Workshop"}, []string{"go", "old"}},
		{"type all", Query{Audience: AudienceAdmin, Type: TypeAll, Sort: SortRegistrations}, []string{"fest", "old", "go", "ai"}},
		{"search and type with no overlap", Query{Audience: AudienceAdmin, Search: "work", Type: "Seminar"}, []string{}},
		{"attendance", Query{Audience: AudienceAdmin, Sort: SortAttendance}, []string{"ai", "old", "go", "fest"}},
		{"popularity", Query{Audience: AudienceStudent, Sort: SortPopularity}, []string{"fest", "go", "ai"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(fixture(), tt.q))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	events := fixture()
	before := ids(events)
	_ = Apply(events, Query{Audience: AudienceAdmin, Sort: SortRegistrations})
	if !reflect.DeepEqual(ids(events), before) {
		t.Errorf("input reordered: %v", ids(events))
	}
}

func TestApplyTiesKeepInputOrder(t *testing.T) {
	events := fixture()
	for i := range events {
		events[i].Date = "2025-06-01"
	}
	got := ids(Apply(events, Query{Audience: AudienceAdmin}))
	if !reflect.DeepEqual(got, []string{"go", "fest", "ai", "old"}) {
		t.Errorf("Apply = %v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	if k, ok := ParseSortKey(" Popularity "); !ok || k != SortPopularity {
		t.Errorf("ParseSortKey = %v, %v", k, ok)
	}
	if k, ok := ParseSortKey("name"); ok || k != SortDate {
		t.Errorf("ParseSortKey(name) = %v, %v", k, ok)
	}
}
