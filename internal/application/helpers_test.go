package application

import (
	"context"
	"testing"
	"time"

	"campusevents/internal/domain/entities"
	"campusevents/internal/infrastructure/memory"
)

var eventDay = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func newStores() Stores {
	return Stores{
		Events:        memory.NewEventRepository(),
		Students:      memory.NewStudentRepository(),
		Registrations: memory.NewRegistrationRepository(),
		Feedback:      memory.NewFeedbackRepository(),
	}
}

func seedEvent(t *testing.T, stores Stores, id string, capacity int) {
	t.Helper()
	err := stores.Events.Create(context.Background(), &entities.Event{
		ID:          id,
		Name:        "Event " + id,
		Type:        entities.EventTypeWorkshop,
		Date:        "2025-03-15",
		Time:        "14:00",
		Location:    "Lab 1",
		MaxCapacity: capacity,
		Status:      entities.StatusUpcoming,
	})
	if err != nil {
		t.Fatalf("seed event %s: %v", id, err)
	}
}

func seedStudent(t *testing.T, stores Stores, id string) entities.Session {
	t.Helper()
	if err := stores.Students.Create(context.Background(), &entities.Student{ID: id, Name: id}); err != nil {
		t.Fatalf("seed student %s: %v", id, err)
	}
	return entities.Session{StudentID: id}
}

type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

// seedAttended records session as registered for eventID with attendance marked.
func seedAttended(t *testing.T, stores Stores, eventID string, session entities.Session) {
	t.Helper()
	err := stores.Registrations.Create(context.Background(), &entities.Registration{
		StudentID:    session.StudentID,
		EventID:      eventID,
		RegisteredAt: eventDay,
		Attended:     true,
	})
	if err != nil {
		t.Fatalf("seed attendance %s/%s: %v", eventID, session.StudentID, err)
	}
}
