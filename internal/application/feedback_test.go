package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"campusevents/internal/domain"
	"campusevents/internal/domain/reporting"
)

func TestSubmitFeedbackRatingRange(t *testing.T) {
	ctx := context.Background()
	for rating := -1; rating <= 7; rating++ {
		stores := newStores()
		seedEvent(t, stores, "e1", 10)
		alice := seedStudent(t, stores, "alice")
		seedAttended(t, stores, "e1", alice)

		_, err := NewFeedbackService(stores, fixedClock(eventDay)).SubmitFeedback(ctx, alice, "e1", rating, "ok")
		valid := rating >= 1 && rating <= 5
		if valid && err != nil {
			t.Errorf("rating %d: unexpected err %v", rating, err)
		}
		if !valid && !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	seedEvent(t, stores, "e1", 10)
	alice := seedStudent(t, stores, "alice")
	bob := seedStudent(t, stores, "bob")
	seedAttended(t, stores, "e1", alice)
	seedAttended(t, stores, "e1", bob)
	svc := NewFeedbackService(stores, fixedClock(eventDay))

	fb, err := svc.SubmitFeedback(ctx, alice, "e1", 4, "  Great session!  ")
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if fb.ID == "" || fb.Comments != "Great session!" || !fb.SubmittedAt.Equal(eventDay) {
		t.Errorf("feedback = %+v", fb)
	}
	if _, err := svc.SubmitFeedback(ctx, alice, "e1", 5, ""); !errors.Is(err, domain.ErrFeedbackExists) {
		t.Errorf("second feedback err = %v, want ErrFeedbackExists", err)
	}
	if _, err := svc.SubmitFeedback(ctx, bob, "e1", 5, ""); err != nil {
		t.Fatalf("bob feedback: %v", err)
	}
	if _, err := svc.SubmitFeedback(ctx, bob, "missing", 5, ""); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("unknown event err = %v", err)
	}

	event, _ := NewCatalogService(stores, nil).GetEvent(ctx, "e1")
	if len(event.Feedback) != 2 || event.Feedback[0].Rating != 4 || event.Feedback[1].Rating != 5 {
		t.Errorf("event feedback = %+v", event.Feedback)
	}
}

func TestSubmitFeedbackRequiresAttendance(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	seedEvent(t, stores, "e1", 10)
	stranger := seedStudent(t, stores, "stranger")
	carol := seedStudent(t, stores, "carol")
	svc := NewFeedbackService(stores, fixedClock(eventDay))

	if _, err := svc.SubmitFeedback(ctx, stranger, "e1", 5, "never came"); !errors.Is(err, domain.ErrNotRegistered) {
		t.Errorf("unregistered err = %v, want ErrNotRegistered", err)
	}

	if _, err := NewRegistrationService(stores, fixedClock(eventDay), time.UTC).Register(ctx, carol, "e1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.SubmitFeedback(ctx, carol, "e1", 5, ""); !errors.Is(err, domain.ErrNotAttended) {
		t.Errorf("registered but absent err = %v, want ErrNotAttended", err)
	}

	event, err := NewCatalogService(stores, nil).GetEvent(ctx, "e1")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if len(event.Feedback) != 0 {
		t.Errorf("rejected feedback was stored: %+v", event.Feedback)
	}
	if score := reporting.PopularityScore(event); score != 1 {
		t.Errorf("popularity = %v, want 1 (one registration, no feedback)", score)
	}
}

func TestSubmitFeedbackEmptyEventKeepsZeroPopularity(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	seedEvent(t, stores, "e1", 10)
	stranger := seedStudent(t, stores, "stranger")

	_, _ = NewFeedbackService(stores, nil).SubmitFeedback(ctx, stranger, "e1", 5, "")
	event, _ := NewCatalogService(stores, nil).GetEvent(ctx, "e1")
	if len(event.Registrations) != 0 || reporting.PopularityScore(event) != 0 {
		t.Errorf("registrations = %d, popularity = %v, want 0 and 0", len(event.Registrations), reporting.PopularityScore(event))
	}
}

func TestSubmitFeedbackCapsComments(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	seedEvent(t, stores, "e1", 10)
	alice := seedStudent(t, stores, "alice")
	seedAttended(t, stores, "e1", alice)

	long := strings.Repeat("é", 600)
	fb, err := NewFeedbackService(stores, nil).SubmitFeedback(ctx, alice, "e1", 3, long)
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if n := utf8.RuneCountInString(fb.Comments); n != 500 {
		t.Errorf("comments length = %d runes, want 500", n)
	}
}
