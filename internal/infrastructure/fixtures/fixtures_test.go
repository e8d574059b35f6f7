package fixtures

import (
	"context"
	"strings"
	"testing"
	"time"

	"campusevents/internal/infrastructure/memory"
)

func newRepos() Repositories {
	return Repositories{
		Events:        memory.NewEventRepository(),
		Students:      memory.NewStudentRepository(),
		Registrations: memory.NewRegistrationRepository(),
		Feedback:      memory.NewFeedbackRepository(),
	}
}

func TestDefaultSeed(t *testing.T) {
	seed, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	ctx := context.Background()
	repos := newRepos()
	now := time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+2", 2*60*60)

	counts, err := seed.Apply(ctx, repos, now, loc)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := Counts{Students: 5, Events: 5, Registrations: 11, Feedback: 5}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}

	// 23:30 UTC is already the 16th on campus.
	ev, err := repos.Events.FindByID(ctx, "event-1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if ev.Date != "2025-03-16" {
		t.Errorf("event-1 date = %q, want 2025-03-16", ev.Date)
	}
	past, _ := repos.Events.FindByID(ctx, "event-5")
	if past.Date != "2025-02-14" || !past.IsCompleted() {
		t.Errorf("event-5 = %+v", past)
	}

	regs, _ := repos.Registrations.FindByEventID(ctx, "event-5")
	attended := 0
	for _, r := range regs {
		if r.Attended {
			attended++
		}
	}
	if len(regs) != 4 || attended != 3 {
		t.Errorf("event-5 registrations = %d, attended = %d", len(regs), attended)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("[[students]]\nid = \"s\"\nnickname = \"x\"\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

const studentAndEvent = "[[students]]\nid = \"s\"\nname = \"S\"\n\n[[events]]\nid = \"e\"\nname = \"E\"\ntype = \"Fest\"\ndate = \"2025-01-01\"\n"

func TestApplyValidation(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want string
	}{
		{
			name: "unknown event type",
			toml: "[[events]]\nid = \"e\"\nname = \"E\"\ntype = \"Party\"\ndate = \"2025-01-01\"\n",
			want: "invalid type",
		},
		{
			name: "bad date",
			toml: "[[events]]\nid = \"e\"\nname = \"E\"\ntype = \"Fest\"\ndate = \"01/01/2025\"\n",
			want: "invalid date",
		},
		{
			name: "dangling registration",
			toml: "[[registrations]]\nid = \"r\"\nstudent_id = \"ghost\"\nevent_id = \"e\"\n",
			want: "unknown student",
		},
		{
			name: "rating out of range",
			toml: studentAndEvent + "\n[[registrations]]\nid = \"r\"\nstudent_id = \"s\"\nevent_id = \"e\"\nattended = true\n\n[[feedback]]\nid = \"f\"\nstudent_id = \"s\"\nevent_id = \"e\"\nrating = 9\n",
			want: "out of range",
		},
		{
			name: "feedback without attendance",
			toml: studentAndEvent + "\n[[registrations]]\nid = \"r\"\nstudent_id = \"s\"\nevent_id = \"e\"\n\n[[feedback]]\nid = \"f\"\nstudent_id = \"s\"\nevent_id = \"e\"\nrating = 4\n",
			want: "did not attend",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seed, err := Parse([]byte(tc.toml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = seed.Apply(context.Background(), newRepos(), time.Now(), nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Apply err = %v, want containing %q", err, tc.want)
			}
		})
	}
}
