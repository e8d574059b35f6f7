package i18n

import (
	"slices"
	"testing"
)

func TestTranslator(t *testing.T) {
	tr := NewTranslator("en")

	if got := tr.T("en", "errors.event_full", nil); got != "Event is full." {
		t.Errorf("en = %q", got)
	}
	if got := tr.T("fr", "errors.event_full", nil); got != "L'événement est complet." {
		t.Errorf("fr = %q", got)
	}
	if got := tr.T("de", "errors.event_full", nil); got != "Event is full." {
		t.Errorf("fallback = %q", got)
	}
	got := tr.T("en", "notify.register.success.description", map[string]any{"Name": "Go Workshop"})
	if got != "You've successfully registered for Go Workshop." {
		t.Errorf("template = %q", got)
	}
	if got := tr.T("en", "no.such.key", nil); got != "no.such.key" {
		t.Errorf("missing key = %q", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Errorf("empty key = %q", got)
	}
}

func TestLocaleFilesShareKeys(t *testing.T) {
	tr := NewTranslator("en")
	keys := []string{
		"errors.missing_field", "errors.not_event_day", "errors.feedback_exists",
		"notify.attend.success.title", "notify.report.failure.description", "ui.badge.can_mark",
		"errors.event_closed", "errors.not_attended", "ui.badge.registered", "ui.dashboard.total_attendees",
	}
	for _, key := range keys {
		if got := tr.T("fr", key, nil); got == key || got == tr.T("en", key, nil) {
			t.Errorf("fr translation missing for %s", key)
		}
	}
}

func TestFallbackChain(t *testing.T) {
	tr := NewTranslator("en")
	cases := map[string][]string{
		"":      {"en"},
		"en":    {"en"},
		"fr":    {"fr", "en"},
		"en-GB": {"en-GB", "en"},
	}
	for locale, want := range cases {
		if got := tr.fallbackChain(locale); !slices.Equal(got, want) {
			t.Errorf("fallbackChain(%q) = %v, want %v", locale, got, want)
		}
	}
	if got := tr.T("en-GB", "errors.event_full", nil); got != "Event is full." {
		t.Errorf("regional locale = %q", got)
	}
}
