package discord

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/application"
	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/listing"
)

type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

func newTestHandler(admins ...string) *Handler {
	set := map[string]bool{}
	for _, id := range admins {
		set[id] = true
	}
	isAdmin := func(id string) bool { return set[id] }
	return NewHandler(UseCases{}, application.NewNotifier(keyTranslator{}), isAdmin, "en", 3)
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func TestListQuery(t *testing.T) {
	opts := options([]*discordgo.ApplicationCommandInteractionDataOption{
		strOpt(optSearch, "lab"),
		strOpt(optType, "Workshop"),
		strOpt(optSort, "popularity"),
	})
	q := listQuery(opts, listing.AudienceStudent)
	want := listing.Query{Audience: listing.AudienceStudent, Search: "lab", Type: "Workshop", Sort: listing.SortPopularity}
	if q != want {
		t.Errorf("listQuery = %+v, want %+v", q, want)
	}

	q = listQuery(options(nil), listing.AudienceAdmin)
	if q.Sort != listing.SortDate || q.Search != "" || q.Type != "" {
		t.Errorf("empty listQuery = %+v", q)
	}
}

func TestIntOpt(t *testing.T) {
	opts := options([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: optCapacity, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(30)},
	})
	if v, ok := intOpt(opts, optCapacity); !ok || v != 30 {
		t.Errorf("intOpt = %d, %v", v, ok)
	}
	if _, ok := intOpt(opts, "missing"); ok {
		t.Error("intOpt(missing) ok")
	}
	if got := stringOpt(opts, optCapacity); got != "" {
		t.Errorf("stringOpt on integer option = %q", got)
	}
}

func TestCreateEventModalRoundTrip(t *testing.T) {
	data := createEventModal(func(k string, _ map[string]any) string { return k }, "Seminar", 40)
	if data.CustomID != "create_event_modal:Seminar:40" {
		t.Fatalf("CustomID = %q", data.CustomID)
	}
	if len(data.Components) != 5 {
		t.Errorf("modal has %d inputs, Discord allows 5", len(data.Components))
	}

	parts := strings.Split(data.CustomID, ":")
	form := eventForm(parts[1:], map[string]string{
		fieldName: "AI Talk", fieldDate: "2025-04-01", fieldTime: "09:30",
		fieldLocation: "Hall 2", fieldDescription: "Guest lecture",
	})
	want := application.EventForm{
		Name: "AI Talk", Type: "Seminar", Date: "2025-04-01", Time: "09:30",
		Location: "Hall 2", Description: "Guest lecture", MaxCapacity: "40",
	}
	if form != want {
		t.Errorf("eventForm = %+v, want %+v", form, want)
	}
	if f := eventForm(nil, nil); f.Type != "" || f.MaxCapacity != "" {
		t.Errorf("eventForm without id parts = %+v", f)
	}
}

func TestParseRating(t *testing.T) {
	cases := map[string]int{"5": 5, " 3 ": 3, "": 0, "five": 0, "9": 9}
	for in, want := range cases {
		if got := parseRating(in); got != want {
			t.Errorf("parseRating(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestEventChoices(t *testing.T) {
	events := make([]entities.EventDetails, 30)
	for i := range events {
		events[i].ID = "event-x"
		events[i].Name = strings.Repeat("é", 120)
		events[i].Date = "2025-03-15"
	}
	choices := eventChoices(events)
	if len(choices) != maxChoices {
		t.Fatalf("choices = %d", len(choices))
	}
	if n := len([]rune(choices[0].Name)); n != maxChoiceName {
		t.Errorf("choice name length = %d", n)
	}
	if choices[0].Value != "event-x" {
		t.Errorf("choice value = %v", choices[0].Value)
	}
	if got := eventChoices(nil); len(got) != 0 {
		t.Errorf("eventChoices(nil) = %v", got)
	}
}

func TestActorOf(t *testing.T) {
	h := newTestHandler()

	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Locale: discordgo.Locale("fr"),
		Member: &discordgo.Member{Nick: "Ali", User: &discordgo.User{ID: "42", Username: "alice"}},
	}}
	if a := h.actorOf(guild); a.userID != "42" || a.displayName != "Ali" || a.locale != "fr" {
		t.Errorf("guild actor = %+v", a)
	}

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "7", Username: "bob", GlobalName: "Bob S."},
	}}
	if a := h.actorOf(dm); a.userID != "7" || a.displayName != "Bob S." || a.locale != "en" {
		t.Errorf("dm actor = %+v", a)
	}
}

func TestRequireAdmin(t *testing.T) {
	h := newTestHandler("1")
	if err := h.requireAdmin(actor{userID: "1"}); err != nil {
		t.Errorf("admin rejected: %v", err)
	}
	if err := h.requireAdmin(actor{userID: "2"}); !errors.Is(err, domain.ErrNotAdmin) {
		t.Errorf("non-admin err = %v", err)
	}
}

func TestApplicationCommands(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range applicationCommands() {
		if seen[cmd.Name] {
			t.Errorf("duplicate command %s", cmd.Name)
		}
		seen[cmd.Name] = true
		if _, ok := commandAction[cmd.Name]; !ok {
			t.Errorf("command %s has no notification action", cmd.Name)
		}
		for _, o := range cmd.Options {
			if (o.Name == optEvent || o.Name == optStudent) && (!o.Autocomplete || o.Type != discordgo.ApplicationCommandOptionString) {
				t.Errorf("%s: %s option must be an autocompleted string", cmd.Name, o.Name)
			}
		}
	}
	for name := range adminCommands {
		if !seen[name] {
			t.Errorf("admin command %s is not registered", name)
		}
	}
}

func TestNotificationEmbedColor(t *testing.T) {
	n := application.NewNotifier(keyTranslator{})
	if e := notificationEmbed(n.Failure("en", "register", domain.ErrEventFull)); e.Description != "errors.event_full" || e.Color != 0xED4245 {
		t.Errorf("failure embed = %+v", e)
	}
	if e := notificationEmbed(n.Success("en", "register", nil)); e.Color != 0x5865F2 {
		t.Errorf("success embed color = %x", e.Color)
	}
}
