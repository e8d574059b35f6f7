package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/application"
	"campusevents/internal/domain"
	"campusevents/internal/domain/listing"
	pkgdiscord "campusevents/pkg/discord"
)

// commandAction names the notification family used for each command's outcome.
var commandAction = map[string]string{
	cmdEvents:        "browse",
	cmdEvent:         "browse",
	cmdManageEvents:  "browse",
	cmdMyEvents:      "browse",
	cmdEventCreate:   "create_event",
	cmdEventStatus:   "set_status",
	cmdRegister:      "register",
	cmdAttend:        "attend",
	cmdFeedback:      "feedback",
	cmdReport:        "report",
	cmdStudentReport: "report",
	cmdDashboard:     "report",
}

// HandleCommand dispatches a slash command.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	a := h.actorOf(i)
	opts := options(data.Options)

	if adminCommands[data.Name] {
		if err := h.requireAdmin(a); err != nil {
			h.fail(s, i, a, commandAction[data.Name], err)
			return
		}
	}

	switch data.Name {
	case cmdEvents:
		h.handleBrowse(s, i, a, listQuery(opts, listing.AudienceStudent))
	case cmdEvent:
		h.handleEvent(s, i, a, stringOpt(opts, optEvent))
	case cmdManageEvents:
		h.handleBrowse(s, i, a, listQuery(opts, listing.AudienceAdmin))
	case cmdEventCreate:
		capacity, _ := intOpt(opts, optCapacity)
		respondModal(s, i.Interaction, createEventModal(h.translator(a.locale), stringOpt(opts, optType), capacity))
	case cmdEventStatus:
		h.handleSetStatus(s, i, a, stringOpt(opts, optEvent), stringOpt(opts, optStatus))
	case cmdRegister:
		h.handleRegister(s, i, a, stringOpt(opts, optEvent))
	case cmdAttend:
		h.handleAttend(s, i, a, stringOpt(opts, optEvent))
	case cmdFeedback:
		respondModal(s, i.Interaction, feedbackModal(h.translator(a.locale), stringOpt(opts, optEvent)))
	case cmdMyEvents:
		h.handleMyEvents(s, i, a)
	case cmdReport:
		h.handleReport(s, i, a, stringOpt(opts, optEvent))
	case cmdStudentReport:
		h.handleStudentReport(s, i, a, studentIDFromInput(stringOpt(opts, optStudent)))
	case cmdDashboard:
		h.handleDashboard(s, i, a)
	}
}

// fail reports err to the user after logging it.
func (h *Handler) fail(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, action string, err error) {
	logFailure(action, a.userID, err)
	respondNotification(s, i.Interaction, h.notifier.Failure(a.locale, action, err))
}

// logFailure logs errors that are not user-correctable, and refused admin
// attempts. Other domain errors are only shown to the user.
func logFailure(action, userID string, err error) {
	switch domain.KindOf(err) {
	case "":
		log.Printf("❌ %s failed for %s: %v", action, userID, err)
	case domain.KindForbidden:
		log.Printf("⚠️ %s refused for %s: %v", action, userID, err)
	}
}

// studentIDFromInput accepts a student ID or a pasted user mention.
func studentIDFromInput(raw string) string {
	id := strings.TrimSpace(raw)
	if strings.HasPrefix(id, "<@") && strings.HasSuffix(id, ">") {
		id = strings.TrimPrefix(strings.TrimSuffix(id[2:], ">"), "!")
	}
	return id
}

// eventView renders one event for the viewing user.
func (h *Handler) eventView(ctx context.Context, a actor, eventID string) (*discordgo.MessageEmbed, error) {
	event, err := h.uc.Catalog.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return pkgdiscord.BuildEventEmbed(h.translator(a.locale), event, a.userID), nil
}

func (h *Handler) handleEvent(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, eventID string) {
	ctx, cancel := newContext()
	defer cancel()

	embed, err := h.eventView(ctx, a, eventID)
	if err != nil {
		h.fail(s, i, a, "browse", err)
		return
	}
	respondEmbeds(s, i.Interaction, embed)
}

func (h *Handler) handleBrowse(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, q listing.Query) {
	ctx, cancel := newContext()
	defer cancel()

	events, err := h.uc.Catalog.BrowseEvents(ctx, q)
	if err != nil {
		h.fail(s, i, a, "browse", err)
		return
	}
	respondEmbeds(s, i.Interaction, pkgdiscord.BuildEventListEmbed(h.translator(a.locale), events))
}

func (h *Handler) handleSetStatus(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, eventID, status string) {
	ctx, cancel := newContext()
	defer cancel()

	event, err := h.uc.Catalog.SetEventStatus(ctx, eventID, status)
	if err != nil {
		h.fail(s, i, a, "set_status", err)
		return
	}
	log.Printf("✅ Event %s set to %s by %s", event.ID, event.Status, a.userID)
	respondNotification(s, i.Interaction, h.notifier.Success(a.locale, "set_status", map[string]any{
		"Name":   event.Name,
		"Status": string(event.Status),
	}))
}

func (h *Handler) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, eventID string) {
	ctx, cancel := newContext()
	defer cancel()

	session, err := h.session(ctx, a)
	if err != nil {
		h.fail(s, i, a, "register", err)
		return
	}
	if _, err := h.uc.Registrations.Register(ctx, session, eventID); err != nil {
		h.fail(s, i, a, "register", err)
		return
	}
	h.succeedForEvent(s, i, a, "register", eventID)
}

func (h *Handler) handleAttend(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, eventID string) {
	ctx, cancel := newContext()
	defer cancel()

	session, err := h.session(ctx, a)
	if err != nil {
		h.fail(s, i, a, "attend", err)
		return
	}
	if _, err := h.uc.Registrations.MarkAttendance(ctx, session, eventID); err != nil {
		h.fail(s, i, a, "attend", err)
		return
	}
	h.succeedForEvent(s, i, a, "attend", eventID)
}

// succeedForEvent sends the action's success notification naming the event.
func (h *Handler) succeedForEvent(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, action, eventID string) {
	ctx, cancel := newContext()
	defer cancel()

	name := eventID
	if event, err := h.uc.Catalog.GetEvent(ctx, eventID); err == nil {
		name = event.Name
	}
	respondNotification(s, i.Interaction, h.notifier.Success(a.locale, action, map[string]any{"Name": name}))
}

func (h *Handler) handleMyEvents(s *discordgo.Session, i *discordgo.InteractionCreate, a actor) {
	ctx, cancel := newContext()
	defer cancel()

	session, err := h.session(ctx, a)
	if err != nil {
		h.fail(s, i, a, "browse", err)
		return
	}
	cards, err := h.uc.Registrations.MyEvents(ctx, session)
	if err != nil {
		h.fail(s, i, a, "browse", err)
		return
	}
	respondEmbeds(s, i.Interaction, pkgdiscord.BuildMyEventsEmbed(h.translator(a.locale), toCards(cards)))
}

func toCards(cards []application.EventCard) []pkgdiscord.Card {
	out := make([]pkgdiscord.Card, len(cards))
	for i, c := range cards {
		out[i] = pkgdiscord.Card{
			Event:             c.Event,
			Attended:          c.Attended,
			Missed:            c.Missed,
			CanMarkAttendance: c.CanMarkAttendance,
			FeedbackSubmitted: c.FeedbackSubmitted,
		}
	}
	return out
}

func (h *Handler) handleReport(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, eventID string) {
	ctx, cancel := newContext()
	defer cancel()

	report, err := h.uc.Reports.EventReport(ctx, eventID)
	if err != nil {
		h.fail(s, i, a, "report", err)
		return
	}
	name, content, err := h.uc.Reports.ExportEventReport(ctx, eventID)
	if err != nil {
		h.fail(s, i, a, "report", err)
		return
	}
	respondFile(s, i.Interaction, pkgdiscord.BuildEventReportEmbed(*report), name, "application/json", content)
}

func (h *Handler) handleStudentReport(s *discordgo.Session, i *discordgo.InteractionCreate, a actor, studentID string) {
	ctx, cancel := newContext()
	defer cancel()

	report, err := h.uc.Reports.StudentReport(ctx, studentID)
	if err != nil {
		h.fail(s, i, a, "report", err)
		return
	}
	respondEmbeds(s, i.Interaction, pkgdiscord.BuildStudentReportEmbed(*report))
}

func (h *Handler) handleDashboard(s *discordgo.Session, i *discordgo.InteractionCreate, a actor) {
	ctx, cancel := newContext()
	defer cancel()

	d, err := h.uc.Reports.Dashboard(ctx, h.topLimit)
	if err != nil {
		h.fail(s, i, a, "report", err)
		return
	}
	respondEmbeds(s, i.Interaction, pkgdiscord.BuildDashboardEmbed(h.translator(a.locale), pkgdiscord.Dashboard{
		Summary:       d.Summary,
		PopularEvents: d.PopularEvents,
		TopStudents:   d.TopStudents,
	}))
}
