package discord

import (
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/application"
	"campusevents/internal/domain/entities"
	pkgdiscord "campusevents/pkg/discord"
)

const (
	createEventModalID = "create_event_modal"
	feedbackModalID    = "feedback_modal"

	fieldName        = "name"
	fieldDate        = "date"
	fieldTime        = "time"
	fieldLocation    = "location"
	fieldDescription = "description"
	fieldRating      = "rating"
	fieldComments    = "comments"

	placeholderName     = "Ex: Web Development Workshop"
	placeholderDate     = "Ex: 2025-03-15 (YYYY-MM-DD)"
	placeholderTime     = "Ex: 14:00"
	placeholderLocation = "Ex: Computer Lab A"
	placeholderRating   = "1 to 5"
)

// Modal CustomIDs carry the values collected before the modal opened,
// joined with ':'.
func modalID(parts ...string) string {
	return strings.Join(parts, ":")
}

func createEventModal(t pkgdiscord.Translate, eventType string, capacity int64) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: modalID(createEventModalID, eventType, strconv.FormatInt(capacity, 10)),
		Title:    t("ui.create.modal_title", nil),
		Components: []discordgo.MessageComponent{
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldName, Label: "Name", Style: discordgo.TextInputShort, Required: true, MaxLength: 100, Placeholder: placeholderName}),
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldDate, Label: "Date", Style: discordgo.TextInputShort, Required: true, MaxLength: 10, Placeholder: placeholderDate}),
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldTime, Label: "Time", Style: discordgo.TextInputShort, Required: true, MaxLength: 5, Placeholder: placeholderTime}),
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldLocation, Label: "Location", Style: discordgo.TextInputShort, Required: true, MaxLength: 100, Placeholder: placeholderLocation}),
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldDescription, Label: "Description", Style: discordgo.TextInputParagraph, Required: false, MaxLength: 1000}),
		},
	}
}

func feedbackModal(t pkgdiscord.Translate, eventID string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: modalID(feedbackModalID, eventID),
		Title:    t("ui.feedback.modal_title", nil),
		Components: []discordgo.MessageComponent{
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldRating, Label: "Rating", Style: discordgo.TextInputShort, Required: true, MaxLength: 1, Placeholder: placeholderRating}),
			pkgdiscord.TextInputRow(discordgo.TextInput{CustomID: fieldComments, Label: t("ui.feedback.comments", nil), Style: discordgo.TextInputParagraph, Required: false, MaxLength: entities.MaxCommentsLength}),
		},
	}
}

// HandleModalSubmit routes modals by the prefix of their CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	parts := strings.Split(data.CustomID, ":")
	switch parts[0] {
	case createEventModalID:
		h.handleCreateEventSubmit(s, i, parts[1:], pkgdiscord.ExtractModalData(data))
	case feedbackModalID:
		h.handleFeedbackSubmit(s, i, strings.Join(parts[1:], ":"), pkgdiscord.ExtractModalData(data))
	default:
		// Unknown modal: ignored.
	}
}

// eventForm combines the slash command options carried in the CustomID with
// the modal fields.
func eventForm(idParts []string, values map[string]string) application.EventForm {
	form := application.EventForm{
		Name:        values[fieldName],
		Date:        values[fieldDate],
		Time:        values[fieldTime],
		Location:    values[fieldLocation],
		Description: values[fieldDescription],
	}
	if len(idParts) > 0 {
		form.Type = idParts[0]
	}
	if len(idParts) > 1 {
		form.MaxCapacity = idParts[1]
	}
	return form
}

func (h *Handler) handleCreateEventSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, idParts []string, values map[string]string) {
	a := h.actorOf(i)
	if err := h.requireAdmin(a); err != nil {
		h.fail(s, i, a, "create_event", err)
		return
	}

	ctx, cancel := newContext()
	defer cancel()

	event, err := h.uc.Catalog.CreateEvent(ctx, eventForm(idParts, values))
	if err != nil {
		h.fail(s, i, a, "create_event", err)
		return
	}
	log.Printf("✅ Event created: %s (%s) by %s", event.Name, event.ID, a.userID)
	respondNotification(s, i.Interaction, h.notifier.Success(a.locale, "create_event", map[string]any{"Name": event.Name}))
}

// parseRating returns 0, which is out of range, for non-numeric input.
func parseRating(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func (h *Handler) handleFeedbackSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, eventID string, values map[string]string) {
	a := h.actorOf(i)
	ctx, cancel := newContext()
	defer cancel()

	session, err := h.session(ctx, a)
	if err != nil {
		h.fail(s, i, a, "feedback", err)
		return
	}
	if _, err := h.uc.Feedback.SubmitFeedback(ctx, session, eventID, parseRating(values[fieldRating]), values[fieldComments]); err != nil {
		h.fail(s, i, a, "feedback", err)
		return
	}
	h.succeedForEvent(s, i, a, "feedback", eventID)
}
