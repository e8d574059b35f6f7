package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/listing"
)

const (
	maxChoices    = 25
	maxChoiceName = 100
)

// HandleAutocomplete suggests events or students for the focused option.
func (h *Handler) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	ctx, cancel := newContext()
	defer cancel()

	choices, err := h.suggest(ctx, data.Name, focusedOption(data.Options))
	if err != nil {
		log.Printf("❌ Autocomplete failed (%s): %v", data.Name, err)
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		log.Printf("❌ Autocomplete response failed: %v", err)
	}
}

func focusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o.Focused {
			return o
		}
	}
	return nil
}

// suggest returns the choices for the focused option of command. Registering
// and the event detail view only offer events that are not completed. An
// empty, non-nil list is returned on failure.
func (h *Handler) suggest(ctx context.Context, command string, focused *discordgo.ApplicationCommandInteractionDataOption) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if focused == nil || focused.Type != discordgo.ApplicationCommandOptionString {
		return []*discordgo.ApplicationCommandOptionChoice{}, nil
	}
	typed := focused.StringValue()

	switch focused.Name {
	case optEvent:
		audience := listing.AudienceAdmin
		if command == cmdRegister || command == cmdEvent {
			audience = listing.AudienceStudent
		}
		events, err := h.uc.Catalog.BrowseEvents(ctx, listing.Query{Audience: audience, Search: typed})
		if err != nil {
			return []*discordgo.ApplicationCommandOptionChoice{}, err
		}
		return eventChoices(events), nil
	case optStudent:
		students, err := h.uc.Students.SearchStudents(ctx, typed)
		if err != nil {
			return []*discordgo.ApplicationCommandOptionChoice{}, err
		}
		return studentChoices(students), nil
	}
	return []*discordgo.ApplicationCommandOptionChoice{}, nil
}

func eventChoices(events []entities.EventDetails) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(events), maxChoices))
	for _, e := range events {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  truncateRunes(fmt.Sprintf("%s · %s", e.Name, e.Date), maxChoiceName),
			Value: e.ID,
		})
	}
	return choices
}

func studentChoices(students []entities.Student) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(students), maxChoices))
	for _, st := range students {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  truncateRunes(fmt.Sprintf("%s · %s", st.Name, st.ID), maxChoiceName),
			Value: st.ID,
		})
	}
	return choices
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
