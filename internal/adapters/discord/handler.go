package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/application"
	"campusevents/internal/domain"
	"campusevents/internal/domain/entities"
	"campusevents/internal/ports/input"
)

// requestTimeout bounds the work done for a single interaction.
const requestTimeout = 5 * time.Second

// UseCases groups the input ports the handler drives.
type UseCases struct {
	Catalog       input.CatalogUseCase
	Registrations input.RegistrationUseCase
	Feedback      input.FeedbackUseCase
	Students      input.StudentUseCase
	Reports       input.ReportUseCase
}

// Handler handles Discord interactions using use cases.
type Handler struct {
	uc            UseCases
	notifier      *application.Notifier
	isAdmin       func(userID string) bool
	defaultLocale string
	topLimit      int
}

// NewHandler creates a Handler.
func NewHandler(uc UseCases, notifier *application.Notifier, isAdmin func(string) bool, defaultLocale string, topLimit int) *Handler {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &Handler{
		uc:            uc,
		notifier:      notifier,
		isAdmin:       isAdmin,
		defaultLocale: defaultLocale,
		topLimit:      topLimit,
	}
}

// actor is the Discord user behind an interaction.
type actor struct {
	userID      string
	displayName string
	locale      string
}

func (h *Handler) actorOf(i *discordgo.InteractionCreate) actor {
	a := actor{locale: string(i.Locale)}
	if a.locale == "" {
		a.locale = h.defaultLocale
	}
	switch {
	case i.Member != nil && i.Member.User != nil:
		a.userID = i.Member.User.ID
		a.displayName = resolveDisplayName(i.Member)
	case i.User != nil:
		a.userID = i.User.ID
		a.displayName = userDisplayName(i.User)
	}
	return a
}

// session resolves the acting student, registering them on first contact.
func (h *Handler) session(ctx context.Context, a actor) (entities.Session, error) {
	st, err := h.uc.Students.EnsureStudent(ctx, a.userID, a.displayName, "")
	if err != nil {
		return entities.Session{}, err
	}
	return entities.Session{StudentID: st.ID, Locale: a.locale}, nil
}

func (h *Handler) requireAdmin(a actor) error {
	if !h.isAdmin(a.userID) {
		return domain.ErrNotAdmin
	}
	return nil
}

func (h *Handler) translator(locale string) func(string, map[string]any) string {
	return func(key string, data map[string]any) string {
		return h.notifier.Message(locale, key, data)
	}
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
