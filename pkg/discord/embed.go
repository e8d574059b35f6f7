package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"campusevents/internal/domain/entities"
	"campusevents/pkg/calendar"
)

const (
	ColorDefault     = 0x5865F2
	ColorDestructive = 0xED4245
	ColorSuccess     = 0x57F287

	// maxEmbedFields is the Discord limit of fields per embed.
	maxEmbedFields = 25
)

// Translate renders a message key in the caller's locale.
type Translate func(key string, data map[string]any) string

// BuildNotificationEmbed renders a transient notification.
func BuildNotificationEmbed(title, description string, destructive bool) *discordgo.MessageEmbed {
	color := ColorDefault
	if destructive {
		color = ColorDestructive
	}
	return &discordgo.MessageEmbed{Title: title, Description: description, Color: color}
}

// BuildEventListEmbed shows one field per event, capped to the Discord limit.
func BuildEventListEmbed(t Translate, events []entities.EventDetails) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: t("ui.events.title", map[string]any{"Count": len(events)}),
		Color: ColorDefault,
	}
	if len(events) == 0 {
		embed.Description = t("ui.events.empty", nil)
		return embed
	}
	for i := range events {
		if i == maxEmbedFields {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("+%d", len(events)-maxEmbedFields)}
			break
		}
		embed.Fields = append(embed.Fields, eventField(t, &events[i]))
	}
	return embed
}

func eventField(t Translate, e *entities.EventDetails) *discordgo.MessageEmbedField {
	var b strings.Builder
	b.WriteString(t("ui.event.when", map[string]any{
		"Date": calendar.FormatLongDate(e.Date),
		"Time": calendar.FormatClock(e.Time),
	}))
	b.WriteString(" • ")
	b.WriteString(e.Location)
	b.WriteString("\n")
	b.WriteString(t("ui.event.spots", map[string]any{
		"Registered": len(e.Registrations),
		"Capacity":   e.MaxCapacity,
		"Available":  max(e.AvailableSpots(), 0),
	}))
	fmt.Fprintf(&b, " • %s\n`%s`", e.Status, e.ID)
	return &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("%s %s · %s", typeEmoji(e.Type), e.Name, e.Type),
		Value: b.String(),
	}
}

// BuildEventEmbed shows a single event with its description and where the
// viewing student stands with it.
func BuildEventEmbed(t Translate, e *entities.EventDetails, viewerID string) *discordgo.MessageEmbed {
	field := eventField(t, e)
	return &discordgo.MessageEmbed{
		Title:       field.Name,
		Description: strings.TrimSpace(e.Description + "\n\n" + field.Value),
		Color:       ColorDefault,
		Footer:      &discordgo.MessageEmbedFooter{Text: viewerBadge(t, e, viewerID)},
	}
}

func viewerBadge(t Translate, e *entities.EventDetails, viewerID string) string {
	if e.HasAttendee(viewerID) {
		return "✅ " + t("ui.badge.attended", nil)
	}
	for _, r := range e.Registrations {
		if r.StudentID == viewerID {
			return "📝 " + t("ui.badge.registered", nil)
		}
	}
	return t("ui.badge.not_registered", nil)
}

// Card is the per-registration state shown on the personal events screen.
type Card struct {
	Event             entities.EventDetails
	Attended          bool
	Missed            bool
	CanMarkAttendance bool
	FeedbackSubmitted bool
}

// BuildMyEventsEmbed lists a student's registrations with their badges.
func BuildMyEventsEmbed(t Translate, cards []Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: t("ui.my_events.title", nil), Color: ColorDefault}
	if len(cards) == 0 {
		embed.Description = t("ui.my_events.empty", nil)
		return embed
	}
	for i := range cards {
		if i == maxEmbedFields {
			break
		}
		c := &cards[i]
		field := eventField(t, &c.Event)
		field.Value += "\n" + strings.Join(cardBadges(t, c), " · ")
		embed.Fields = append(embed.Fields, field)
	}
	return embed
}

func cardBadges(t Translate, c *Card) []string {
	var badges []string
	switch {
	case c.Attended:
		badges = append(badges, "✅ "+t("ui.badge.attended", nil))
	case c.Missed:
		badges = append(badges, "❌ "+t("ui.badge.missed", nil))
	case c.CanMarkAttendance:
		badges = append(badges, "📍 "+t("ui.badge.can_mark", nil))
	default:
		badges = append(badges, "⏳ "+t("ui.badge.wait", nil))
	}
	if c.FeedbackSubmitted {
		badges = append(badges, "⭐ "+t("ui.badge.feedback", nil))
	}
	return badges
}

// Dashboard is the admin overview rendered by BuildDashboardEmbed.
type Dashboard struct {
	Summary       entities.DashboardSummary
	PopularEvents []entities.EventReport
	TopStudents   []entities.StudentReport
}

func BuildDashboardEmbed(t Translate, d Dashboard) *discordgo.MessageEmbed {
	none := t("ui.dashboard.none", nil)

	popular := make([]string, 0, len(d.PopularEvents))
	for i, r := range d.PopularEvents {
		popular = append(popular, fmt.Sprintf("%d. **%s** · %d · %d%% · ★ %.1f · %s %.1f",
			i+1, r.EventName, r.TotalRegistrations, r.AttendancePercentage, r.AverageFeedbackScore,
			t("ui.dashboard.score", nil), r.PopularityScore))
	}
	top := make([]string, 0, len(d.TopStudents))
	for i, r := range d.TopStudents {
		top = append(top, fmt.Sprintf("%d. **%s** · %d/%d · %d",
			i+1, r.StudentName, r.EventsAttended, r.EventsRegistered, r.ParticipationScore))
	}

	return &discordgo.MessageEmbed{
		Title: t("ui.dashboard.title", nil),
		Color: ColorDefault,
		Fields: []*discordgo.MessageEmbedField{
			{Name: t("ui.dashboard.total_events", nil), Value: fmt.Sprint(d.Summary.TotalEvents), Inline: true},
			{Name: t("ui.dashboard.total_registrations", nil), Value: fmt.Sprint(d.Summary.TotalRegistrations), Inline: true},
			{Name: t("ui.dashboard.total_attendees", nil), Value: fmt.Sprint(d.Summary.TotalAttendees), Inline: true},
			{Name: t("ui.dashboard.average_attendance", nil), Value: fmt.Sprintf("%d%%", d.Summary.AverageAttendance), Inline: true},
			{Name: t("ui.dashboard.active_students", nil), Value: fmt.Sprint(d.Summary.ActiveStudents), Inline: true},
			{Name: t("ui.dashboard.popular", nil), Value: joinOr(popular, none)},
			{Name: t("ui.dashboard.top_students", nil), Value: joinOr(top, none)},
		},
	}
}

// BuildEventReportEmbed summarizes one event's metrics.
func BuildEventReportEmbed(r entities.EventReport) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📊 " + r.EventName,
		Color: ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Registrations", Value: fmt.Sprint(r.TotalRegistrations), Inline: true},
			{Name: "Attendance", Value: fmt.Sprintf("%d%%", r.AttendancePercentage), Inline: true},
			{Name: "Feedback", Value: fmt.Sprintf("★ %.1f", r.AverageFeedbackScore), Inline: true},
			{Name: "Popularity", Value: fmt.Sprintf("%.1f", r.PopularityScore), Inline: true},
		},
	}
}

// BuildStudentReportEmbed summarizes one student's participation.
func BuildStudentReportEmbed(r entities.StudentReport) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎓 " + r.StudentName,
		Color: ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Attended", Value: fmt.Sprint(r.EventsAttended), Inline: true},
			{Name: "Registered", Value: fmt.Sprint(r.EventsRegistered), Inline: true},
			{Name: "Score", Value: fmt.Sprint(r.ParticipationScore), Inline: true},
		},
	}
}

func joinOr(lines []string, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	return strings.Join(lines, "\n")
}

func typeEmoji(t entities.EventType) string {
	switch t {
	case entities.EventTypeWorkshop:
		return "🛠️"
	case entities.EventTypeFest:
		return "🎉"
	case entities.EventTypeSeminar:
		return "🎤"
	}
	return "📅"
}
