package discord

import (
	"github.com/bwmarrin/discordgo"

	"campusevents/internal/domain/entities"
	"campusevents/internal/domain/listing"
)

const (
	cmdEvents        = "events"
	cmdEvent         = "event"
	cmdManageEvents  = "manage-events"
	cmdEventCreate   = "event-create"
	cmdEventStatus   = "event-status"
	cmdRegister      = "register"
	cmdAttend        = "attend"
	cmdFeedback      = "feedback"
	cmdMyEvents      = "my-events"
	cmdReport        = "report"
	cmdStudentReport = "student-report"
	cmdDashboard     = "dashboard"

	optEvent    = "event"
	optSearch   = "search"
	optType     = "type"
	optSort     = "sort"
	optStatus   = "status"
	optCapacity = "capacity"
	optStudent  = "student"
)

// adminCommands may only be run by configured administrators.
var adminCommands = map[string]bool{
	cmdManageEvents:  true,
	cmdEventCreate:   true,
	cmdEventStatus:   true,
	cmdReport:        true,
	cmdStudentReport: true,
	cmdDashboard:     true,
}

func eventOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         optEvent,
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

func typeChoices(withAll bool) []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	if withAll {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: "All", Value: listing.TypeAll})
	}
	for _, t := range entities.EventTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(t), Value: string(t)})
	}
	return choices
}

func listOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionString, Name: optSearch, Description: "Search by name, location or description"},
		{Type: discordgo.ApplicationCommandOptionString, Name: optType, Description: "Filter by event type", Choices: typeChoices(true)},
		{Type: discordgo.ApplicationCommandOptionString, Name: optSort, Description: "Sort order", Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Date", Value: string(listing.SortDate)},
			{Name: "Registrations", Value: string(listing.SortRegistrations)},
			{Name: "Attendance", Value: string(listing.SortAttendance)},
			{Name: "Popularity", Value: string(listing.SortPopularity)},
		}},
	}
}

// applicationCommands returns the slash commands registered at startup.
func applicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: cmdEvents, Description: "Browse upcoming campus events", Options: listOptions()},
		{Name: cmdEvent, Description: "Show one event in detail", Options: []*discordgo.ApplicationCommandOption{eventOption("Event to show")}},
		{Name: cmdManageEvents, Description: "List every event (admin)", Options: listOptions()},
		{
			Name:        cmdEventCreate,
			Description: "Create a new event (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: optType, Description: "Event type", Required: true, Choices: typeChoices(false)},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: optCapacity, Description: "Maximum number of registrations", Required: true},
			},
		},
		{
			Name:        cmdEventStatus,
			Description: "Change an event status (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				eventOption("Event to update"),
				{Type: discordgo.ApplicationCommandOptionString, Name: optStatus, Description: "New status", Required: true, Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Upcoming", Value: string(entities.StatusUpcoming)},
					{Name: "Ongoing", Value: string(entities.StatusOngoing)},
					{Name: "Completed", Value: string(entities.StatusCompleted)},
				}},
			},
		},
		{Name: cmdRegister, Description: "Register for an event", Options: []*discordgo.ApplicationCommandOption{eventOption("Event to join")}},
		{Name: cmdAttend, Description: "Mark your attendance on the event day", Options: []*discordgo.ApplicationCommandOption{eventOption("Event you are attending")}},
		{Name: cmdFeedback, Description: "Rate an event", Options: []*discordgo.ApplicationCommandOption{eventOption("Event to rate")}},
		{Name: cmdMyEvents, Description: "Show your registrations"},
		{Name: cmdReport, Description: "Event report with JSON export (admin)", Options: []*discordgo.ApplicationCommandOption{eventOption("Event to report on")}},
		{
			Name:        cmdStudentReport,
			Description: "Participation report for a student (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: optStudent, Description: "Student name or ID", Required: true, Autocomplete: true},
			},
		},
		{Name: cmdDashboard, Description: "Admin dashboard (admin)"},
	}
}

// options indexes the top-level options of a slash command by name.
func options(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func stringOpt(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := m[name]; ok && o.Type == discordgo.ApplicationCommandOptionString {
		return o.StringValue()
	}
	return ""
}

func intOpt(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) (int64, bool) {
	if o, ok := m[name]; ok && o.Type == discordgo.ApplicationCommandOptionInteger {
		return o.IntValue(), true
	}
	return 0, false
}

// listQuery turns the browse options into a listing query. Unknown sort
// keys fall back to date.
func listQuery(m map[string]*discordgo.ApplicationCommandInteractionDataOption, audience listing.Audience) listing.Query {
	sort, _ := listing.ParseSortKey(stringOpt(m, optSort))
	return listing.Query{
		Audience: audience,
		Search:   stringOpt(m, optSearch),
		Type:     stringOpt(m, optType),
		Sort:     sort,
	}
}
