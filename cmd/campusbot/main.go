package main

import (
	"context"
	"log"
	"os"
	"time"

	"campusevents/internal/adapters/discord"
	"campusevents/internal/application"
	"campusevents/internal/config"
	"campusevents/internal/infrastructure/fixtures"
	"campusevents/internal/infrastructure/i18n"
	"campusevents/internal/infrastructure/memory"
	"campusevents/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	loc, err := tz.Load(cfg.CampusTimezone)
	if err != nil {
		log.Fatalf("❌ Invalid campus time zone: %v", err)
	}

	stores := application.Stores{
		Events:        memory.NewEventRepository(),
		Students:      memory.NewStudentRepository(),
		Registrations: memory.NewRegistrationRepository(),
		Feedback:      memory.NewFeedbackRepository(),
	}

	if cfg.SeedFixtures {
		seed, err := fixtures.Default()
		if err != nil {
			log.Fatalf("❌ Failed to parse demo data: %v", err)
		}
		counts, err := seed.Apply(context.Background(), fixtures.Repositories(stores), time.Now(), loc)
		if err != nil {
			log.Fatalf("❌ Failed to load demo data: %v", err)
		}
		log.Printf("✅ Demo data loaded: %d events, %d students, %d registrations, %d feedback",
			counts.Events, counts.Students, counts.Registrations, counts.Feedback)
	}

	clock := application.Clock(time.Now)
	uc := discord.UseCases{
		Catalog:       application.NewCatalogService(stores, clock),
		Registrations: application.NewRegistrationService(stores, clock, loc),
		Feedback:      application.NewFeedbackService(stores, clock),
		Students:      application.NewStudentService(stores, clock),
		Reports:       application.NewReportService(stores),
	}
	notifier := application.NewNotifier(i18n.NewTranslator(cfg.DefaultLocale))
	handler := discord.NewHandler(uc, notifier, cfg.IsAdmin, cfg.DefaultLocale, cfg.TopLimit)

	bot, err := discord.NewBot(cfg, handler)
	if err != nil {
		log.Fatalf("❌ Failed to create the bot: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Failed to start the bot: %v", err)
		os.Exit(1)
	}
}
