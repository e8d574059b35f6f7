package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultTimezone = "UTC"
	defaultLocale   = "en"
	defaultTopLimit = 3
)

type Config struct {
	Token          string
	GuildID        string
	AdminUserIDs   map[string]bool
	CampusTimezone string
	DefaultLocale  string
	SeedFixtures   bool
	TopLimit       int
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		Token:          get("DISCORD_TOKEN"),
		GuildID:        get("GUILD_ID"),
		AdminUserIDs:   parseAdminIDs(get("ADMIN_USER_IDS")),
		CampusTimezone: get("CAMPUS_TIMEZONE"),
		DefaultLocale:  get("DEFAULT_LOCALE"),
		SeedFixtures:   true,
		TopLimit:       defaultTopLimit,
	}

	if raw := get("SEED_FIXTURES"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("config: SEED_FIXTURES must be a boolean, got %q", raw)
		}
		cfg.SeedFixtures = v
	}
	if raw := get("TOP_LIMIT"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: TOP_LIMIT must be an integer, got %q", raw)
		}
		cfg.TopLimit = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Token == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required")
	}
	if c.GuildID != "" && !isSnowflake(c.GuildID) {
		return fmt.Errorf("config: GUILD_ID must be a Discord server ID (digits only)")
	}
	if c.CampusTimezone == "" {
		c.CampusTimezone = defaultTimezone
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = defaultLocale
	}
	if c.TopLimit <= 0 {
		return fmt.Errorf("config: TOP_LIMIT must be positive, got %d", c.TopLimit)
	}
	return nil
}

// IsAdmin reports whether the Discord user may run administrative commands.
func (c *Config) IsAdmin(userID string) bool {
	return c.AdminUserIDs[userID]
}

// parseAdminIDs keeps the well-formed IDs of a comma-separated list.
func parseAdminIDs(raw string) map[string]bool {
	m := map[string]bool{}
	if raw == "" {
		return m
	}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" || !isSnowflake(p) {
			continue
		}
		m[p] = true
	}
	return m
}

func isSnowflake(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
