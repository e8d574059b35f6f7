// Package tz resolves the campus time zone used for calendar checks.
package tz

import (
	"fmt"
	"strings"
	"time"
)

// Load resolves an IANA zone name. An empty name or "UTC" yields time.UTC.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %q: %w", name, err)
	}
	return loc, nil
}
