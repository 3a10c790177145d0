package leads

import (
	"fmt"
	"time"
)

const (
	// DefaultTimezone is the zone submission timestamps are rendered in.
	DefaultTimezone = "Asia/Kolkata"

	// SubmittedAtLayout renders day-month-year with hyphens and a 24h clock.
	SubmittedAtLayout = "02-01-2006, 15:04:05"
)

// IST has no daylight saving, so a fixed offset is exact when zoneinfo is unavailable.
var istFixed = time.FixedZone("IST", 5*60*60+30*60)

// LoadLocation resolves the configured zone name, defaulting to DefaultTimezone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == DefaultTimezone {
			return istFixed, nil
		}
		return nil, fmt.Errorf("leads: load timezone %q: %w", name, err)
	}
	return loc, nil
}

// FormatSubmittedAt renders t in loc using SubmittedAtLayout.
func FormatSubmittedAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = istFixed
	}
	return t.In(loc).Format(SubmittedAtLayout)
}
