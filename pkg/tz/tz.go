package tz

import (
	"fmt"
	"strings"
	"time"
)

// Load resolves an IANA zone name such as "Europe/Madrid". An empty name is UTC.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// Date formats the calendar day of t in loc as YYYY-MM-DD.
func Date(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}
