package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"discovery-server/models"
)

// LocalTime is an instant already converted to the catalog's operating
// locale: a day of week (0 = Sunday) plus minutes since midnight.
type LocalTime struct {
	DayOfWeek int
	Minutes   int
}

// Clock supplies the current LocalTime. Injected into the pipeline so the
// hours evaluation is testable with fixed instants and so the operating
// locale is configuration, not code.
type Clock interface {
	Now() LocalTime
}

// LocationClock reads the wall clock in a fixed time.Location.
type LocationClock struct {
	loc *time.Location
}

func NewLocationClock(loc *time.Location) *LocationClock {
	return &LocationClock{loc: loc}
}

func (c *LocationClock) Now() LocalTime {
	now := time.Now().In(c.loc)
	return LocalTime{
		DayOfWeek: int(now.Weekday()),
		Minutes:   now.Hour()*60 + now.Minute(),
	}
}

// FixedClock always reports the same LocalTime.
type FixedClock struct {
	Time LocalTime
}

func (c FixedClock) Now() LocalTime {
	return c.Time
}

// IsOpenAt reports whether a business with the given weekly schedule is open
// at the given local instant. A day with no entry, a closed day, and blank or
// malformed open/close times all evaluate to closed. The comparison is
// half-open: a business closing at "18:00" is already closed at exactly 18:00.
//
// Windows that cross midnight (close earlier than open) get no special
// treatment and report closed for the hours past midnight. Known gap, kept
// as-is until there is a product decision on the intended behavior.
func IsOpenAt(weeklyHours []models.DaySchedule, now LocalTime) bool {
	var entry *models.DaySchedule
	for i := range weeklyHours {
		if weeklyHours[i].DayOfWeek == now.DayOfWeek {
			entry = &weeklyHours[i]
			break
		}
	}
	if entry == nil || entry.IsClosed {
		return false
	}

	openMinutes, err := parseClockMinutes(entry.OpenTime)
	if err != nil {
		return false
	}
	closeMinutes, err := parseClockMinutes(entry.CloseTime)
	if err != nil {
		return false
	}

	return openMinutes <= now.Minutes && now.Minutes < closeMinutes
}

// parseClockMinutes converts an "HH:MM" string to minutes since midnight.
func parseClockMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}
