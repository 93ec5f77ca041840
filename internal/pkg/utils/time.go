package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var clockLayouts = []string{
	constvars.ClockLayout,
	constvars.ClockLayoutWithSeconds,
	constvars.Clock12HourLayout,
	time.RFC3339,
}

var calendarDateLayouts = []string{
	constvars.CalendarDateLayout,
	constvars.CalendarDateLayoutDMY,
	time.RFC3339,
}

// ParseClock normalises a wall-clock value to "HH:mm". RFC3339 timestamps keep the clock
// of their own offset.
func ParseClock(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range clockLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.Format(constvars.ClockLayout), nil
		}
	}
	return "", fmt.Errorf(constvars.ErrDevInvalidClock, value)
}

// ParseCalendarDate normalises a calendar date to "YYYY-MM-DD".
func ParseCalendarDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range calendarDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.Format(constvars.CalendarDateLayout), nil
		}
	}
	return "", fmt.Errorf(constvars.ErrDevInvalidCalendarDate, value)
}

// ClockToMinutes returns the minutes elapsed since midnight for an "HH:mm" value.
func ClockToMinutes(hhmm string) (int, error) {
	normalized, err := ParseClock(hhmm)
	if err != nil {
		return 0, err
	}
	parsed, _ := time.Parse(constvars.ClockLayout, normalized)
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func minutesToClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// To12HourDisplay turns "14:05" into "2:05 PM". Malformed input yields "".
func To12HourDisplay(hhmm string) string {
	normalized, err := ParseClock(hhmm)
	if err != nil {
		return ""
	}
	parsed, _ := time.Parse(constvars.ClockLayout, normalized)
	return parsed.Format(constvars.Clock12HourLayout)
}

// AddFixedDuration shifts a clock value by minutes, wrapping around midnight in both directions.
func AddFixedDuration(hhmm string, minutes int) (string, error) {
	start, err := ClockToMinutes(hhmm)
	if err != nil {
		return "", err
	}
	return minutesToClock(start + minutes), nil
}

func ConsultationEnd(hhmm string) (string, error) {
	return AddFixedDuration(hhmm, constvars.ConsultationDurationMinutes)
}

// FormatSlotRange renders "10:15 AM - 10:45 AM" for a consultation starting at hhmm.
func FormatSlotRange(hhmm string) string {
	end, err := ConsultationEnd(hhmm)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s - %s", To12HourDisplay(hhmm), To12HourDisplay(end))
}

// FormatDisplayDate renders "05 Mar 2025". Unparseable dates are returned as given.
func FormatDisplayDate(date string) string {
	normalized, err := ParseCalendarDate(date)
	if err != nil {
		return date
	}
	parsed, _ := time.Parse(constvars.CalendarDateLayout, normalized)
	return parsed.Format(constvars.DisplayDateLayout)
}

// IsTimeWithinRange reports whether requestedTime falls in [startTime, endTime).
// A range whose end is before its start spans midnight.
func IsTimeWithinRange(requestedTime, startTime, endTime string) bool {
	requested, err := ClockToMinutes(requestedTime)
	if err != nil {
		return false
	}
	start, err := ClockToMinutes(startTime)
	if err != nil {
		return false
	}
	end, err := ClockToMinutes(endTime)
	if err != nil {
		return false
	}

	if start == end {
		return false
	}
	if start < end {
		return requested >= start && requested < end
	}
	return requested >= start || requested < end
}
