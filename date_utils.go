package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultDuration = 60

var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

// Clock times carry no date of their own; parsing anchors them all to the
// same reference day so durations can be computed by subtraction.
var timeLayouts = []string{
	"3:04 PM",
	"3:04:05 PM",
	"15:04",
	"15:04:05",
	"3 PM",
}

func parseCalendarDate(s string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range dateLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

func parseClockTime(s string) (time.Time, error) {
	// Fold the meridiem to upper case since time.Parse rejects "am"/"pm"
	s = strings.ToUpper(strings.TrimSpace(s))

	var t time.Time
	var err error
	for _, layout := range timeLayouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time: %s", s)
}

// formatDate converts a PPM date such as "July 16, 2025" to the
// "2025-07-16" form Nookal expects. Unparseable input degrades to the
// empty string rather than failing the request.
func formatDate(s string) string {
	if s == "" {
		return ""
	}

	t, err := parseCalendarDate(s)
	if err != nil {
		zapLogger.Warn("date formatting error", zap.String("value", s), zap.Error(err))
		return ""
	}
	return t.Format("2006-01-02")
}

// formatTime converts a PPM time such as "7:00 AM" to 24-hour "07:00".
// Unparseable input degrades to the empty string.
func formatTime(s string) string {
	if s == "" {
		return ""
	}

	t, err := parseClockTime(s)
	if err != nil {
		zapLogger.Warn("time formatting error", zap.String("value", s), zap.Error(err))
		return ""
	}
	return t.Format("15:04")
}

// calculateDuration returns the whole minutes between two clock times.
// Missing input, parse failures, and non-positive differences all fall
// back to the default rather than erroring the request.
func calculateDuration(startTime, endTime string) int {
	if startTime == "" || endTime == "" {
		return defaultDuration
	}

	start, err := parseClockTime(startTime)
	if err != nil {
		zapLogger.Warn("duration calculation error", zap.String("start", startTime), zap.Error(err))
		return defaultDuration
	}

	end, err := parseClockTime(endTime)
	if err != nil {
		zapLogger.Warn("duration calculation error", zap.String("end", endTime), zap.Error(err))
		return defaultDuration
	}

	diffMins := int(math.Round(end.Sub(start).Minutes()))
	if diffMins > 0 {
		return diffMins
	}
	return defaultDuration
}
