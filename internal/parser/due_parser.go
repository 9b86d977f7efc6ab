package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeRegex = regexp.MustCompile(`^(\d+)\s*(hour|hours|day|days|week|weeks)$`)

// ParseDueDate parses the supported due date formats:
// - yyyy-mm-dd (e.g., "2026-03-15")
// - dd/mm/yyyy (e.g., "15/03/2026")
// - "today", "tomorrow"
// - relative offsets (e.g., "3 days", "24 hours", "2 weeks")
func ParseDueDate(input string) (*time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		due := endOfDay(today)
		return &due, nil
	case "tomorrow":
		due := endOfDay(today.AddDate(0, 0, 1))
		return &due, nil
	}

	if parsed, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		due := endOfDay(parsed)
		return &due, nil
	}
	if parsed, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		due := endOfDay(parsed)
		return &due, nil
	}

	if matches := relativeRegex.FindStringSubmatch(input); len(matches) == 3 {
		amount, err := strconv.Atoi(matches[1])
		if err != nil || amount < 1 {
			return nil, fmt.Errorf("invalid offset %q", matches[1])
		}
		switch matches[2] {
		case "hour", "hours":
			due := now.Add(time.Duration(amount) * time.Hour)
			return &due, nil
		case "day", "days":
			due := endOfDay(today.AddDate(0, 0, amount))
			return &due, nil
		case "week", "weeks":
			due := endOfDay(today.AddDate(0, 0, amount*7))
			return &due, nil
		}
	}

	return nil, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, X hours, or X weeks")
}

// endOfDay pins a due date to 23:59:59 so it stays due for the whole
// calendar day.
func endOfDay(day time.Time) time.Time {
	return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// FormatDueDate formats a due date for display relative to today.
func FormatDueDate(dueDate *time.Time) string {
	if dueDate == nil {
		return ""
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, dueDate.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	dateStr := dueDate.Format("2006-01-02")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("due %s", dateStr)
	}
}
