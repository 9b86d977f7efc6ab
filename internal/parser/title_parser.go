package parser

import (
	"regexp"
	"strings"
	"time"
)

// ParsedTask represents a task parsed from natural language
type ParsedTask struct {
	Title    string
	Category string
	Tags     []string
	Priority string
	DueDate  *time.Time
	Errors   []string
}

var (
	tagRegex      = regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	categoryRegex = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	priorityRegex = regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`due:([^\s]+)`)
)

// ParseTitle extracts metadata from a task title using natural syntax.
// Syntax: "Task title #tag1,tag2 @category +priority due:3 days"
func ParseTitle(input string) ParsedTask {
	result := ParsedTask{
		Title:  input,
		Tags:   []string{},
		Errors: []string{},
	}

	// Extract tags (#tag1,tag2 or #tag1 #tag2)
	for _, match := range tagRegex.FindAllStringSubmatch(input, -1) {
		if len(match) > 1 {
			for _, tag := range strings.Split(match[1], ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					result.Tags = append(result.Tags, tag)
				}
			}
		}
	}
	input = tagRegex.ReplaceAllString(input, "")

	// Extract category (@category-name)
	if matches := categoryRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Category = matches[1]
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// Extract priority (+high, +3, +medium, etc.)
	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 1 {
		priority := strings.ToLower(matches[1])
		if isValidPriority(priority) {
			result.Priority = NormalizePriority(priority)
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+matches[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Extract due date (due:3days, due:15/12/2024, etc.)
	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 1 {
		dueDate, err := ParseDueDate(matches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+matches[1]+"': "+err.Error())
		} else {
			result.DueDate = dueDate
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.TrimSpace(strings.Join(strings.Fields(input), " "))

	return result
}

// isValidPriority checks if a priority value is valid
func isValidPriority(priority string) bool {
	validPriorities := map[string]bool{
		"low":    true,
		"medium": true,
		"med":    true,
		"high":   true,
		"1":      true,
		"2":      true,
		"3":      true,
	}
	return validPriorities[priority]
}

// NormalizePriority converts priority to standard form
func NormalizePriority(priority string) string {
	priority = strings.ToLower(strings.TrimSpace(priority))
	switch priority {
	case "1", "low":
		return "low"
	case "3", "high":
		return "high"
	default:
		return "medium"
	}
}
