package domain

import "strings"

// Priority expresses ticket urgency. Ordering uses Rank, never the string.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the known priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority accepts any casing of a known priority.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", invalidPriorityError(raw)
}

// Rank maps the priority onto Low=1, Medium=2, High=3. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// Validate ensures the priority is one of the known values.
func (p Priority) Validate() error {
	if p.Rank() == 0 {
		return invalidPriorityError(string(p))
	}
	return nil
}
