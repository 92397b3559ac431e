package domain

import "strings"

// Status represents the lifecycle state of a ticket as reported by the backend.
type Status string

const (
	StatusUnknown     Status = ""
	StatusOpen        Status = "Open"
	StatusCreated     Status = "Created" // older backends report new tickets as Created
	StatusAssigned    Status = "Assigned"
	StatusReopened    Status = "Reopened"
	StatusInProgress  Status = "In Progress"
	StatusResolved    Status = "Resolved"
	StatusClosed      Status = "Closed"
	StatusNotResolved Status = "Not Resolved"
)

// Statuses lists the known statuses in workflow order.
var Statuses = []Status{
	StatusOpen,
	StatusCreated,
	StatusAssigned,
	StatusReopened,
	StatusInProgress,
	StatusResolved,
	StatusClosed,
	StatusNotResolved,
}

var statusByKey = func() map[string]Status {
	m := make(map[string]Status, len(Statuses))
	for _, s := range Statuses {
		m[statusKey(string(s))] = s
	}
	return m
}()

func statusKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "_", " ")
	return strings.Join(strings.Fields(key), " ")
}

// ParseStatus normalises an incoming status string to its canonical spelling.
// Unknown non-blank statuses are passed through unchanged; use IsKnown to
// distinguish them.
func ParseStatus(raw string) (Status, error) {
	key := statusKey(raw)
	if key == "" {
		return StatusUnknown, invalidStatusError("blank")
	}
	if s, ok := statusByKey[key]; ok {
		return s, nil
	}
	return Status(strings.TrimSpace(raw)), nil
}

// IsKnown reports whether s is one of the statuses the helpdesk understands.
func (s Status) IsKnown() bool {
	_, ok := statusByKey[statusKey(string(s))]
	return ok && s != StatusUnknown
}

// Validate ensures the status is part of the supported workflow.
func (s Status) Validate() error {
	if !s.IsKnown() {
		return invalidStatusError(string(s))
	}
	return nil
}

// IsTerminal reports whether the status represents a finished ticket.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Bucket groups statuses into the four counters shown on the dashboards.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketOpen
	BucketInProgress
	BucketResolved
	BucketUnresolved
)

func (b Bucket) String() string {
	switch b {
	case BucketOpen:
		return "Open"
	case BucketInProgress:
		return "In Progress"
	case BucketResolved:
		return "Resolved"
	case BucketUnresolved:
		return "Unresolved"
	default:
		return ""
	}
}

// Bucket returns the dashboard counter the status contributes to.
func (s Status) Bucket() Bucket {
	switch s {
	case StatusOpen, StatusCreated, StatusAssigned, StatusReopened:
		return BucketOpen
	case StatusInProgress:
		return BucketInProgress
	case StatusResolved, StatusClosed:
		return BucketResolved
	case StatusNotResolved:
		return BucketUnresolved
	default:
		return BucketNone
	}
}
