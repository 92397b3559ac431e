package domain

import (
	"strings"
)

// TicketType splits tickets into the two agent queues.
type TicketType string

const (
	TypeService TicketType = "Service"
	TypeAsset   TicketType = "Asset"
)

// TicketTypes lists the supported ticket types.
var TicketTypes = []TicketType{TypeService, TypeAsset}

// ParseTicketType accepts any casing of a known type.
func ParseTicketType(raw string) (TicketType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "service":
		return TypeService, nil
	case "asset":
		return TypeAsset, nil
	}
	return "", invalidTypeError(raw)
}

// Validate ensures the ticket type is known.
func (t TicketType) Validate() error {
	if t != TypeService && t != TypeAsset {
		return invalidTypeError(string(t))
	}
	return nil
}

var categories = map[TicketType][]string{
	TypeService: {"Network Issue", "Software Installation", "Email Support"},
	TypeAsset:   {"Laptop", "Printer", "Mobile Device"},
}

// Categories returns the selectable categories for a ticket type.
func Categories(t TicketType) []string {
	return append([]string(nil), categories[t]...)
}

// Ticket is a support request owned by the backend. The client only caches it.
type Ticket struct {
	ID            int        `json:"id"`
	Type          TicketType `json:"type"`
	Category      string     `json:"category,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	Priority      Priority   `json:"priority"`
	AgentResponse *string    `json:"agentResponse"`
	CreatedBy     string     `json:"created_by,omitempty"`
}

// Validate checks the fields the client relies on. Unknown statuses are
// tolerated so that newer backends do not break the dashboard.
func (t Ticket) Validate() error {
	if t.ID <= 0 {
		return invalidTicketError("ticket id must be positive", nil)
	}
	if strings.TrimSpace(t.Title) == "" {
		return invalidTicketError("ticket title is required", nil)
	}
	if t.Type != "" {
		if err := t.Type.Validate(); err != nil {
			return invalidTicketError("invalid ticket", err)
		}
	}
	if t.Priority != "" {
		if err := t.Priority.Validate(); err != nil {
			return invalidTicketError("invalid ticket", err)
		}
	}
	return nil
}

// Response returns the agent response or "" when none has been written.
func (t Ticket) Response() string {
	if t.AgentResponse == nil {
		return ""
	}
	return *t.AgentResponse
}

// Clone returns a deep copy, so staged edits never alias the cached ticket.
func (t Ticket) Clone() Ticket {
	c := t
	if t.AgentResponse != nil {
		r := *t.AgentResponse
		c.AgentResponse = &r
	}
	return c
}

// Counts holds the dashboard status counters.
type Counts struct {
	Open       int
	InProgress int
	Resolved   int
	Unresolved int
	Total      int
}

// Of returns the counter for bucket b.
func (c Counts) Of(b Bucket) int {
	switch b {
	case BucketOpen:
		return c.Open
	case BucketInProgress:
		return c.InProgress
	case BucketResolved:
		return c.Resolved
	case BucketUnresolved:
		return c.Unresolved
	default:
		return 0
	}
}

// CountByBucket tallies tickets per status bucket. Tickets with statuses
// outside every bucket still count toward Total.
func CountByBucket(tickets []Ticket) Counts {
	c := Counts{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status.Bucket() {
		case BucketOpen:
			c.Open++
		case BucketInProgress:
			c.InProgress++
		case BucketResolved:
			c.Resolved++
		case BucketUnresolved:
			c.Unresolved++
		}
	}
	return c
}
