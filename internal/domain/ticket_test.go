package domain

import "testing"

func TestPriorityRank(t *testing.T) {
	if PriorityLow.Rank() >= PriorityMedium.Rank() || PriorityMedium.Rank() >= PriorityHigh.Rank() {
		t.Fatalf("expected Low < Medium < High, got %d %d %d",
			PriorityLow.Rank(), PriorityMedium.Rank(), PriorityHigh.Rank())
	}
	if got := Priority("Urgent").Rank(); got != 0 {
		t.Fatalf("unknown priority rank = %d, want 0", got)
	}
}

func TestParsePriorityAndType(t *testing.T) {
	if p, err := ParsePriority(" high "); err != nil || p != PriorityHigh {
		t.Fatalf("ParsePriority(high) = %q, %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
	if tt, err := ParseTicketType("ASSET"); err != nil || tt != TypeAsset {
		t.Fatalf("ParseTicketType(ASSET) = %q, %v", tt, err)
	}
	if _, err := ParseTicketType("Incident"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestTicketValidate(t *testing.T) {
	valid := Ticket{ID: 1, Type: TypeService, Title: "Login issue", Status: StatusOpen, Priority: PriorityHigh}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid ticket, got %v", err)
	}

	bad := []Ticket{
		{ID: 0, Title: "no id"},
		{ID: 2, Title: "  "},
		{ID: 3, Title: "bad type", Type: "Incident"},
		{ID: 4, Title: "bad priority", Priority: "Urgent"},
	}
	for _, tc := range bad {
		if err := tc.Validate(); err == nil {
			t.Errorf("expected ticket %d to be invalid", tc.ID)
		}
	}
}

func TestTicketCloneDoesNotAlias(t *testing.T) {
	resp := "Checking logs."
	orig := Ticket{ID: 1, Title: "Login issue", AgentResponse: &resp}
	c := orig.Clone()
	*c.AgentResponse = "changed"
	c.Title = "changed"

	if orig.Response() != "Checking logs." || orig.Title != "Login issue" {
		t.Fatalf("clone aliased original: %+v", orig)
	}
	if (Ticket{}).Response() != "" {
		t.Fatalf("expected empty response for nil agent response")
	}
}

func TestCountByBucket(t *testing.T) {
	tickets := []Ticket{
		{ID: 1, Status: StatusCreated},
		{ID: 2, Status: StatusInProgress},
		{ID: 3, Status: StatusResolved},
		{ID: 4, Status: StatusNotResolved},
		{ID: 5, Status: StatusAssigned},
		{ID: 6, Status: StatusClosed},
		{ID: 7, Status: "Escalated"},
	}
	got := CountByBucket(tickets)
	want := Counts{Open: 2, InProgress: 1, Resolved: 2, Unresolved: 1, Total: 7}
	if got != want {
		t.Fatalf("CountByBucket = %+v, want %+v", got, want)
	}
	if got.Of(BucketResolved) != 2 {
		t.Fatalf("Of(Resolved) = %d", got.Of(BucketResolved))
	}
}

func TestCategories(t *testing.T) {
	svc := Categories(TypeService)
	if len(svc) != 3 || svc[0] != "Network Issue" {
		t.Fatalf("unexpected service categories: %v", svc)
	}
	svc[0] = "mutated"
	if Categories(TypeService)[0] != "Network Issue" {
		t.Fatalf("Categories must return a copy")
	}
	if len(Categories(TypeAsset)) != 3 {
		t.Fatalf("unexpected asset categories")
	}
}
