package domain

import "testing"

func TestStatusValidate(t *testing.T) {
	for _, status := range Statuses {
		if err := status.Validate(); err != nil {
			t.Errorf("expected %q to be valid, got error: %v", status, err)
		}
	}

	invalid := []Status{StatusUnknown, Status("Escalated"), Status("weird")}
	for _, status := range invalid {
		if err := status.Validate(); err == nil {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"Open":         StatusOpen,
		"created":      StatusCreated,
		" assigned ":   StatusAssigned,
		"in_progress":  StatusInProgress,
		"In  Progress": StatusInProgress,
		"NOT RESOLVED": StatusNotResolved,
		"closed":       StatusClosed,
	}

	for raw, expected := range cases {
		got, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q) returned error: %v", raw, err)
		}
		if got != expected {
			t.Fatalf("ParseStatus(%q) = %q, want %q", raw, got, expected)
		}
	}

	if _, err := ParseStatus("  "); err == nil {
		t.Fatalf("expected blank status to be rejected")
	}

	// Unknown statuses pass through for forward compatibility.
	unknown, err := ParseStatus("Escalated")
	if err != nil {
		t.Fatalf("ParseStatus(\"Escalated\") returned error: %v", err)
	}
	if unknown != Status("Escalated") || unknown.IsKnown() {
		t.Fatalf("expected unknown passthrough, got %q (known=%v)", unknown, unknown.IsKnown())
	}
}

func TestStatusBuckets(t *testing.T) {
	cases := map[Status]Bucket{
		StatusOpen:        BucketOpen,
		StatusCreated:     BucketOpen,
		StatusAssigned:    BucketOpen,
		StatusReopened:    BucketOpen,
		StatusInProgress:  BucketInProgress,
		StatusResolved:    BucketResolved,
		StatusClosed:      BucketResolved,
		StatusNotResolved: BucketUnresolved,
	}
	for status, want := range cases {
		if got := status.Bucket(); got != want {
			t.Errorf("%q.Bucket() = %v, want %v", status, got, want)
		}
	}
	if got := Status("Escalated").Bucket(); got != BucketNone {
		t.Errorf("unknown status bucket = %v, want none", got)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if !StatusClosed.IsTerminal() || !StatusResolved.IsTerminal() {
		t.Fatalf("expected resolved and closed to be terminal")
	}
	if StatusNotResolved.IsTerminal() || StatusInProgress.IsTerminal() {
		t.Fatalf("expected not resolved and in progress to be non-terminal")
	}
}
