package audit

import (
	"path/filepath"
	"testing"
)

func TestEvent_New(t *testing.T) {
	event := NewEvent("run-1", 3, OutcomeConfigured)

	if event.RunID != "run-1" {
		t.Errorf("RunID = %q", event.RunID)
	}
	if event.Row != 3 {
		t.Errorf("Row = %d", event.Row)
	}
	if event.Outcome != OutcomeConfigured {
		t.Errorf("Outcome = %q", event.Outcome)
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestEvent_Chaining(t *testing.T) {
	event := NewEvent("run-1", 1, OutcomeFailed).
		WithPort("venue-1", "ap-1", 2, 200).
		WithDetail("status 500")

	if event.VenueID != "venue-1" || event.APSerial != "ap-1" {
		t.Errorf("port identifiers = %q, %q", event.VenueID, event.APSerial)
	}
	if event.PortID != 2 || event.VLANID != 200 {
		t.Errorf("PortID = %d, VLANID = %d", event.PortID, event.VLANID)
	}
	if event.Detail != "status 500" {
		t.Errorf("Detail = %q", event.Detail)
	}
}

func newTestLogger(t *testing.T) *FileLogger {
	t.Helper()
	l, err := NewFileLogger(filepath.Join(t.TempDir(), "audit.log"), RotationConfig{})
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestFileLogger_LogAndQuery(t *testing.T) {
	l := newTestLogger(t)

	events := []*Event{
		NewEvent("run-1", 1, OutcomeConfigured).WithPort("v1", "ap1", 1, 10),
		NewEvent("run-1", 2, OutcomeSkipped).WithDetail("invalid VLAN ID"),
		NewEvent("run-2", 1, OutcomeFailed).WithPort("v2", "ap2", 2, 20).WithDetail("status 500"),
	}
	for _, e := range events {
		if err := l.Log(e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	all, err := l.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Query returned %d events, want 3", len(all))
	}

	failed, err := l.Query(Filter{Outcome: OutcomeFailed})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(failed) != 1 || failed[0].Detail != "status 500" {
		t.Errorf("failed query = %+v", failed)
	}

	run1, err := l.Query(Filter{RunID: "run-1"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(run1) != 2 {
		t.Errorf("run-1 query returned %d events, want 2", len(run1))
	}
}

func TestFileLogger_QueryLimit(t *testing.T) {
	l := newTestLogger(t)

	for i := 1; i <= 5; i++ {
		if err := l.Log(NewEvent("run-1", i, OutcomeConfigured)); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	got, err := l.Query(Filter{Limit: 2})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Query returned %d events, want 2", len(got))
	}
	// Limit keeps the most recent events.
	if got[0].Row != 4 || got[1].Row != 5 {
		t.Errorf("rows = %d, %d; want 4, 5", got[0].Row, got[1].Row)
	}
}

func TestFileLogger_QueryMissingFile(t *testing.T) {
	l := newTestLogger(t)
	events, err := l.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
