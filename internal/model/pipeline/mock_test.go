package pipeline

import "testing"

func TestFilterAuditEventsByPR(t *testing.T) {
	got := FilterAuditEvents(AuditEvents(), "pr-4521", "all")
	if len(got) != 3 {
		t.Fatalf("expected 3 events for PR-4521, got %d", len(got))
	}
	for _, ev := range got {
		if ev.PRPO != "PR-4521" {
			t.Fatalf("unexpected row in filter result: %+v", ev)
		}
	}
}

func TestFilterAuditEventsByDOALevel(t *testing.T) {
	got := FilterAuditEvents(AuditEvents(), "", "L1")
	if len(got) != 2 {
		t.Fatalf("expected 2 L1 events, got %d", len(got))
	}
}

func TestFilterAuditEventsAllPassesEverything(t *testing.T) {
	events := AuditEvents()
	if got := FilterAuditEvents(events, "", "all"); len(got) != len(events) {
		t.Fatalf("expected all %d events, got %d", len(events), len(got))
	}
}

func TestFilterAuditEventsCombined(t *testing.T) {
	got := FilterAuditEvents(AuditEvents(), "PR-9044", "L2")
	if len(got) != 1 || got[0].Event != "L2 Escalation" {
		t.Fatalf("unexpected combined filter result: %+v", got)
	}
}

func TestGrievanceCounts(t *testing.T) {
	counts := GrievanceCounts(Grievances())

	want := map[string]int{"Open": 4, "In Progress": 3, "Resolved": 2, "Overdue": 1}
	for status, n := range want {
		if counts[status] != n {
			t.Fatalf("%s: got %d want %d", status, counts[status], n)
		}
	}
}
