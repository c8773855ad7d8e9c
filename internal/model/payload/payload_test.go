package payload

import "testing"

func TestDecodeInsights(t *testing.T) {
	raw := map[string]any{
		"summary": "TAT improving",
		"metrics": []any{
			map[string]any{"label": "Avg TAT", "value": "9.8"},
		},
		"status": "On Track",
	}

	got := Decode(KindInsights, raw)
	if got.Insights == nil {
		t.Fatal("expected insights data")
	}
	if got.Insights.Summary != "TAT improving" {
		t.Fatalf("unexpected summary: %q", got.Insights.Summary)
	}
	if len(got.Insights.Metrics) != 1 || got.Insights.Metrics[0].Label != "Avg TAT" {
		t.Fatalf("unexpected metrics: %+v", got.Insights.Metrics)
	}
}

func TestDecodeDropsWrongShapedFields(t *testing.T) {
	raw := map[string]any{
		"summary": 42,
		"details": "still works",
	}

	got := Decode(KindInsights, raw)
	if got.Insights.Summary != "" {
		t.Fatalf("expected wrong-typed summary dropped, got %q", got.Insights.Summary)
	}
	if got.Insights.Details != "still works" {
		t.Fatalf("expected details preserved, got %q", got.Insights.Details)
	}
}

func TestDecodeNilRaw(t *testing.T) {
	got := Decode(KindGrievance, nil)
	if got.Grievance == nil {
		t.Fatal("expected empty grievance data for nil input")
	}
	if got.Grievance.Action != "" {
		t.Fatalf("expected zero value, got %q", got.Grievance.Action)
	}
}

func TestDisplaySummaryPrecedence(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"summary wins", map[string]any{"summary": "s", "details": "d", "action": "a"}, "s"},
		{"details next", map[string]any{"details": "d", "action": "a"}, "d"},
		{"action next", map[string]any{"action": "a"}, "a"},
		{"fallback", map[string]any{}, "Response received"},
		{"empty string skipped", map[string]any{"summary": "", "details": "d"}, "d"},
		{"non-string skipped", map[string]any{"summary": 7, "action": "a"}, "a"},
		{"nil map", nil, "Response received"},
	}

	for _, tc := range cases {
		if got := DisplaySummary(tc.raw); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestSamplePayloadsDecode(t *testing.T) {
	if got := Decode(KindInsights, SampleInsights()); len(got.Insights.Metrics) != 5 {
		t.Fatalf("expected 5 insight metrics, got %d", len(got.Insights.Metrics))
	}
	if got := Decode(KindCompliance, SampleCompliance()); len(got.Compliance.AuditTrail) != 4 {
		t.Fatalf("expected 4 audit trail entries, got %d", len(got.Compliance.AuditTrail))
	}
	if got := Decode(KindGrievance, SampleGrievance()); got.Grievance.GrievanceID != "GRV-011" {
		t.Fatalf("unexpected grievance id: %q", got.Grievance.GrievanceID)
	}
}
