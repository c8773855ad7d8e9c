package render

import (
	"strings"
	"testing"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

func TestRenderersTotalOnEmptyPayload(t *testing.T) {
	theme := NewTheme()
	for _, kind := range []payload.Kind{payload.KindInsights, payload.KindCompliance, payload.KindGrievance} {
		renderer := ForKind(theme, kind)
		if got := renderer(map[string]any{}); got != "" {
			t.Fatalf("%s: expected zero sections for empty payload, got %q", kind, got)
		}
		if got := renderer(nil); got != "" {
			t.Fatalf("%s: expected zero sections for nil payload, got %q", kind, got)
		}
	}
}

func TestRenderersIgnoreWrongShapedFields(t *testing.T) {
	theme := NewTheme()
	raw := map[string]any{
		"summary":         7,
		"metrics":         "not a list",
		"audit_trail":     42,
		"next_steps":      map[string]any{},
		"recommendations": false,
	}
	for _, kind := range []payload.Kind{payload.KindInsights, payload.KindCompliance, payload.KindGrievance} {
		// Must not panic; wrong-shaped fields simply drop out.
		_ = ForKind(theme, kind)(raw)
	}
}

func TestInsightsSampleSections(t *testing.T) {
	theme := NewTheme()
	out := theme.Insights(payload.SampleInsights())

	for _, want := range []string{"At Risk", "TAT", "Average TAT", "RECOMMENDATIONS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected rendered insights to mention %q\n%s", want, out)
		}
	}
}

func TestComplianceSampleSections(t *testing.T) {
	theme := NewTheme()
	out := theme.Compliance(payload.SampleCompliance())

	for _, want := range []string{"AUDIT TRAIL", "Mark Stevens", "EXCEPTIONS", "SOP REFERENCES"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected rendered compliance to mention %q\n%s", want, out)
		}
	}
}

func TestGrievanceSampleSections(t *testing.T) {
	theme := NewTheme()
	out := theme.Grievance(payload.SampleGrievance())

	for _, want := range []string{"GRV-011", "RESOLUTION TIMELINE", "NEXT STEPS", "1."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected rendered grievance to mention %q\n%s", want, out)
		}
	}
}

func TestForKindUnknownFallsBackToSummary(t *testing.T) {
	theme := NewTheme()
	out := ForKind(theme, payload.Kind("other"))(map[string]any{"summary": "plain line"})
	if !strings.Contains(out, "plain line") {
		t.Fatalf("expected summary fallback, got %q", out)
	}
}

func TestMarkdownRendering(t *testing.T) {
	theme := NewTheme()
	out := theme.Markdown("## Status\n- on track\n1. first step\n**key** detail")

	for _, want := range []string{"Status", "on track", "1.", "key", "detail"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected markdown output to contain %q\n%s", want, out)
		}
	}
}
