package agent

import (
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

// Screen enumerates the dashboard screens. Each screen is bound to exactly
// one agent; the active screen decides which binding is live.
type Screen string

const (
	ScreenDashboard  Screen = "dashboard"
	ScreenAudit      Screen = "audit"
	ScreenGrievances Screen = "grievances"
)

// Screens lists every screen in navigation order.
func Screens() []Screen {
	return []Screen{ScreenDashboard, ScreenAudit, ScreenGrievances}
}

// ParseScreen validates a screen name from request input.
func ParseScreen(name string) (Screen, bool) {
	for _, s := range Screens() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// Binding is the static association between a screen and its conversational
// agent. Constructed once at startup and immutable thereafter.
type Binding struct {
	ID          string         `json:"id"`
	Kind        payload.Kind   `json:"kind"`
	Screen      Screen         `json:"screen"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Sample      map[string]any `json:"-"`
}

// Seed provides the production agent bindings.
func Seed() []Binding {
	return []Binding{
		{
			ID:          "6999834f5fcf634111651131",
			Kind:        payload.KindInsights,
			Screen:      ScreenDashboard,
			Name:        "Procurement Insights",
			Description: "Ask about PR/PO statuses, TAT metrics, SLA compliance, and bottlenecks.",
			Sample:      payload.SampleInsights(),
		},
		{
			ID:          "699983502a0c0e9d620904df",
			Kind:        payload.KindCompliance,
			Screen:      ScreenAudit,
			Name:        "Compliance Trail",
			Description: "Query DOA approval records, SOP compliance history, and audit summaries.",
			Sample:      payload.SampleCompliance(),
		},
		{
			ID:          "699983502a0c0e9d620904e1",
			Kind:        payload.KindGrievance,
			Screen:      ScreenGrievances,
			Name:        "Grievance Desk",
			Description: "Raise and track procurement grievances and resolution timelines.",
			Sample:      payload.SampleGrievance(),
		},
	}
}
