package render

import (
	"strings"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

// Renderer turns a loose agent payload into a styled view fragment.
type Renderer func(raw map[string]any) string

// ForKind resolves the renderer for an agent kind. Unknown kinds fall back
// to the summary line so transcripts still display something readable.
func ForKind(theme Theme, kind payload.Kind) Renderer {
	switch kind {
	case payload.KindInsights:
		return theme.Insights
	case payload.KindCompliance:
		return theme.Compliance
	case payload.KindGrievance:
		return theme.Grievance
	default:
		return func(raw map[string]any) string {
			return theme.Markdown(payload.DisplaySummary(raw))
		}
	}
}

// section renders a labelled block preceded by a blank line.
func (t Theme) section(label string, body string) string {
	return "\n" + t.SectionLabel.Render(strings.ToUpper(label)) + "\n" + body
}

// joinParts drops empty fragments and joins the rest with newlines.
func joinParts(parts []string) string {
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "\n")
}
