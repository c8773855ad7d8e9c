// Package render maps structured agent payloads to styled terminal views.
// Every renderer is total: absent or wrong-shaped fields drop their section.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/analysis/severity"
)

// Theme groups the lipgloss styles shared by the response renderers.
type Theme struct {
	Badge        map[severity.Bucket]lipgloss.Style
	SectionLabel lipgloss.Style
	Body         lipgloss.Style
	MutedBody    lipgloss.Style
	Bold         lipgloss.Style
	Heading      lipgloss.Style
	MetricLabel  lipgloss.Style
	MetricValue  lipgloss.Style
	MetricCell   lipgloss.Style
	Marker       lipgloss.Style
	Dot          map[severity.Bucket]lipgloss.Style
	Tag          lipgloss.Style
	Mono         lipgloss.Style
}

// NewTheme builds the default dark palette.
func NewTheme() Theme {
	emerald := lipgloss.Color("42")
	amber := lipgloss.Color("214")
	red := lipgloss.Color("203")
	text := lipgloss.Color("255")
	muted := lipgloss.Color("245")
	cellBg := lipgloss.Color("236")

	badge := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Bold(true).Padding(0, 1).Background(cellBg)
	}

	return Theme{
		Badge: map[severity.Bucket]lipgloss.Style{
			severity.Positive: badge(emerald),
			severity.Warning:  badge(amber),
			severity.Critical: badge(red),
			severity.Neutral:  badge(muted),
		},
		SectionLabel: lipgloss.NewStyle().Foreground(muted).Bold(true),
		Body:         lipgloss.NewStyle().Foreground(text),
		MutedBody:    lipgloss.NewStyle().Foreground(muted),
		Bold:         lipgloss.NewStyle().Foreground(text).Bold(true),
		Heading:      lipgloss.NewStyle().Foreground(text).Bold(true),
		MetricLabel:  lipgloss.NewStyle().Foreground(muted),
		MetricValue:  lipgloss.NewStyle().Foreground(text).Bold(true),
		MetricCell:   lipgloss.NewStyle().Background(cellBg).Padding(0, 1).Width(28),
		Marker:       lipgloss.NewStyle().Foreground(emerald),
		Dot: map[severity.Bucket]lipgloss.Style{
			severity.Positive: lipgloss.NewStyle().Foreground(emerald),
			severity.Warning:  lipgloss.NewStyle().Foreground(amber),
			severity.Critical: lipgloss.NewStyle().Foreground(red),
			severity.Neutral:  lipgloss.NewStyle().Foreground(muted),
		},
		Tag:  lipgloss.NewStyle().Foreground(muted).Padding(0, 1).Background(cellBg),
		Mono: lipgloss.NewStyle().Foreground(emerald),
	}
}

// StatusBadge renders a status string colored by its severity bucket.
func (t Theme) StatusBadge(status string) string {
	return t.Badge[severity.Classify(status)].Render(status)
}

// SeverityDot renders the list marker for an audit entry, colored by that
// entry's own status.
func (t Theme) SeverityDot(status string) string {
	return t.Dot[severity.Classify(status)].Render("●")
}
