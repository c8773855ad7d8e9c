package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

// Insights renders an insights payload: status badge, summary, details,
// metric grid, recommendations. Absent fields omit their section.
func (t Theme) Insights(raw map[string]any) string {
	data := payload.Decode(payload.KindInsights, raw).Insights
	if data == nil {
		data = &payload.InsightsData{}
	}

	var parts []string
	if data.Status != "" {
		parts = append(parts, t.StatusBadge(data.Status))
	}
	if data.Summary != "" {
		parts = append(parts, t.Markdown(data.Summary))
	}
	if data.Details != "" {
		parts = append(parts, t.Markdown(data.Details))
	}
	if len(data.Metrics) > 0 {
		parts = append(parts, t.metricGrid(data.Metrics))
	}
	if len(data.Recommendations) > 0 {
		var lines []string
		for _, rec := range data.Recommendations {
			lines = append(lines, t.Marker.Render("›") + " " + t.Body.Render(rec))
		}
		parts = append(parts, t.section("Recommendations", joinParts(lines)))
	}
	return joinParts(parts)
}

// metricGrid lays label/value cells out two per row, in array order.
func (t Theme) metricGrid(metrics []payload.Metric) string {
	var rows []string
	for i := 0; i < len(metrics); i += 2 {
		cells := []string{t.metricCell(metrics[i])}
		if i+1 < len(metrics) {
			cells = append(cells, t.metricCell(metrics[i+1]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return joinParts(rows)
}

func (t Theme) metricCell(m payload.Metric) string {
	return t.MetricCell.Render(t.MetricLabel.Render(m.Label) + "\n" + t.MetricValue.Render(m.Value))
}
