package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/pipeline"
)

func (m Model) renderScreen() string {
	if !m.showSample {
		return m.chrome.emptyState.Render("\n  Sample data is off. Press s to load the sample dataset.\n")
	}
	switch m.screen() {
	case agentmodel.ScreenAudit:
		return m.renderAudit()
	case agentmodel.ScreenGrievances:
		return m.renderGrievances()
	default:
		return m.renderDashboard()
	}
}

func (m Model) renderDashboard() string {
	var cards []string
	for _, kpi := range pipeline.KPIs() {
		trendStyle := m.chrome.kpiTrend
		if !kpi.TrendUp {
			trendStyle = m.chrome.kpiDown
		}
		cards = append(cards, m.chrome.kpiCard.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.chrome.tableHeader.Render(kpi.Label),
			m.chrome.kpiValue.Render(kpi.Value) + " " + trendStyle.Render(kpi.Trend),
		)))
	}

	rows := [][]string{{"PR", "Requester", "Stage", "TAT", "SLA", "Amount"}}
	for _, pr := range pipeline.PRs() {
		rows = append(rows, []string{
			pr.Number, pr.Requester, pr.CurrentStage,
			fmt.Sprintf("%dd", pr.TATDays),
			m.theme.StatusBadge(pr.SLAStatus),
			pr.Amount,
		})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.renderFunnel(),
		"",
		m.renderTable(rows, []int{9, 16, 14, 5, 12, 10}),
	)
}

// renderFunnel draws the approval pipeline stage counts as bars.
func (m Model) renderFunnel() string {
	var lines []string
	for _, stage := range pipeline.Stages() {
		bar := strings.Repeat("█", stage.Count*4)
		lines = append(lines, fmt.Sprintf("%-14s %s %d",
			m.chrome.tableHeader.Render(stage.Name),
			m.chrome.status.Render(bar),
			stage.Count,
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAudit() string {
	filtered := pipeline.FilterAuditEvents(pipeline.AuditEvents(), m.auditQuery.Value(), doaLevels[m.auditDOA])

	rows := [][]string{{"Event", "Actor", "PR/PO", "DOA", "SOP", "Status", "When"}}
	for _, ev := range filtered {
		rows = append(rows, []string{
			ev.Event, ev.Actor, ev.PRPO, ev.DOALevel, ev.SOPReference,
			m.theme.SeverityDot(ev.Status) + " " + ev.Status,
			ev.Timestamp,
		})
	}

	filterLine := fmt.Sprintf("filter: %q · doa: %s", m.auditQuery.Value(), doaLevels[m.auditDOA])
	if m.filtering {
		filterLine = m.auditQuery.View() + " · doa: " + doaLevels[m.auditDOA]
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.chrome.footer.Render(filterLine),
		"",
		m.renderTable(rows, []int{22, 14, 8, 4, 12, 12, 17}),
	)
}

func (m Model) renderGrievances() string {
	items := pipeline.Grievances()
	counts := pipeline.GrievanceCounts(items)

	var cards []string
	for _, status := range []string{"Open", "In Progress", "Resolved", "Overdue"} {
		cards = append(cards, m.chrome.kpiCard.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.chrome.tableHeader.Render(status),
			m.chrome.kpiValue.Render(fmt.Sprintf("%d", counts[status])),
		)))
	}

	rows := [][]string{{"ID", "Type", "PR/PO", "Submitted By", "Status", "Priority", "Assigned To"}}
	for _, g := range items {
		rows = append(rows, []string{
			g.ID, g.Type, g.RelatedPRPO, g.SubmittedBy,
			m.theme.StatusBadge(g.Status),
			m.theme.SeverityDot(g.Priority) + " " + g.Priority,
			g.AssignedTo,
		})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.renderTable(rows, []int{8, 20, 8, 14, 14, 12, 16}),
	)
}

// renderTable lays rows out in fixed-width columns; the first row is the
// header. Styled cells keep their escapes, so padding measures visible
// width.
func (m Model) renderTable(rows [][]string, widths []int) string {
	var lines []string
	for i, row := range rows {
		var cells []string
		for col, cell := range row {
			w := 12
			if col < len(widths) {
				w = widths[col]
			}
			cells = append(cells, padCell(cell, w))
		}
		line := strings.Join(cells, " ")
		if i == 0 {
			line = m.chrome.tableHeader.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func padCell(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	return text + strings.Repeat(" ", width-visible)
}
