package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// chrome groups the lipgloss styles for the shell around the screens: the
// header, tab bar, footer, and the chat drawer frame.
type chrome struct {
	header      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	footer      lipgloss.Style
	status      lipgloss.Style
	errorLine   lipgloss.Style

	tableHeader lipgloss.Style
	tableRow    lipgloss.Style
	tableAlt    lipgloss.Style

	kpiCard  lipgloss.Style
	kpiValue lipgloss.Style
	kpiTrend lipgloss.Style
	kpiDown  lipgloss.Style

	drawer      lipgloss.Style
	drawerTitle lipgloss.Style
	userLine    lipgloss.Style
	agentLine   lipgloss.Style
	timestamp   lipgloss.Style
	emptyState  lipgloss.Style

	recoveryTitle lipgloss.Style
	recoveryBody  lipgloss.Style
}

func newChrome() chrome {
	emerald := lipgloss.Color("42")
	red := lipgloss.Color("203")
	text := lipgloss.Color("255")
	muted := lipgloss.Color("245")
	surface := lipgloss.Color("236")

	return chrome{
		header:      lipgloss.NewStyle().Foreground(text).Bold(true).Padding(0, 1),
		tabActive:   lipgloss.NewStyle().Foreground(emerald).Bold(true).Padding(0, 2).Background(surface),
		tabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		footer:      lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		status:      lipgloss.NewStyle().Foreground(emerald).Padding(0, 1),
		errorLine:   lipgloss.NewStyle().Foreground(red),

		tableHeader: lipgloss.NewStyle().Foreground(muted).Bold(true),
		tableRow:    lipgloss.NewStyle().Foreground(text),
		tableAlt:    lipgloss.NewStyle().Foreground(text).Background(surface),

		kpiCard:  lipgloss.NewStyle().Background(surface).Padding(0, 1).MarginRight(1).Width(22),
		kpiValue: lipgloss.NewStyle().Foreground(text).Bold(true),
		kpiTrend: lipgloss.NewStyle().Foreground(emerald),
		kpiDown:  lipgloss.NewStyle().Foreground(red),

		drawer:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		drawerTitle: lipgloss.NewStyle().Foreground(text).Bold(true),
		userLine:    lipgloss.NewStyle().Foreground(emerald).Bold(true),
		agentLine:   lipgloss.NewStyle().Foreground(text),
		timestamp:   lipgloss.NewStyle().Foreground(muted),
		emptyState:  lipgloss.NewStyle().Foreground(muted).Italic(true),

		recoveryTitle: lipgloss.NewStyle().Foreground(red).Bold(true),
		recoveryBody:  lipgloss.NewStyle().Foreground(muted),
	}
}
