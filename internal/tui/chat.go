package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	chatmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/render"
)

// refreshTranscript rebuilds the drawer viewport from the active store and
// pins it to the latest message.
func (m *Model) refreshTranscript() {
	if !m.chatOpen {
		return
	}
	store, binding, err := m.controller.StoreFor(m.screen())
	if err != nil {
		m.transcript.SetContent(m.chrome.errorLine.Render(err.Error()))
		return
	}

	messages := store.Messages()
	if len(messages) == 0 {
		m.transcript.SetContent(m.chrome.emptyState.Render(
			"No messages yet. " + binding.Description))
		m.transcript.GotoTop()
		return
	}

	renderer := render.ForKind(m.theme, binding.Kind)
	var blocks []string
	for _, msg := range messages {
		blocks = append(blocks, m.renderMessage(msg, renderer))
	}
	m.transcript.SetContent(strings.Join(blocks, "\n\n"))
	m.transcript.GotoBottom()
}

func (m *Model) renderMessage(msg chatmodel.Message, renderer render.Renderer) string {
	stamp := m.chrome.timestamp.Render(msg.CreatedAt.Format("15:04"))

	if msg.Role == chatmodel.RoleUser {
		return m.chrome.userLine.Render("You") + " " + stamp + "\n" +
			m.chrome.agentLine.Render(msg.Content)
	}

	body := m.chrome.agentLine.Render(msg.Content)
	if msg.Payload != nil {
		body = renderer(msg.Payload)
	}
	return m.chrome.drawerTitle.Render("Agent") + " " + stamp + "\n" + body
}

func (m Model) renderDrawer() string {
	_, binding, err := m.controller.StoreFor(m.screen())
	if err != nil {
		return m.chrome.drawer.Render(m.chrome.errorLine.Render(err.Error()))
	}

	title := m.chrome.drawerTitle.Render(binding.Name)

	var thinking string
	if m.controller.Indicator().Current() != "" {
		thinking = m.spinner.View() + " " + m.chrome.timestamp.Render("thinking...")
	}

	sections := []string{
		title,
		m.transcript.View(),
	}
	if thinking != "" {
		sections = append(sections, thinking)
	}
	sections = append(sections, m.input.View())

	return m.chrome.drawer.Width(m.drawerWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}
