// Package tui is the terminal dashboard shell: three screens backed by the
// pipeline dataset, each with a chat drawer bound to its agent.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/config"
	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	chatmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/render"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/dispatch"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/overlay"
)

const dispatchTimeout = 90 * time.Second

var doaLevels = []string{"all", "L1", "L2", "L3"}

// Model is the root bubbletea model.
type Model struct {
	controller *dispatch.Controller
	syncer     *overlay.Synchronizer
	registry   agentmodel.Registry

	screens    []agentmodel.Screen
	active     int
	showSample bool
	chatOpen   bool

	auditDOA   int
	auditQuery textinput.Model
	filtering  bool

	input      textinput.Model
	transcript viewport.Model
	spinner    spinner.Model

	events       <-chan dispatch.Event
	cancelEvents func()

	theme  render.Theme
	chrome chrome

	width      int
	height     int
	statusLine string
	fatal      string
}

type dispatchDoneMsg struct {
	screen agentmodel.Screen
	err    error
}

type eventMsg dispatch.Event

// New builds the dashboard model. The sample toggle starts at the configured
// default and is observed immediately so seeded conversations are visible on
// first paint.
func New(controller *dispatch.Controller, syncer *overlay.Synchronizer, registry agentmodel.Registry, cfg config.UIConfig) Model {
	input := textinput.New()
	input.Placeholder = "Ask the agent..."
	input.CharLimit = 500

	query := textinput.New()
	query.Placeholder = "Filter by PR/PO..."
	query.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	feed, cancel := controller.Events().Subscribe()

	m := Model{
		controller:   controller,
		syncer:       syncer,
		registry:     registry,
		screens:      agentmodel.Screens(),
		showSample:   cfg.SampleDataDefault,
		auditQuery:   query,
		input:        input,
		transcript:   viewport.New(0, 0),
		spinner:      sp,
		events:       feed,
		cancelEvents: cancel,
		theme:        render.NewTheme(),
		chrome:       newChrome(),
		statusLine:   "ready",
	}
	syncer.Observe(m.showSample)
	return m
}

// Close releases the event subscription. Call after the program exits.
func (m Model) Close() {
	if m.cancelEvents != nil {
		m.cancelEvents()
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEventCmd())
}

func (m Model) waitEventCmd() tea.Cmd {
	feed := m.events
	return func() tea.Msg {
		event, ok := <-feed
		if !ok {
			return nil
		}
		return eventMsg(event)
	}
}

// sendCmd dispatches the drawer input off the UI goroutine. The controller
// enforces the single-flight rule, so rapid re-sends are safe.
func (m Model) sendCmd(screen agentmodel.Screen, content string) tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		err := controller.Send(ctx, screen, content)
		return dispatchDoneMsg{screen: screen, err: err}
	}
}

// Update wraps the real update so a panic anywhere in the UI lands on the
// recovery screen instead of tearing the terminal down.
func (m Model) Update(msg tea.Msg) (out tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.fatal = fmt.Sprintf("%v", r)
			out, cmd = m, nil
		}
	}()
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.fatal != "" {
			return m.updateRecovery(msg)
		}
		return m.updateKeys(msg)

	case dispatchDoneMsg:
		switch {
		case msg.err == nil:
			m.statusLine = "response received"
		case errors.Is(msg.err, chatmodel.ErrBusy):
			m.statusLine = "still waiting on the agent"
		case errors.Is(msg.err, chatmodel.ErrBlankInput):
			m.statusLine = "nothing to send"
		default:
			m.statusLine = "send failed: " + msg.err.Error()
		}
		m.refreshTranscript()
		return m, nil

	case eventMsg:
		m.refreshTranscript()
		return m, m.waitEventCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The drawer input and the audit filter capture keys while focused.
	if m.chatOpen && m.input.Focused() {
		return m.updateChatKeys(msg)
	}
	if m.filtering {
		return m.updateFilterKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "tab":
		m.active = (m.active + 1) % len(m.screens)
		m.refreshTranscript()
	case "shift+tab":
		m.active = (m.active + len(m.screens) - 1) % len(m.screens)
		m.refreshTranscript()
	case "1", "2", "3":
		m.active = int(msg.String()[0] - '1')
		m.refreshTranscript()
	case "s":
		m.showSample = !m.showSample
		m.syncer.Observe(m.showSample)
		if m.showSample {
			m.statusLine = "sample data on"
		} else {
			m.statusLine = "sample data off"
		}
		m.refreshTranscript()
	case "c", "enter":
		m.chatOpen = !m.chatOpen
		if m.chatOpen {
			m.input.SetValue(m.activeStoreDraft())
			m.input.Focus()
			m.refreshTranscript()
		} else {
			m.stashDraft()
			m.input.Blur()
		}
	case "/":
		if m.screen() == agentmodel.ScreenAudit {
			m.filtering = true
			m.auditQuery.Focus()
		}
	case "d":
		if m.screen() == agentmodel.ScreenAudit {
			m.auditDOA = (m.auditDOA + 1) % len(doaLevels)
			m.statusLine = "doa filter: " + doaLevels[m.auditDOA]
		}
	}
	return m, nil
}

func (m Model) updateChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stashDraft()
		m.input.Blur()
		m.chatOpen = false
		return m, nil
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "enter":
		store, _, err := m.controller.StoreFor(m.screen())
		if err != nil {
			m.statusLine = err.Error()
			return m, nil
		}
		if store.Awaiting() {
			// Input stays visible but sends are ignored while a dispatch
			// is in flight.
			return m, nil
		}
		content := m.input.Value()
		if strings.TrimSpace(content) == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.sendCmd(m.screen(), content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filtering = false
		m.auditQuery.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.auditQuery, cmd = m.auditQuery.Update(msg)
	return m, cmd
}

func (m Model) updateRecovery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		// Reset the shell state but keep conversations; the stores were
		// never the problem.
		m.fatal = ""
		m.chatOpen = false
		m.filtering = false
		m.input.Blur()
		m.statusLine = "recovered"
		m.refreshTranscript()
		return m, nil
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) screen() agentmodel.Screen {
	return m.screens[m.active]
}

func (m *Model) stashDraft() {
	if store, _, err := m.controller.StoreFor(m.screen()); err == nil {
		store.SetPendingInput(m.input.Value())
	}
}

func (m *Model) activeStoreDraft() string {
	store, _, err := m.controller.StoreFor(m.screen())
	if err != nil {
		return ""
	}
	return store.PendingInput()
}

func (m *Model) resize() {
	drawerWidth := m.drawerWidth()
	m.transcript.Width = drawerWidth - 4
	m.transcript.Height = maxInt(m.height-10, 5)
	m.input.Width = drawerWidth - 8
	m.refreshTranscript()
}

func (m *Model) drawerWidth() int {
	w := m.width / 2
	if w < 48 {
		w = 48
	}
	return w
}

// View wraps rendering with the same recovery guard as Update.
func (m Model) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			view = m.renderRecovery(fmt.Sprintf("%v", r))
		}
	}()

	if m.fatal != "" {
		return m.renderRecovery(m.fatal)
	}

	sections := []string{
		m.renderHeader(),
		m.renderScreen(),
		m.renderFooter(),
	}
	base := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if !m.chatOpen {
		return base
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, base, m.renderDrawer())
}

func (m Model) renderHeader() string {
	var tabs []string
	labels := map[agentmodel.Screen]string{
		agentmodel.ScreenDashboard:  "Dashboard",
		agentmodel.ScreenAudit:      "Audit Trail",
		agentmodel.ScreenGrievances: "Grievances",
	}
	for i, s := range m.screens {
		style := m.chrome.tabInactive
		if i == m.active {
			style = m.chrome.tabActive
		}
		tabs = append(tabs, style.Render(labels[s]))
	}

	sample := "sample: off"
	if m.showSample {
		sample = "sample: on"
	}
	title := m.chrome.header.Render("ProcureTrack")
	return lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		lipgloss.JoinHorizontal(lipgloss.Center, tabs...),
		m.chrome.footer.Render(sample),
	)
}

func (m Model) renderFooter() string {
	keys := "tab screens · c chat · s sample · q quit"
	if m.screen() == agentmodel.ScreenAudit {
		keys = "tab screens · / filter · d doa · c chat · s sample · q quit"
	}
	line := m.chrome.footer.Render(keys)
	if m.statusLine != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, m.chrome.status.Render(m.statusLine))
	}
	return line
}

func (m Model) renderRecovery(detail string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.chrome.recoveryTitle.Render("Something went wrong"),
		"",
		m.chrome.recoveryBody.Render(detail),
		"",
		m.chrome.recoveryBody.Render("press r to recover, q to quit"),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
