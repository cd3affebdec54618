// Package tui contains the Bubbletea model that drives the terminal UI:
// a navigation tree of topics, each hosting one or more sessions laid
// out in a resizable grid, plus a per-session prompt queue panel and a
// launch dialog.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vtcore/vtcore/internal/config"
	"github.com/vtcore/vtcore/internal/queue"
	"github.com/vtcore/vtcore/internal/transport"
	"github.com/vtcore/vtcore/internal/ui"
)

// tickMsg fires periodically to refresh git branch info and activity state.
type tickMsg time.Time

// queuePanelWidth is the fixed display width of the queue panel.
const queuePanelWidth = 30

// topicState holds all sessions belonging to one navigation-tree topic.
type topicState struct {
	Topic    ui.Topic
	Sessions []ui.SessionPane
	FocusIdx int
}

// Model is the root application model.
type Model struct {
	cfg      config.Config
	topics   []topicState
	topicIdx int

	width  int
	height int

	dialog     ui.Dialog
	queuePanel ui.QueuePanel

	showHelp      bool
	quitting      bool
	zoomed        bool
	lastCtrlC     time.Time // for double-Ctrl+C quit
	nextSessionID int

	// passthrough: when true, all key events go to the focused session
	// instead of being handled by the app. Toggle with Ctrl+G (escape hatch).
	passthrough bool

	// queueFocused: when true, the arrow keys navigate the queue panel
	// instead of sessions. Toggled with Ctrl+F.
	queueFocused bool

	queue *queue.Manager
	hub   *transport.Hub
}

// New creates the initial Model. hub and mgr may be nil if no transport
// or pipeline queue is wired into this run.
func New(cfg config.Config, mgr *queue.Manager, hub *transport.Hub) Model {
	ui.SetTheme(cfg.Theme)

	dir := cfg.DefaultDir
	if dir == "" {
		dir, _ = os.Getwd()
	}

	m := Model{
		cfg:        cfg,
		dialog:     ui.NewDialog(cfg),
		queuePanel: ui.NewQueuePanel(queuePanelWidth),
		queue:      mgr,
		hub:        hub,
	}

	if !m.restoreSession(dir) {
		m.addTopic("Workspace", dir)
	}

	return m
}

// Init is the Bubbletea initialiser. We start a periodic tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeAllSessions()
		return m, nil

	case tickMsg:
		m.refreshGitBranch()
		m.scanSessionActivity()
		m.refreshQueuePanel()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, nil
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the entire UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Initialising…"
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ShortcutHelp())
	}

	if m.dialog.Visible {
		return m.dialog.Render(m.width, m.height)
	}

	return m.renderNormal()
}

// renderNormal draws the standard layout: topic bar + queue panel + sessions + footer.
func (m Model) renderNormal() string {
	topicBar := ui.RenderTopicBar(m.allTopics(), m.topicIdx, m.width)
	footer := ui.RenderFooter(m.footerData(), m.width)

	contentH := m.height - 2
	if contentH < 1 {
		contentH = 1
	}

	var panelStr string
	contentW := m.width
	if m.queuePanel.Visible {
		panelStr = m.queuePanel.Render(contentH)
		contentW -= m.queuePanel.Width
		if contentW < 10 {
			contentW = 10
		}
	}

	sessionsStr := m.renderSessions(contentW, contentH)

	var middle string
	if m.queuePanel.Visible {
		middle = lipgloss.JoinHorizontal(lipgloss.Top, panelStr, sessionsStr)
	} else {
		middle = sessionsStr
	}

	return lipgloss.JoinVertical(lipgloss.Left, topicBar, middle, footer)
}

// allTopics returns a slice of ui.Topic for rendering the topic bar.
func (m *Model) allTopics() []ui.Topic {
	topics := make([]ui.Topic, len(m.topics))
	for i, ts := range m.topics {
		topics[i] = ts.Topic
	}
	return topics
}

// activeTopic returns a pointer to the current topic state, or nil.
func (m *Model) activeTopic() *topicState {
	if m.topicIdx < 0 || m.topicIdx >= len(m.topics) {
		return nil
	}
	return &m.topics[m.topicIdx]
}

// currentDir returns the working directory of the active topic.
func (m *Model) currentDir() string {
	topic := m.activeTopic()
	if topic != nil && topic.Topic.Dir != "" {
		return topic.Topic.Dir
	}
	dir, _ := os.Getwd()
	return dir
}

func fmtSessionName(prefix string, id int) string {
	return fmt.Sprintf("%s #%d", prefix, id)
}
