package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtcore/vtcore/internal/ui"
)

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog.Visible {
		return m.handleDialogKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.queuePanel.Editing {
		return m.handleQueueEditKey(msg)
	}

	if m.queueFocused && m.queuePanel.Visible {
		return m.handleQueueFocusKey(msg)
	}

	// Passthrough mode – everything except Ctrl+G goes to the session.
	if m.passthrough {
		if isKey(msg, tea.KeyCtrlG) {
			m.passthrough = false
			return m, nil
		}
		m.sendKeyToTerminal(msg)
		return m, nil
	}

	// Quit: double Ctrl+C
	if isKey(msg, tea.KeyCtrlC) {
		if time.Since(m.lastCtrlC) < 500*time.Millisecond {
			m.quitting = true
			m.saveSession()
			m.closeAllSessions()
			return m, tea.Quit
		}
		m.lastCtrlC = time.Now()
		m.sendKeyToTerminal(msg)
		return m, nil
	}

	// Shift+Enter → send kitty CSI u sequence to the child PTY. Many
	// terminals report Alt+Enter when Shift+Enter is pressed; Bubbletea
	// v1 surfaces this as KeyEnter with Alt=true.
	if isKey(msg, tea.KeyEnter) && msg.Alt {
		m.sendBytesToTerminal([]byte("\x1b[13;2u"))
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlT) {
		m.addTopic("", m.currentDir())
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlW) {
		m.closeCurrentTopic()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlN) {
		m.dialog.Open()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlX) {
		m.closeFocusedSession()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlB) {
		m.queuePanel.Visible = !m.queuePanel.Visible
		if m.queuePanel.Visible {
			m.refreshQueuePanel()
		} else {
			m.queueFocused = false
			m.queuePanel.Focused = false
		}
		m.resizeAllSessions()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlF) {
		if m.queuePanel.Visible {
			m.queueFocused = !m.queueFocused
			m.queuePanel.Focused = m.queueFocused
		}
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlZ) {
		m.zoomed = !m.zoomed
		m.resizeAllSessions()
		return m, nil
	}

	if isKey(msg, tea.KeyCtrlG) {
		m.passthrough = true
		return m, nil
	}

	if isRune(msg, '?') {
		m.showHelp = true
		return m, nil
	}

	// Topic switching with number keys 1-9
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '1' && r <= '9' {
			idx := int(r - '1')
			if idx < len(m.topics) {
				m.topicIdx = idx
				return m, nil
			}
		}
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		m.navigatePane(msg.Type)
		return m, nil
	case tea.KeyTab:
		m.cyclePaneFocus()
		return m, nil
	}

	m.sendKeyToTerminal(msg)
	return m, nil
}

// handleDialogKey processes keys when the launch dialog is open.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog.Step == ui.DialogStepCommand {
		switch msg.Type {
		case tea.KeyEsc:
			m.dialog.Close()
		case tea.KeyEnter:
			done := m.dialog.Select()
			if done && m.dialog.Choice.Type != ui.LaunchCancel {
				m.launchSession(m.dialog.Choice)
			}
		case tea.KeyBackspace:
			m.dialog.Backspace()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.dialog.TypeRune(r)
			}
		case tea.KeySpace:
			m.dialog.TypeRune(' ')
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.dialog.Close()
	case tea.KeyUp:
		m.dialog.MoveUp()
	case tea.KeyDown:
		m.dialog.MoveDown()
	case tea.KeyEnter:
		done := m.dialog.Select()
		if done && m.dialog.Choice.Type != ui.LaunchCancel {
			m.launchSession(m.dialog.Choice)
		}
	}
	return m, nil
}

// handleQueueFocusKey processes keys when the queue panel is focused:
// navigating items, adding a new prompt ('a'), or removing the
// selected pending one ('d').
func (m Model) handleQueueFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlF:
		m.queueFocused = false
		m.queuePanel.Focused = false
		return m, nil
	case tea.KeyUp:
		m.queuePanel.MoveUp()
		return m, nil
	case tea.KeyDown:
		m.queuePanel.MoveDown()
		return m, nil
	case tea.KeyCtrlB:
		m.queuePanel.Visible = false
		m.queueFocused = false
		m.queuePanel.Focused = false
		m.resizeAllSessions()
		return m, nil
	}

	if isRune(msg, 'a') {
		m.queuePanel.Editing = true
		m.queuePanel.Input = ""
		return m, nil
	}
	if isRune(msg, 'd') {
		m.removeSelectedQueueItem()
		return m, nil
	}

	return m, nil
}

// handleQueueEditKey processes keys while composing a new queued prompt.
func (m Model) handleQueueEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.queuePanel.Editing = false
		m.queuePanel.Input = ""
	case tea.KeyEnter:
		m.queuePanel.Editing = false
		m.submitQueuedPrompt(m.queuePanel.Input)
		m.queuePanel.Input = ""
	case tea.KeyBackspace:
		if len(m.queuePanel.Input) > 0 {
			m.queuePanel.Input = m.queuePanel.Input[:len(m.queuePanel.Input)-1]
		}
	case tea.KeySpace:
		m.queuePanel.Input += " "
	default:
		if msg.Type == tea.KeyRunes {
			m.queuePanel.Input += string(msg.Runes)
		}
	}
	return m, nil
}
