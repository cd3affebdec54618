package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtcore/vtcore/internal/session"
	"github.com/vtcore/vtcore/internal/ui"
)

// addTopic creates a new topic with the given name and working directory.
func (m *Model) addTopic(name, dir string) {
	if name == "" {
		name = fmt.Sprintf("Topic %d", len(m.topics)+1)
	}
	ts := topicState{
		Topic: ui.Topic{Name: name, Dir: dir},
	}
	m.topics = append(m.topics, ts)
	m.topicIdx = len(m.topics) - 1
}

// closeCurrentTopic closes the active topic and all its sessions.
func (m *Model) closeCurrentTopic() {
	if len(m.topics) <= 1 {
		return // don't close the last topic
	}
	topic := m.activeTopic()
	if topic != nil {
		for _, p := range topic.Sessions {
			m.teardownSession(p.Session)
		}
	}
	m.topics = append(m.topics[:m.topicIdx], m.topics[m.topicIdx+1:]...)
	if m.topicIdx >= len(m.topics) {
		m.topicIdx = len(m.topics) - 1
	}
}

// launchSession creates a new session in the active topic from a LaunchChoice.
func (m *Model) launchSession(choice ui.LaunchChoice) {
	topic := m.activeTopic()
	if topic == nil {
		return
	}
	if len(topic.Sessions) >= m.cfg.MaxSessionsPerTopic {
		return
	}

	m.nextSessionID++
	sid := m.nextSessionID

	paneH := m.height - 4 // minus topic bar + footer + borders
	paneW := m.width - 4
	if m.queuePanel.Visible {
		paneW -= m.queuePanel.Width
	}
	if paneH < 5 {
		paneH = 5
	}
	if paneW < 20 {
		paneW = 20
	}

	sess := session.New(sid, session.Options{
		Rows:              paneH,
		Cols:              paneW,
		ScrollbackCap:     m.cfg.ScrollbackLines,
		PromptMarkers:     m.cfg.PromptMarkers,
		VisualCursorRules: m.cfg.CaretRules(),
	})

	dir := topic.Topic.Dir
	if dir == "" {
		dir, _ = os.Getwd()
	}

	var cmdLabel string
	if choice.Type == ui.LaunchCommand {
		cmdLabel = strings.Join(choice.Argv, " ")
	}

	pane := ui.SessionPane{
		Session: sess,
		Name:    fmtSessionName(choiceLabel(choice.Type), sid),
		Command: cmdLabel,
		Focused: true,
	}

	for i := range topic.Sessions {
		topic.Sessions[i].Focused = false
	}
	topic.Sessions = append(topic.Sessions, pane)
	topic.FocusIdx = len(topic.Sessions) - 1

	_ = sess.Start(choice.Argv, dir, nil)

	if m.queue != nil {
		m.queue.Track(sid, sess)
	}
	if m.hub != nil {
		m.hub.Watch(sid, sess, sess.Done())
	}

	m.resizeAllSessions()
}

func choiceLabel(t ui.LaunchType) string {
	if t == ui.LaunchCommand {
		return "Cmd"
	}
	return "Shell"
}

// closeFocusedSession closes the currently focused session.
func (m *Model) closeFocusedSession() {
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) == 0 {
		return
	}
	idx := topic.FocusIdx
	if idx < 0 || idx >= len(topic.Sessions) {
		return
	}

	pane := topic.Sessions[idx]
	m.teardownSession(pane.Session)

	topic.Sessions = append(topic.Sessions[:idx], topic.Sessions[idx+1:]...)
	if topic.FocusIdx >= len(topic.Sessions) {
		topic.FocusIdx = len(topic.Sessions) - 1
	}
	for i := range topic.Sessions {
		topic.Sessions[i].Focused = (i == topic.FocusIdx)
	}
	m.resizeAllSessions()
}

// teardownSession closes a session and releases it from the queue manager.
func (m *Model) teardownSession(sess *session.Session) {
	if sess == nil {
		return
	}
	if m.queue != nil {
		m.queue.Untrack(sess.ID)
	}
	go sess.Close()
}

// cyclePaneFocus moves focus to the next session.
func (m *Model) cyclePaneFocus() {
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) <= 1 {
		return
	}
	topic.FocusIdx = (topic.FocusIdx + 1) % len(topic.Sessions)
	for i := range topic.Sessions {
		topic.Sessions[i].Focused = (i == topic.FocusIdx)
	}
}

// navigatePane moves focus based on arrow key direction.
func (m *Model) navigatePane(key tea.KeyType) {
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) <= 1 {
		return
	}

	n := len(topic.Sessions)
	rects := ui.ComputeGrid(n, m.width, m.height-2, topic.FocusIdx)
	if len(rects) != n {
		return
	}

	cur := rects[topic.FocusIdx]
	best := -1
	bestDist := 1 << 30

	for i, r := range rects {
		if i == topic.FocusIdx {
			continue
		}
		match := false
		switch key {
		case tea.KeyUp:
			match = r.Y+r.Height <= cur.Y
		case tea.KeyDown:
			match = r.Y >= cur.Y+cur.Height
		case tea.KeyLeft:
			match = r.X+r.Width <= cur.X
		case tea.KeyRight:
			match = r.X >= cur.X+cur.Width
		}
		if match {
			dx := (r.X + r.Width/2) - (cur.X + cur.Width/2)
			dy := (r.Y + r.Height/2) - (cur.Y + cur.Height/2)
			dist := abs(dx) + abs(dy)
			if dist < bestDist {
				bestDist = dist
				best = i
			}
		}
	}

	if best >= 0 {
		topic.FocusIdx = best
		for i := range topic.Sessions {
			topic.Sessions[i].Focused = (i == topic.FocusIdx)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// submitQueuedPrompt appends prompt to the focused session's pipeline
// queue, to be delivered once the session goes idle.
func (m *Model) submitQueuedPrompt(prompt string) {
	if m.queue == nil || prompt == "" {
		return
	}
	sess := m.focusedSession()
	if sess == nil {
		return
	}
	m.queue.Add(sess.ID, prompt)
	m.refreshQueuePanel()
}

// removeSelectedQueueItem removes the queue panel's selected pending item.
func (m *Model) removeSelectedQueueItem() {
	if m.queue == nil {
		return
	}
	item := m.queuePanel.SelectedItem()
	if item == nil {
		return
	}
	sess := m.focusedSession()
	if sess == nil {
		return
	}
	m.queue.Remove(sess.ID, item.ID)
	m.refreshQueuePanel()
}

// focusedSession returns the session hosted by the active topic's
// focused pane, or nil.
func (m *Model) focusedSession() *session.Session {
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) == 0 {
		return nil
	}
	idx := topic.FocusIdx
	if idx < 0 || idx >= len(topic.Sessions) {
		return nil
	}
	return topic.Sessions[idx].Session
}

// sendBytesToTerminal writes raw bytes to the focused session's PTY.
func (m *Model) sendBytesToTerminal(data []byte) {
	sess := m.focusedSession()
	if sess == nil || !sess.IsRunning() {
		return
	}
	sess.Write(data)
}

// sendKeyToTerminal forwards a key event to the focused session.
func (m *Model) sendKeyToTerminal(msg tea.KeyMsg) {
	sess := m.focusedSession()
	if sess == nil || !sess.IsRunning() {
		return
	}

	data := keyToBytes(msg)
	if len(data) > 0 {
		sess.Write(data)
	}
}

// closeAllSessions closes every session across all topics.
func (m *Model) closeAllSessions() {
	for _, ts := range m.topics {
		for _, p := range ts.Sessions {
			m.teardownSession(p.Session)
		}
	}
}
