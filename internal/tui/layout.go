package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/vtcore/vtcore/internal/session"
	"github.com/vtcore/vtcore/internal/ui"
)

// resizeAllSessions recalculates dimensions for all sessions in the active topic.
func (m *Model) resizeAllSessions() {
	topic := m.activeTopic()
	if topic == nil {
		return
	}

	contentH := m.height - 2 // topic bar + footer
	contentW := m.width
	if m.queuePanel.Visible {
		contentW -= m.queuePanel.Width
	}
	if contentW < 10 {
		contentW = 10
	}
	if contentH < 3 {
		contentH = 3
	}

	if m.zoomed && topic.FocusIdx >= 0 && topic.FocusIdx < len(topic.Sessions) {
		p := topic.Sessions[topic.FocusIdx]
		innerW := contentW - 2
		innerH := contentH - 3
		if innerW < 1 {
			innerW = 1
		}
		if innerH < 1 {
			innerH = 1
		}
		if p.Session != nil {
			p.Session.Resize(innerH, innerW)
		}
		return
	}

	rects := ui.ComputeGrid(len(topic.Sessions), contentW, contentH, topic.FocusIdx)
	for i, p := range topic.Sessions {
		if i >= len(rects) {
			break
		}
		r := rects[i]
		innerW := r.Width - 2
		innerH := r.Height - 3
		if innerW < 1 {
			innerW = 1
		}
		if innerH < 1 {
			innerH = 1
		}
		if p.Session != nil {
			p.Session.Resize(innerH, innerW)
		}
	}
}

// refreshGitBranch updates the Branch field of the focused session.
func (m *Model) refreshGitBranch() {
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) == 0 {
		return
	}
	idx := topic.FocusIdx
	if idx < 0 || idx >= len(topic.Sessions) {
		return
	}

	dir := topic.Topic.Dir
	if dir == "" {
		dir, _ = os.Getwd()
	}

	topic.Sessions[idx].Branch = gitBranch(dir)
}

// refreshQueuePanel reloads the queue panel's items for the focused session.
func (m *Model) refreshQueuePanel() {
	if m.queue == nil {
		return
	}
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) == 0 {
		m.queuePanel.Load(m.queue, 0)
		return
	}
	idx := topic.FocusIdx
	if idx < 0 || idx >= len(topic.Sessions) {
		return
	}
	sess := topic.Sessions[idx].Session
	if sess == nil {
		return
	}
	m.queuePanel.Load(m.queue, sess.ID)
}

func gitBranch(dir string) string {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// scanSessionActivity checks all sessions for activity changes and token
// info, flashing the pane border when a session finishes or needs input.
func (m *Model) scanSessionActivity() {
	for ti := range m.topics {
		for pi := range m.topics[ti].Sessions {
			p := &m.topics[ti].Sessions[pi]
			if p.Session == nil {
				continue
			}

			state := p.Session.DetectActivity()
			switch state {
			case session.ActivityDone:
				if time.Now().After(p.FlashUntil) {
					p.FlashUntil = time.Now().Add(3 * time.Second)
					p.FlashColor = ui.ColorSuccess
					p.Session.ResetActivity()
				}
				if m.queue != nil {
					m.queue.OnActivity(p.Session.ID, state)
				}
			case session.ActivityNeedsInput:
				if time.Now().After(p.FlashUntil) {
					p.FlashUntil = time.Now().Add(5 * time.Second)
					p.FlashColor = ui.ColorWarning
					p.Session.ResetActivity()
				}
			case session.ActivityIdle:
				if m.queue != nil {
					m.queue.OnActivity(p.Session.ID, state)
				}
			}

			if p.Session.Tokens.TotalCost > 0 {
				p.TokenCost = fmt.Sprintf("$%.2f", p.Session.Tokens.TotalCost)
			}
		}
	}
}

// footerData assembles the data needed to render the footer.
func (m *Model) footerData() ui.FooterData {
	d := ui.FooterData{
		TopicCount: len(m.topics),
		TopicIdx:   m.topicIdx,
		ThemeName:  m.cfg.Theme,
		Zoomed:     m.zoomed,
	}

	topic := m.activeTopic()
	if topic == nil {
		return d
	}

	d.SessionIdx = topic.FocusIdx
	if topic.FocusIdx >= 0 && topic.FocusIdx < len(topic.Sessions) {
		p := topic.Sessions[topic.FocusIdx]
		d.Branch = p.Branch
		d.Command = p.Command
		d.SessionName = p.Name
	}

	var totalCost float64
	for _, ts := range m.topics {
		for _, p := range ts.Sessions {
			if p.Session == nil {
				continue
			}
			p.Session.ScanTokens()
			totalCost += p.Session.Tokens.TotalCost
		}
	}
	if totalCost > 0 {
		d.TotalCost = fmt.Sprintf("$%.2f", totalCost)
	}

	return d
}
