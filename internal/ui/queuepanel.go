package ui

import (
	"strings"

	"github.com/vtcore/vtcore/internal/queue"
)

// QueuePanel shows the pending/sent/done prompt queue for the focused
// session. It reuses the teacher's file-tree sidebar's visible/focused/
// editing toggle shape, retargeted from a filesystem browser at
// internal/queue.Manager: no SPEC_FULL module needed a file browser, but
// the pipeline queue named in §1 as a "topic-queue service" collaborator
// needed a UI surface.
type QueuePanel struct {
	Visible  bool
	Focused  bool // when true, arrow keys navigate the panel instead of panes
	Editing  bool // true when the add-prompt input is focused
	Width    int
	Selected int // index into Items
	Input    string
	Items    []queue.Item
}

// NewQueuePanel creates a queue panel of the given display width.
func NewQueuePanel(width int) QueuePanel {
	return QueuePanel{Width: width}
}

// Load refreshes Items from mgr for sessionID. mgr may be nil if no
// pipeline queue is wired into this run, in which case the panel is
// always empty.
func (qp *QueuePanel) Load(mgr *queue.Manager, sessionID int) {
	if mgr == nil {
		qp.Items = nil
		return
	}
	qp.Items = mgr.Items(sessionID)
	if qp.Selected >= len(qp.Items) {
		qp.Selected = len(qp.Items) - 1
	}
	if qp.Selected < 0 {
		qp.Selected = 0
	}
}

// MoveUp moves the selection cursor up.
func (qp *QueuePanel) MoveUp() {
	if qp.Selected > 0 {
		qp.Selected--
	}
}

// MoveDown moves the selection cursor down.
func (qp *QueuePanel) MoveDown() {
	if qp.Selected < len(qp.Items)-1 {
		qp.Selected++
	}
}

// SelectedItem returns the currently selected queue item, or nil.
func (qp *QueuePanel) SelectedItem() *queue.Item {
	if qp.Selected < 0 || qp.Selected >= len(qp.Items) {
		return nil
	}
	return &qp.Items[qp.Selected]
}

// Render draws the queue panel as a string.
func (qp *QueuePanel) Render(height int) string {
	if !qp.Visible {
		return ""
	}

	var b strings.Builder
	maxW := qp.Width - 3 // account for border + padding

	titleText := "Queue"
	if qp.Focused {
		titleText = "Queue [ACTIVE]"
	}
	b.WriteString(QueuePanelTitle.Render(titleText))
	b.WriteByte('\n')

	if qp.Input != "" || qp.Editing {
		b.WriteString(QueuePanelInput.Render("+ " + qp.Input + "█"))
		b.WriteByte('\n')
		height -= 2
	}
	height -= 2 // title + bottom padding
	if height < 1 {
		height = 1
	}

	if len(qp.Items) == 0 {
		b.WriteString(QueuePanelPending.Render("(queue empty)"))
		return QueuePanelStyle.Width(qp.Width).Height(height + 4).Render(b.String())
	}

	offset := 0
	if qp.Selected >= height {
		offset = qp.Selected - height + 1
	}

	for i := offset; i < len(qp.Items) && i-offset < height; i++ {
		item := qp.Items[i]
		icon := queueStatusIcon(item.Status)
		text := item.Prompt
		if len(icon)+1+len(text) > maxW {
			avail := maxW - len(icon) - 2
			if avail > 0 {
				text = text[:avail] + "…"
			}
		}

		line := icon + " " + text
		switch {
		case i == qp.Selected:
			line = QueuePanelSelected.Render(line)
		case item.Status == "sent":
			line = QueuePanelSent.Render(line)
		default:
			line = QueuePanelPending.Render(line)
		}

		b.WriteString(line)
		if i-offset < height-1 {
			b.WriteByte('\n')
		}
	}

	return QueuePanelStyle.Width(qp.Width).Height(height + 4).Render(b.String())
}

// queueStatusIcon returns a one-character marker for a queue item's status.
func queueStatusIcon(status string) string {
	switch status {
	case "sent":
		return "▸"
	case "done":
		return "✓"
	default:
		return "·"
	}
}
