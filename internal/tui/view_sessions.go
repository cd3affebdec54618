package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vtcore/vtcore/internal/ui"
)

// renderSessions draws all sessions in the active topic using the grid layout.
func (m Model) renderSessions(areaW, areaH int) string {
	topic := m.activeTopic()
	if topic == nil || len(topic.Sessions) == 0 {
		return lipgloss.NewStyle().
			Width(areaW).
			Height(areaH).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(ui.ColorMuted).
			Render("No sessions. Press Ctrl+N to create one.")
	}

	if m.zoomed && topic.FocusIdx >= 0 && topic.FocusIdx < len(topic.Sessions) {
		fullRect := ui.Rect{X: 0, Y: 0, Width: areaW, Height: areaH}
		return ui.RenderPane(topic.Sessions[topic.FocusIdx], fullRect)
	}

	rects := ui.ComputeGrid(len(topic.Sessions), areaW, areaH, topic.FocusIdx)

	canvas := make([][]rune, areaH)
	for r := range canvas {
		canvas[r] = make([]rune, areaW)
		for c := range canvas[r] {
			canvas[r][c] = ' '
		}
	}

	for i, pi := range topic.Sessions {
		if i >= len(rects) {
			break
		}
		rect := rects[i]
		rendered := ui.RenderPane(pi, rect)
		stampOnCanvas(canvas, rendered, rect.X, rect.Y, rect.Width, rect.Height)
	}

	var b strings.Builder
	for r, row := range canvas {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, ch := range row {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// stampOnCanvas writes a rendered string block onto the rune canvas.
func stampOnCanvas(canvas [][]rune, rendered string, x, y, w, h int) {
	lines := strings.Split(rendered, "\n")
	for dy, line := range lines {
		if y+dy >= len(canvas) {
			break
		}
		col := x
		for _, ch := range line {
			if col >= x+w || col >= len(canvas[y+dy]) {
				break
			}
			canvas[y+dy][col] = ch
			col++
		}
	}
}
