package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterData holds the information displayed in the global status footer.
type FooterData struct {
	Branch      string // current git branch of the focused session's topic
	Command     string // command line of the focused session (empty = shell)
	TopicCount  int    // total number of topics
	TopicIdx    int    // 0-based active topic index
	SessionIdx  int    // 0-based active session index within the topic
	SessionName string // name of the focused session
	TotalCost   string // total token cost tracked across all sessions
	ThemeName   string // active theme name
	Zoomed      bool   // whether a session pane is maximized
}

// RenderFooter draws the global status bar at the bottom of the screen.
// It shows: branch (copyable hint), command, topic/session position, and
// quick shortcut help.
func RenderFooter(d FooterData, width int) string {
	var sections []string

	if d.Branch != "" {
		sections = append(sections,
			FooterKeyStyle.Render("branch:")+
				FooterValStyle.Render(" "+d.Branch))
	}

	if d.Command != "" {
		sections = append(sections,
			FooterKeyStyle.Render("cmd:")+
				FooterValStyle.Render(" "+d.Command))
	}

	if d.TotalCost != "" {
		sections = append(sections,
			FooterKeyStyle.Render("cost:")+
				lipgloss.NewStyle().Bold(true).Foreground(ColorWarning).Render(" "+d.TotalCost))
	}

	topicInfo := fmt.Sprintf("Topic %d/%d  Session %d", d.TopicIdx+1, d.TopicCount, d.SessionIdx+1)
	if d.Zoomed {
		topicInfo += " [ZOOM]"
	}
	sections = append(sections, FooterDimStyle.Render(topicInfo))

	shortcuts := FooterDimStyle.Render("Ctrl+N:new  Ctrl+Z:zoom  Ctrl+B:queue  ?:help")

	left := strings.Join(sections, FooterSepStyle.Render(""))
	right := shortcuts

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right

	return FooterStyle.Width(width).Render(line)
}
