package ui

import (
	"fmt"
	"strings"
)

// Topic holds the metadata for a single navigation-tree topic. A topic
// groups the sessions launched against one working directory.
type Topic struct {
	Name string // display name (user-editable)
	Dir  string // working directory for all sessions in this topic
}

// RenderTopicBar produces the topic bar string for the top of the screen.
// activeIdx is the currently selected topic index.
func RenderTopicBar(topics []Topic, activeIdx, width int) string {
	var parts []string

	for i, t := range topics {
		label := t.Name
		if label == "" {
			label = fmt.Sprintf("Topic %d", i+1)
		}
		// Prefix with 1-indexed number for keyboard shortcut hint
		display := fmt.Sprintf(" %d: %s ", i+1, label)

		if i == activeIdx {
			parts = append(parts, TabActive.Render(display))
		} else {
			parts = append(parts, TabInactive.Render(display))
		}
	}

	// "+" button to add a new topic
	parts = append(parts, TabAdd.Render(" + "))

	bar := strings.Join(parts, " ")

	// Pad to full width
	return TabBarStyle.Width(width).Render(bar)
}
