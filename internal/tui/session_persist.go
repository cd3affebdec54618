package tui

import (
	"strings"

	"github.com/vtcore/vtcore/internal/config"
	"github.com/vtcore/vtcore/internal/ui"
)

// saveSession persists the current topic/session layout to disk so it
// can be restored on the next launch.
func (m *Model) saveSession() {
	state := config.SessionState{
		ActiveTopic: m.topicIdx,
	}
	for _, ts := range m.topics {
		st := config.SavedTopic{
			Name:     ts.Topic.Name,
			Dir:      ts.Topic.Dir,
			FocusIdx: ts.FocusIdx,
		}
		for _, p := range ts.Sessions {
			st.Sessions = append(st.Sessions, config.SavedSession{
				Name:    p.Name,
				Command: p.Command,
			})
		}
		state.Topics = append(state.Topics, st)
	}
	_ = config.SaveSession(state)
}

// restoreSession attempts to load a saved session and recreate all
// topics and sessions. Returns true if the session was successfully
// restored.
func (m *Model) restoreSession(fallbackDir string) bool {
	saved := config.LoadSession()
	if saved == nil {
		return false
	}

	for _, st := range saved.Topics {
		dir := st.Dir
		if dir == "" {
			dir = fallbackDir
		}

		topicIdx := len(m.topics)
		m.addTopic(st.Name, dir)

		for _, sp := range st.Sessions {
			choice := ui.LaunchChoice{Type: ui.LaunchShell}
			if sp.Command != "" {
				choice = ui.LaunchChoice{Type: ui.LaunchCommand, Argv: strings.Fields(sp.Command)}
			}
			m.launchSession(choice)

			topic := &m.topics[topicIdx]
			if len(topic.Sessions) > 0 && sp.Name != "" {
				topic.Sessions[len(topic.Sessions)-1].Name = sp.Name
			}
		}

		topic := &m.topics[topicIdx]
		if st.FocusIdx >= 0 && st.FocusIdx < len(topic.Sessions) {
			topic.FocusIdx = st.FocusIdx
			for i := range topic.Sessions {
				topic.Sessions[i].Focused = (i == st.FocusIdx)
			}
		}
	}

	if saved.ActiveTopic >= 0 && saved.ActiveTopic < len(m.topics) {
		m.topicIdx = saved.ActiveTopic
	}

	return len(m.topics) > 0
}
