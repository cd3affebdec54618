// Package config – session state persistence.
//
// Saves and restores the user's topic/session layout between runs so
// they can pick up exactly where they left off.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SessionState is the top-level structure serialised to disk.
type SessionState struct {
	ActiveTopic int          `json:"active_topic"`
	Topics      []SavedTopic `json:"topics"`
}

// SavedTopic captures a single navigation-tree topic's layout.
type SavedTopic struct {
	Name     string        `json:"name"`
	Dir      string        `json:"dir"`
	FocusIdx int           `json:"focus_idx"`
	Sessions []SavedSession `json:"sessions"`
}

// SavedSession captures enough information to re-launch a single
// hosted session.
type SavedSession struct {
	Name    string `json:"name"`
	Command string `json:"command"` // space-joined command line for re-launch (empty means $SHELL)
}

// sessionPath returns the path to ~/.vtcore-session.json.
func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vtcore-session.json")
}

// SaveSession writes the session state to disk.
func SaveSession(state SessionState) error {
	p := sessionPath()
	if p == "" {
		return nil
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// LoadSession reads a previously saved session state from disk.
// Returns nil if no session file exists or it cannot be parsed.
func LoadSession() *SessionState {
	p := sessionPath()
	if p == "" {
		return nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}
	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	// Basic validation
	if len(state.Topics) == 0 {
		return nil
	}
	return &state
}

// ClearSession removes the session file from disk.
func ClearSession() {
	p := sessionPath()
	if p != "" {
		os.Remove(p)
	}
}
