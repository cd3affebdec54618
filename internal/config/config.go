// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.vtcore.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vtcore/vtcore/internal/terminal"
)

// Config holds all user-configurable settings.
type Config struct {
	// DefaultShell is the command spawned for a new session when none
	// is specified. Empty means the user's $SHELL.
	DefaultShell string `yaml:"default_shell"`

	// DefaultDir is the working directory for new sessions. Empty
	// means the current working directory at launch time.
	DefaultDir string `yaml:"default_dir"`

	// Theme selects the TUI's lipgloss color palette.
	Theme string `yaml:"theme"`

	// MaxSessionsPerTopic limits how many concurrent sessions a single
	// navigation-tree topic may hold open (1-12).
	MaxSessionsPerTopic int `yaml:"max_sessions_per_topic"`

	// CrashHistoryWindow is how many recent shutdowns are retained for
	// crash-loop detection (see config.HasRepeatedCrashes).
	CrashHistoryWindow int `yaml:"crash_history_window"`

	// ScrollbackLines bounds the retained scrollback per session (spec §6).
	ScrollbackLines int `yaml:"scrollback_lines"`

	// PromptMarkers are literal substrings the visual-cursor resolver's
	// prompt-marker rule looks for (spec §4.6 rule 2).
	PromptMarkers []string `yaml:"prompt_markers"`

	// VisualCursorRules names which caret-resolution rules are active;
	// valid values are "reverse", "prompt", "vt". Active rules are always
	// tried in that fixed order; the order of this list is ignored.
	// Empty means all three.
	VisualCursorRules []string `yaml:"visual_cursor_rules"`

	// ListenAddr is the bind address for the websocket transport that
	// exposes sessions to remote UI clients.
	ListenAddr string `yaml:"listen_addr"`

	// CoalesceWindowMillis batches PTY output for this many
	// milliseconds before notifying transport subscribers, trading a
	// little latency for fewer redraw events under bursty output.
	CoalesceWindowMillis int `yaml:"coalesce_window_millis"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultShell:         "",
		DefaultDir:           "",
		Theme:                "dark",
		MaxSessionsPerTopic:  12,
		CrashHistoryWindow:   5,
		ScrollbackLines:      1000,
		PromptMarkers:        []string{"$ ", "> ", "# "},
		VisualCursorRules:    nil,
		ListenAddr:           "127.0.0.1:7890",
		CoalesceWindowMillis: 16,
	}
}

// CaretRules resolves VisualCursorRules into terminal.CaretRule
// values, defaulting to all three when unset or unrecognized.
func (c Config) CaretRules() []terminal.CaretRule {
	if len(c.VisualCursorRules) == 0 {
		return []terminal.CaretRule{terminal.RuleReverse, terminal.RulePrompt, terminal.RuleVT}
	}
	var rules []terminal.CaretRule
	for _, name := range c.VisualCursorRules {
		switch name {
		case "reverse":
			rules = append(rules, terminal.RuleReverse)
		case "prompt":
			rules = append(rules, terminal.RulePrompt)
		case "vt":
			rules = append(rules, terminal.RuleVT)
		}
	}
	if len(rules) == 0 {
		return []terminal.CaretRule{terminal.RuleReverse, terminal.RulePrompt, terminal.RuleVT}
	}
	return rules
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vtcore.yaml")
}

// Load reads the config file, falling back to defaults for missing
// fields, and writes a starter file on first run.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.MaxSessionsPerTopic < 1 {
		cfg.MaxSessionsPerTopic = 1
	}
	if cfg.MaxSessionsPerTopic > 12 {
		cfg.MaxSessionsPerTopic = 12
	}
	if cfg.CrashHistoryWindow < 3 {
		cfg.CrashHistoryWindow = 3
	}
	if cfg.CrashHistoryWindow > 20 {
		cfg.CrashHistoryWindow = 20
	}
	if cfg.ScrollbackLines < 0 {
		cfg.ScrollbackLines = 0
	}
	if cfg.CoalesceWindowMillis < 0 {
		cfg.CoalesceWindowMillis = 0
	}

	validThemes := map[string]bool{"dark": true, "light": true, "dracula": true, "nord": true, "solarized": true}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	return cfg
}

func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# vtcore configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
