package session

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TokenInfo holds parsed token usage and cost data scraped from the
// screen of an agentic CLI (Claude Code and similar tools print a
// running cost/token footer).
type TokenInfo struct {
	TotalCost    float64
	InputTokens  int
	OutputTokens int
}

// ActivityState describes what a hosted CLI is currently doing, for
// UIs that want to badge idle/busy/needs-attention panes.
type ActivityState int

const (
	ActivityIdle ActivityState = iota
	ActivityActive
	ActivityDone
	ActivityNeedsInput
)

// ScanTokens scans the last few screen rows for cost/token footers and
// updates Tokens. Call periodically, not on every byte.
func (s *Session) ScanTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.Screen.Rows()
	var text strings.Builder
	scanFrom := rows - 10
	if scanFrom < 0 {
		scanFrom = 0
	}
	for r := scanFrom; r < rows; r++ {
		text.WriteString(s.Screen.PlainTextRow(r))
		text.WriteByte('\n')
	}
	content := text.String()

	if m := costPattern.FindStringSubmatch(content); len(m) >= 2 {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			s.Tokens.TotalCost = v
		}
	}
	if m := inputTokenPattern.FindStringSubmatch(content); len(m) >= 2 {
		s.Tokens.InputTokens = parseTokenCount(m[1])
	}
	if m := outputTokenPattern.FindStringSubmatch(content); len(m) >= 2 {
		s.Tokens.OutputTokens = parseTokenCount(m[1])
	}
}

// DetectActivity classifies the current activity state from elapsed
// time since the last PTY output and, once output has been quiet for
// a while, from the screen's trailing content. Call periodically.
func (s *Session) DetectActivity() ActivityState {
	s.mu.Lock()
	lastOutput := s.LastOutputAt
	current := s.Activity
	s.mu.Unlock()

	if lastOutput.IsZero() {
		return current
	}
	if time.Since(lastOutput) < 1500*time.Millisecond {
		return current
	}

	newState := s.classifyScreenState()
	s.mu.Lock()
	s.Activity = newState
	s.mu.Unlock()
	return newState
}

// classifyScreenState looks at the last several non-empty rows to
// decide whether the hosted CLI is waiting for confirmation, has
// returned to a shell/agent prompt, or is simply idle.
func (s *Session) classifyScreenState() ActivityState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.Screen.Rows()
	scanFrom := rows - 15
	if scanFrom < 0 {
		scanFrom = 0
	}
	for r := rows - 1; r >= scanFrom; r-- {
		line := s.Screen.PlainTextRow(r)
		if line == "" {
			continue
		}
		trimmed := strings.TrimSpace(line)

		if needsInputPattern.MatchString(trimmed) {
			return ActivityNeedsInput
		}
		if promptPattern.MatchString(trimmed) {
			return ActivityDone
		}
	}
	return ActivityIdle
}

// ResetActivity sets the activity state back to Idle, e.g. right after
// sending a new prompt.
func (s *Session) ResetActivity() {
	s.mu.Lock()
	s.Activity = ActivityIdle
	s.mu.Unlock()
}

var (
	costPattern        = regexp.MustCompile(`\$(\d+\.\d+)`)
	inputTokenPattern  = regexp.MustCompile(`(\d+\.?\d*[kK]?)\s*(?:input|in\b)`)
	outputTokenPattern = regexp.MustCompile(`(\d+\.?\d*[kK]?)\s*(?:output|out\b)`)

	needsInputPattern = regexp.MustCompile(`(?i)` +
		`\[Y/n\]|\[y/N\]|\(y/n\)|` +
		`(?:proceed|continue|confirm|approve|allow)\s*\?|` +
		`permission|Do you want to|Would you like to|` +
		`Press Enter to|waiting for|Waiting for`)

	// promptPattern matches a returned-to-prompt line: Claude Code's own
	// prompt glyphs, a plain Unix shell prompt, or a Windows cmd.exe
	// prompt like C:\Users\x>.
	promptPattern = regexp.MustCompile(
		`[❯›»]\s*$|` +
			`[>$%#]\s*$|` +
			`^[A-Za-z]:\\[^>]*>\s*$`)
)

// parseTokenCount converts strings like "15.2k" or "3800" to an int.
func parseTokenCount(s string) int {
	s = strings.TrimSpace(s)
	multiplier := 1.0
	if strings.HasSuffix(strings.ToLower(s), "k") {
		multiplier = 1000
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v * multiplier)
}
