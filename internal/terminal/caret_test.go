package terminal

import "testing"

func TestResolveCaret_ReverseVideoRunWins(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[10;10H"))           // VT cursor elsewhere
	s.Feed([]byte("\x1b[3;5H\x1b[7m \x1b[0m")) // single reverse-video cell at row2,col4
	frame := s.Snapshot()
	if frame.Caret.Row != 2 || frame.Caret.Col != 4 {
		t.Errorf("Caret = (%d,%d), want (2,4)", frame.Caret.Row, frame.Caret.Col)
	}
}

func TestResolveCaret_MultipleRunsFallThrough(t *testing.T) {
	s := NewScreen(Options{Rows: 5, Cols: 20, VisualCursorRules: []CaretRule{RuleReverse, RuleVT}})
	s.Feed([]byte("\x1b[1;1H\x1b[7mA\x1b[0m\x1b[1;10H\x1b[7mB\x1b[0m"))
	s.Feed([]byte("\x1b[4;4H"))
	frame := s.Snapshot()
	if frame.Caret.Row != 3 || frame.Caret.Col != 3 {
		t.Errorf("Caret = (%d,%d), want VT fallback (3,3)", frame.Caret.Row, frame.Caret.Col)
	}
}

func TestResolveCaret_PromptMarker(t *testing.T) {
	s := NewScreen(Options{Rows: 5, Cols: 40, PromptMarkers: []string{"> "}, VisualCursorRules: []CaretRule{RuleReverse, RulePrompt, RuleVT}})
	s.Feed([]byte("> echo hi"))
	s.Feed([]byte("\x1b[1;1H")) // VT cursor moves away, prompt marker should still win
	frame := s.Snapshot()
	if frame.Caret.Row != 0 || frame.Caret.Col != 9 {
		t.Errorf("Caret = (%d,%d), want (0,9)", frame.Caret.Row, frame.Caret.Col)
	}
}

func TestResolveCaret_DisabledRuleIsSkipped(t *testing.T) {
	s := NewScreen(Options{Rows: 5, Cols: 40, PromptMarkers: []string{"> "}, VisualCursorRules: []CaretRule{RuleVT}})
	s.Feed([]byte("> echo hi"))
	frame := s.Snapshot()
	row, col := s.Cursor()
	if frame.Caret.Row != row || frame.Caret.Col != col {
		t.Errorf("Caret = (%d,%d), want VT cursor (%d,%d)", frame.Caret.Row, frame.Caret.Col, row, col)
	}
}

func TestRuneIndex(t *testing.T) {
	cases := []struct {
		s, sub string
		want   int
	}{
		{"hello world", "world", 6},
		{"hello", "xyz", -1},
		{"hello", "", 0},
		{"日本語hello", "hello", 3},
	}
	for _, c := range cases {
		got := runeIndex([]rune(c.s), []rune(c.sub))
		if got != c.want {
			t.Errorf("runeIndex(%q, %q) = %d, want %d", c.s, c.sub, got, c.want)
		}
	}
}
