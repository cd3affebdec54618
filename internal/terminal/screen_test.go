package terminal

import "testing"

func TestNewScreen_Dimensions(t *testing.T) {
	s := NewDefaultScreen()
	if s.Rows() != 24 {
		t.Errorf("Rows() = %d, want 24", s.Rows())
	}
	if s.Cols() != 80 {
		t.Errorf("Cols() = %d, want 80", s.Cols())
	}
}

func TestNewScreen_BlankCells(t *testing.T) {
	s := NewScreen(Options{Rows: 3, Cols: 4, Autowrap: true})
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			cell := s.CellAt(r, c)
			if cell.Ch != ' ' {
				t.Errorf("CellAt(%d,%d).Ch = %q, want ' '", r, c, cell.Ch)
			}
		}
	}
}

func TestNewScreen_CursorAtOrigin(t *testing.T) {
	s := NewDefaultScreen()
	row, col := s.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("Cursor() = (%d,%d), want (0,0)", row, col)
	}
}

func TestCellAt_OutOfBounds(t *testing.T) {
	s := NewScreen(Options{Rows: 3, Cols: 3})
	for _, pos := range [][2]int{{-1, 0}, {99, 0}, {0, 99}} {
		cell := s.CellAt(pos[0], pos[1])
		if cell.Ch != ' ' {
			t.Errorf("CellAt(%d,%d).Ch = %q, want ' '", pos[0], pos[1], cell.Ch)
		}
	}
}

func TestFeed_PlainText(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("hello"))
	for i, want := range "hello" {
		if got := s.CellAt(0, i).Ch; got != want {
			t.Errorf("CellAt(0,%d) = %q, want %q", i, got, want)
		}
	}
	_, col := s.Cursor()
	if col != 5 {
		t.Errorf("cursor col = %d, want 5", col)
	}
}

func TestFeed_AutowrapAtLastColumn(t *testing.T) {
	s := NewScreen(Options{Rows: 2, Cols: 5, Autowrap: true})
	s.Feed([]byte("abcdef"))
	if got := s.CellAt(0, 4).Ch; got != 'e' {
		t.Errorf("CellAt(0,4) = %q, want 'e'", got)
	}
	if got := s.CellAt(1, 0).Ch; got != 'f' {
		t.Errorf("CellAt(1,0) = %q, want 'f'", got)
	}
}

func TestFeed_NoAutowrapClampsColumn(t *testing.T) {
	s := NewScreen(Options{Rows: 2, Cols: 5, Autowrap: false})
	s.Feed([]byte("abcdef"))
	row, col := s.Cursor()
	if row != 0 || col != 4 {
		t.Errorf("Cursor() = (%d,%d), want (0,4)", row, col)
	}
	if got := s.CellAt(0, 4).Ch; got != 'f' {
		t.Errorf("CellAt(0,4) = %q, want 'f' (overwritten without wrap)", got)
	}
}

func TestFeed_ChunkingInvariance(t *testing.T) {
	input := []byte("hello\x1b[31mworld\x1b[0m\r\nsecond line\x1b[2K")
	whole := NewDefaultScreen()
	whole.Feed(input)

	chunked := NewDefaultScreen()
	for _, b := range input {
		chunked.Feed([]byte{b})
	}

	for r := 0; r < whole.Rows(); r++ {
		for c := 0; c < whole.Cols(); c++ {
			if whole.CellAt(r, c) != chunked.CellAt(r, c) {
				t.Fatalf("cell (%d,%d) differs: whole=%+v chunked=%+v", r, c, whole.CellAt(r, c), chunked.CellAt(r, c))
			}
		}
	}
}

func TestResize_RejectsNonPositive(t *testing.T) {
	s := NewDefaultScreen()
	if err := s.Resize(0, 80); err == nil {
		t.Error("Resize(0, 80) expected error, got nil")
	}
	if err := s.Resize(24, -1); err == nil {
		t.Error("Resize(24, -1) expected error, got nil")
	}
	if m := s.Metrics(); m.ResizeRejected != 2 {
		t.Errorf("ResizeRejected = %d, want 2", m.ResizeRejected)
	}
}

func TestResize_ClampsCursor(t *testing.T) {
	s := NewScreen(Options{Rows: 10, Cols: 10, Autowrap: true})
	s.Feed([]byte("\x1b[10;10H"))
	if err := s.Resize(5, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	row, col := s.Cursor()
	if row >= 5 || col >= 5 {
		t.Errorf("Cursor() = (%d,%d), want within 5x5", row, col)
	}
}

func TestResize_ShrinkingHeightFeedsScrollback(t *testing.T) {
	s := NewScreen(Options{Rows: 5, Cols: 10, Autowrap: true})
	for i := 0; i < 5; i++ {
		s.Feed([]byte{byte('0' + i)})
		if i < 4 {
			s.Feed([]byte("\r\n"))
		}
	}
	if err := s.Resize(2, 10); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.ScrollbackLen() != 3 {
		t.Errorf("ScrollbackLen() = %d, want 3", s.ScrollbackLen())
	}
}

func TestFullReset_ClearsScreenAndTitle(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b]0;mytitle\x07hello\x1bc"))
	if s.Title() != "" {
		t.Errorf("Title() after RIS = %q, want empty", s.Title())
	}
	if got := s.CellAt(0, 0).Ch; got != ' ' {
		t.Errorf("CellAt(0,0) after RIS = %q, want ' '", got)
	}
}

func TestOSC_SetsTitle(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b]2;my window\x07"))
	if got := s.Title(); got != "my window" {
		t.Errorf("Title() = %q, want %q", got, "my window")
	}
}

func TestMalformedUTF8_CountsMetricAndSubstitutes(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte{0xff, 'x'})
	if m := s.Metrics(); m.MalformedUTF8 == 0 {
		t.Error("MalformedUTF8 metric not incremented")
	}
	if got := s.CellAt(0, 0).Ch; got != 0xFFFD {
		t.Errorf("CellAt(0,0) = %q, want U+FFFD", got)
	}
	if got := s.CellAt(0, 1).Ch; got != 'x' {
		t.Errorf("CellAt(0,1) = %q, want 'x'", got)
	}
}
