package terminal

import "testing"

func TestCUP_MovesCursor(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[5;10H"))
	row, col := s.Cursor()
	if row != 4 || col != 9 {
		t.Errorf("Cursor() = (%d,%d), want (4,9)", row, col)
	}
}

func TestCUP_DefaultsToHome(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[5;10H\x1b[H"))
	row, col := s.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("Cursor() = (%d,%d), want (0,0)", row, col)
	}
}

func TestCursorMovement_ClampsToBounds(t *testing.T) {
	s := NewScreen(Options{Rows: 5, Cols: 5})
	s.Feed([]byte("\x1b[100;100H"))
	row, col := s.Cursor()
	if row != 4 || col != 4 {
		t.Errorf("Cursor() = (%d,%d), want clamped to (4,4)", row, col)
	}
	s.Feed([]byte("\x1b[100A\x1b[100D"))
	row, col = s.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("Cursor() after overshoot = (%d,%d), want (0,0)", row, col)
	}
}

func TestSGR_ColorAndReset(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[31;1mhi\x1b[0m!"))
	cell := s.CellAt(0, 0)
	if cell.Fg != IndexedColor(1) {
		t.Errorf("Fg = %+v, want IndexedColor(1)", cell.Fg)
	}
	if !cell.Attrs.Has(AttrBold) {
		t.Error("expected AttrBold set")
	}
	reset := s.CellAt(0, 2)
	if reset.Fg != DefaultColor || reset.Attrs != 0 {
		t.Errorf("post-reset cell = %+v, want default", reset)
	}
}

func TestSGR_TruecolorAndIndexed(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[38;2;10;20;30mA\x1b[48;5;200mB"))
	a := s.CellAt(0, 0)
	if a.Fg != RGBColor(10, 20, 30) {
		t.Errorf("Fg = %+v, want RGB(10,20,30)", a.Fg)
	}
	b := s.CellAt(0, 1)
	if b.Bg != IndexedColor(200) {
		t.Errorf("Bg = %+v, want IndexedColor(200)", b.Bg)
	}
	if b.Fg != RGBColor(10, 20, 30) {
		t.Errorf("Fg on second cell = %+v, want carried-over RGB(10,20,30)", b.Fg)
	}
}

func TestED_Mode2ClearsScreenKeepsCursor(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("hello\x1b[3;3H\x1b[2J"))
	row, col := s.Cursor()
	if row != 2 || col != 2 {
		t.Errorf("Cursor() = (%d,%d), want unchanged (2,2)", row, col)
	}
	if got := s.CellAt(0, 0).Ch; got != ' ' {
		t.Errorf("CellAt(0,0) = %q, want blank", got)
	}
}

func TestED_Mode3ClearsScrollback(t *testing.T) {
	s := NewScreen(Options{Rows: 2, Cols: 10, Autowrap: true})
	s.Feed([]byte("one\r\ntwo\r\nthree"))
	if s.ScrollbackLen() == 0 {
		t.Fatal("expected scrollback to have content before ED 3")
	}
	s.Feed([]byte("\x1b[3J"))
	if s.ScrollbackLen() != 0 {
		t.Errorf("ScrollbackLen() after ED 3 = %d, want 0", s.ScrollbackLen())
	}
}

func TestEL_ModesClearCorrectSpan(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("abcdefgh\r\x1b[3C\x1b[K"))
	if got := s.CellAt(0, 3).Ch; got != ' ' {
		t.Errorf("CellAt(0,3) after EL0 = %q, want blank", got)
	}
	if got := s.CellAt(0, 0).Ch; got != 'a' {
		t.Errorf("CellAt(0,0) after EL0 = %q, want 'a'", got)
	}
}

func TestDECSTBM_RestrictsScrollRegion(t *testing.T) {
	s := NewScreen(Options{Rows: 5, Cols: 10, Autowrap: true})
	s.Feed([]byte("\x1b[2;4r"))
	if s.scrollTop != 1 || s.scrollBottom != 3 {
		t.Errorf("scroll region = (%d,%d), want (1,3)", s.scrollTop, s.scrollBottom)
	}
}

func TestDECSCDECRC_RoundTrip(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[10;20H\x1b[31m\x1b7\x1b[1;1H\x1b[0m\x1b8"))
	row, col := s.Cursor()
	if row != 9 || col != 19 {
		t.Errorf("Cursor() after DECRC = (%d,%d), want (9,19)", row, col)
	}
}

func TestDSR_ReportsCursorPosition(t *testing.T) {
	var out []byte
	s := NewScreen(Options{Rows: 24, Cols: 80, Autowrap: true, Outbound: func(b []byte) { out = append(out, b...) }})
	s.Feed([]byte("\x1b[5;5H\x1b[6n"))
	want := "\x1b[5;5R"
	if string(out) != want {
		t.Errorf("DSR response = %q, want %q", out, want)
	}
}

func TestDA_PrimaryDefaultsToVT102(t *testing.T) {
	var out []byte
	s := NewScreen(Options{Rows: 24, Cols: 80, Outbound: func(b []byte) { out = append(out, b...) }})
	s.Feed([]byte("\x1b[c"))
	if string(out) != "\x1b[?6c" {
		t.Errorf("DA response = %q, want %q", out, "\x1b[?6c")
	}
}

func TestAltScreen_RestoresPrimaryContent(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("primary content"))
	s.Feed([]byte("\x1b[?1049h"))
	s.Feed([]byte("alt content"))
	if got := s.CellAt(0, 0).Ch; got != 'a' {
		t.Errorf("CellAt(0,0) in alt screen = %q, want 'a'", got)
	}
	s.Feed([]byte("\x1b[?1049l"))
	if got := s.CellAt(0, 0).Ch; got != 'p' {
		t.Errorf("CellAt(0,0) after leaving alt screen = %q, want 'p'", got)
	}
}

func TestUnknownCSIFinal_CountsMetricWithoutMutating(t *testing.T) {
	s := NewDefaultScreen()
	before := s.CellAt(0, 0)
	s.Feed([]byte("\x1b[5y"))
	if m := s.Metrics(); m.UnknownCSIFinal == 0 {
		t.Error("UnknownCSIFinal metric not incremented")
	}
	if s.CellAt(0, 0) != before {
		t.Error("unknown CSI final mutated the grid")
	}
}

func TestUnknownPrivateMode_CountsMetric(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[?9999h"))
	if m := s.Metrics(); m.UnknownMode == 0 {
		t.Error("UnknownMode metric not incremented")
	}
}

func TestDECALN_FillsScreenWithE(t *testing.T) {
	s := NewScreen(Options{Rows: 2, Cols: 3})
	s.Feed([]byte("\x1b#8"))
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if got := s.CellAt(r, c).Ch; got != 'E' {
				t.Errorf("CellAt(%d,%d) = %q, want 'E'", r, c, got)
			}
		}
	}
}
