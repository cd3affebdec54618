package terminal

// Modes holds the named boolean switches described in spec §3 Mode
// Flags, with their defined power-on values.
type Modes struct {
	Insert          bool // IRM, SM/RM 4 (ANSI mode) — off: replace
	Origin          bool // DECOM
	Autowrap        bool // DECAWM — default on
	CursorVisible   bool // DECTCEM — default on
	AppKeypad       bool // DECKPAM/DECKPNM
	AppCursorKeys   bool // DECCKM
	BracketedPaste  bool // 2004
	MouseTracking   int  // 0 off, else 1000/1002/1006 — tracked, not acted on
	KittyKeyboard   bool
}

func defaultModes(autowrap bool) Modes {
	return Modes{
		Autowrap:      autowrap,
		CursorVisible: true,
	}
}

// setPrivateMode applies a DEC private mode (CSI ? Pm h/l) SET(true)/RESET(false).
// Unknown modes are ignored without error per spec §4.4 SM/RM.
func (s *Screen) setPrivateMode(n int, set bool) {
	switch n {
	case 1:
		s.modes.AppCursorKeys = set
	case 7:
		s.modes.Autowrap = set
	case 6:
		s.modes.Origin = set
		s.homeCursor()
	case 25:
		s.modes.CursorVisible = set
	case 1000, 1002, 1006:
		if set {
			s.modes.MouseTracking = n
		} else if s.modes.MouseTracking == n {
			s.modes.MouseTracking = 0
		}
	case 2004:
		s.modes.BracketedPaste = set
	case 1049:
		s.setAltScreen(set)
	default:
		s.metrics.UnknownMode++
	}
}

// setAnsiMode applies a non-private mode (CSI Pm h/l).
func (s *Screen) setAnsiMode(n int, set bool) {
	switch n {
	case 4:
		s.modes.Insert = set
	default:
		s.metrics.UnknownMode++
	}
}
