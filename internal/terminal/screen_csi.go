package terminal

import "strconv"

// printRune stamps one glyph at the cursor and advances it, applying
// the pending-wrap / autowrap rule (spec §4.4 PRINT): a glyph printed
// at the last column sets PendingWrap instead of wrapping immediately,
// so a following glyph wraps to the next row first. Width-2 glyphs
// occupy a leader cell plus one continuation cell.
func (s *Screen) printRune(r rune, width int) {
	if width < 1 {
		width = 1
	}
	if s.cur.charsetG0 == '0' && s.cur.activeSet == 0 && r >= 0x60 && r <= 0x7e {
		r = decLineDrawing(r)
	}

	if s.cur.PendingWrap {
		if s.modes.Autowrap {
			s.cur.Col = 0
			s.lineFeed()
		}
		s.cur.PendingWrap = false
	}

	row := s.grid[s.cur.Row]
	if s.modes.Insert {
		s.insertCells(s.cur.Row, s.cur.Col, width)
		row = s.grid[s.cur.Row]
	}

	cell := Cell{Ch: r, Fg: s.cur.G.Fg, Bg: s.cur.G.Bg, Attrs: s.cur.G.Attrs}
	row[s.cur.Col] = cell
	if width == 2 && s.cur.Col+1 < s.cols {
		row[s.cur.Col+1] = Cell{Ch: 0, Fg: s.cur.G.Fg, Bg: s.cur.G.Bg, Attrs: s.cur.G.Attrs, Continuation: true}
	}

	if s.cur.Col+width >= s.cols {
		s.cur.Col = s.cols - 1
		s.cur.PendingWrap = true
	} else {
		s.cur.Col += width
	}
}

// decLineDrawing maps the subset of ASCII used by the DEC Special
// Graphics character set (ESC ( 0) to their line-drawing glyphs.
func decLineDrawing(r rune) rune {
	switch r {
	case 'q':
		return '─'
	case 'x':
		return '│'
	case 'l':
		return '┌'
	case 'k':
		return '┐'
	case 'm':
		return '└'
	case 'j':
		return '┘'
	case 't':
		return '├'
	case 'u':
		return '┤'
	case 'v':
		return '┴'
	case 'w':
		return '┬'
	case 'n':
		return '┼'
	case 'a':
		return '▒'
	default:
		return r
	}
}

// lineFeed advances the cursor one row, scrolling the region when
// already on its bottom line; rows that scroll off the top of the
// full-screen region (no active scroll-region restriction) migrate
// into scrollback.
func (s *Screen) lineFeed() {
	s.cur.PendingWrap = false
	if s.cur.Row == s.scrollBottom {
		s.scrollUp(1)
		return
	}
	if s.cur.Row < s.rows-1 {
		s.cur.Row++
	}
}

// reverseIndex moves the cursor up one row, scrolling the region down
// when already on its top line.
func (s *Screen) reverseIndex() {
	s.cur.PendingWrap = false
	if s.cur.Row == s.scrollTop {
		s.scrollDown(1)
		return
	}
	if s.cur.Row > 0 {
		s.cur.Row--
	}
}

// scrollUp moves n rows out of the scroll region at the top, pushing
// rows that leave the full-screen region into scrollback, and fills
// the vacated rows at the bottom with blanks.
func (s *Screen) scrollUp(n int) {
	top, bottom := s.scrollTop, s.scrollBottom
	erased := eraseCellFor(s.cur.G)
	for i := 0; i < n; i++ {
		if top == 0 && bottom == s.rows-1 {
			s.scrollback.push(s.grid[top])
		}
		copy(s.grid[top:bottom], s.grid[top+1:bottom+1])
		s.grid[bottom] = make([]Cell, s.cols)
		for c := range s.grid[bottom] {
			s.grid[bottom][c] = erased
		}
	}
}

// scrollDown moves n rows down within the scroll region, discarding
// the bottom n rows and filling the top with blanks.
func (s *Screen) scrollDown(n int) {
	top, bottom := s.scrollTop, s.scrollBottom
	erased := eraseCellFor(s.cur.G)
	for i := 0; i < n; i++ {
		copy(s.grid[top+1:bottom+1], s.grid[top:bottom])
		s.grid[top] = make([]Cell, s.cols)
		for c := range s.grid[top] {
			s.grid[top][c] = erased
		}
	}
}

// horizontalTab advances the cursor to the next tab stop, or the last
// column if none remain.
func (s *Screen) horizontalTab() {
	for c := s.cur.Col + 1; c < s.cols; c++ {
		if s.tabs[c] {
			s.cur.Col = c
			return
		}
	}
	s.cur.Col = s.cols - 1
}

// saveCursor implements DECSC (ESC 7): position, graphic state,
// charset designations, and origin mode.
func (s *Screen) saveCursor() {
	s.saved = &savedState{
		Row: s.cur.Row, Col: s.cur.Col,
		G:         s.cur.G,
		charsetG0: s.cur.charsetG0, charsetG1: s.cur.charsetG1,
		activeSet: s.cur.activeSet,
		origin:    s.modes.Origin,
	}
}

// restoreCursor implements DECRC (ESC 8). With nothing saved yet, the
// cursor homes instead, matching common terminal behavior.
func (s *Screen) restoreCursor() {
	if s.saved == nil {
		s.homeCursor()
		return
	}
	sv := s.saved
	s.cur.Row, s.cur.Col = sv.Row, sv.Col
	s.cur.G = sv.G
	s.cur.charsetG0, s.cur.charsetG1 = sv.charsetG0, sv.charsetG1
	s.cur.activeSet = sv.activeSet
	s.cur.PendingWrap = false
	s.modes.Origin = sv.origin
	s.clampCursor()
}

// csiParams parses the accumulated parameter bytes into ints; omitted
// fields between ';' are 0 so paramOr's default applies uniformly.
func csiParams(buf []byte) []int {
	if len(buf) == 0 {
		return nil
	}
	var out []int
	start := 0
	for i := 0; i <= len(buf); i++ {
		if i == len(buf) || buf[i] == ';' {
			if i == start {
				out = append(out, 0)
			} else {
				n, err := strconv.Atoi(string(buf[start:i]))
				if err != nil {
					n = 0
				}
				out = append(out, n)
			}
			start = i + 1
		}
	}
	return out
}

func paramOr(params []int, idx, def int) int {
	if idx < len(params) && params[idx] != 0 {
		return params[idx]
	}
	return def
}

// dispatchCSI executes one fully-parsed CSI sequence identified by its
// final byte, per the command table in spec §4.4.
func (s *Screen) dispatchCSI(final byte) {
	p := csiParams(s.csiBuf)

	if s.csiPrivate == '?' {
		s.dispatchPrivateCSI(final, p)
		return
	}

	switch final {
	case 'A': // CUU
		s.moveCursor(-paramOr(p, 0, 1), 0)
	case 'B': // CUD
		s.moveCursor(paramOr(p, 0, 1), 0)
	case 'C': // CUF
		s.moveCursor(0, paramOr(p, 0, 1))
	case 'D': // CUB
		s.moveCursor(0, -paramOr(p, 0, 1))
	case 'E': // CNL
		s.moveCursor(paramOr(p, 0, 1), 0)
		s.cur.Col = 0
	case 'F': // CPL
		s.moveCursor(-paramOr(p, 0, 1), 0)
		s.cur.Col = 0
	case 'G', '`': // CHA / HPA
		s.setCursorCol(paramOr(p, 0, 1) - 1)
	case 'd': // VPA
		s.setCursorRow(paramOr(p, 0, 1) - 1)
	case 'H', 'f': // CUP / HVP
		s.setCursorPos(paramOr(p, 0, 1)-1, paramOr(p, 1, 1)-1)
	case 'J': // ED
		s.eraseDisplay(paramOr(p, 0, 0))
	case 'K': // EL
		s.eraseLine(paramOr(p, 0, 0))
	case 'L': // IL
		s.insertLines(paramOr(p, 0, 1))
	case 'M': // DL
		s.deleteLines(paramOr(p, 0, 1))
	case 'P': // DCH
		s.deleteCells(s.cur.Row, s.cur.Col, paramOr(p, 0, 1))
	case '@': // ICH
		s.insertCells(s.cur.Row, s.cur.Col, paramOr(p, 0, 1))
	case 'X': // ECH
		s.eraseCells(s.cur.Row, s.cur.Col, paramOr(p, 0, 1))
	case 'S': // SU
		s.scrollUp(paramOr(p, 0, 1))
	case 'T': // SD
		s.scrollDown(paramOr(p, 0, 1))
	case 'r': // DECSTBM
		s.setScrollRegion(paramOr(p, 0, 1)-1, paramOr(p, 1, s.rows)-1)
	case 'm': // SGR
		s.cur.G.ApplySGR(p)
	case 'h': // SM
		for _, n := range p {
			s.setAnsiMode(n, true)
		}
	case 'l': // RM
		for _, n := range p {
			s.setAnsiMode(n, false)
		}
	case 'n': // DSR
		switch paramOr(p, 0, 0) {
		case 5:
			s.reportReady()
		case 6:
			s.reportCursorPosition()
		}
	case 'c': // DA primary
		if s.csiPrivate == '>' {
			s.reportSecondaryDA()
		} else {
			s.reportPrimaryDA()
		}
	case 'g': // TBC
		switch paramOr(p, 0, 0) {
		case 0:
			delete(s.tabs, s.cur.Col)
		case 3:
			s.tabs = map[int]bool{}
		}
	default:
		s.metrics.UnknownCSIFinal++
	}
}

// dispatchPrivateCSI executes DEC-private (CSI ?) sequences: the SM/RM
// variants. DECALN is ESC # 8 and is handled by escapeHashByte.
func (s *Screen) dispatchPrivateCSI(final byte, p []int) {
	switch final {
	case 'h':
		for _, n := range p {
			s.setPrivateMode(n, true)
		}
	case 'l':
		for _, n := range p {
			s.setPrivateMode(n, false)
		}
	default:
		s.metrics.UnknownCSIFinal++
	}
}

func (s *Screen) moveCursor(dRow, dCol int) {
	s.cur.PendingWrap = false
	s.cur.Row += dRow
	s.cur.Col += dCol
	s.clampCursorToRegion()
}

func (s *Screen) setCursorCol(col int) {
	s.cur.PendingWrap = false
	s.cur.Col = col
	s.clampCursorToRegion()
}

func (s *Screen) setCursorRow(row int) {
	s.cur.PendingWrap = false
	s.cur.Row = row
	s.clampCursorToRegion()
}

// setCursorPos implements CUP/HVP: row/col are 0-indexed here (caller
// already subtracted the 1-indexed parameter), and are relative to the
// scroll region's top when origin mode is active (spec §4.4 CUP).
func (s *Screen) setCursorPos(row, col int) {
	s.cur.PendingWrap = false
	if s.modes.Origin {
		row += s.scrollTop
	}
	s.cur.Row, s.cur.Col = row, col
	s.clampCursorToRegion()
}

func (s *Screen) clampCursorToRegion() {
	if s.cur.Row < 0 {
		s.cur.Row = 0
	}
	if s.cur.Row >= s.rows {
		s.cur.Row = s.rows - 1
	}
	if s.cur.Col < 0 {
		s.cur.Col = 0
	}
	if s.cur.Col >= s.cols {
		s.cur.Col = s.cols - 1
	}
}

// setScrollRegion implements DECSTBM; an invalid region (top >=
// bottom) is ignored per convention, and the cursor homes to the
// region's origin.
func (s *Screen) setScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= s.rows {
		bottom = s.rows - 1
	}
	if top >= bottom {
		return
	}
	s.scrollTop, s.scrollBottom = top, bottom
	s.homeCursor()
}

// eraseDisplay implements ED: 0 cursor-to-end, 1 start-to-cursor, 2
// whole screen, 3 whole screen plus scrollback (spec §4.4 ED mode 3).
func (s *Screen) eraseDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseLine(0)
		for r := s.cur.Row + 1; r < s.rows; r++ {
			s.clearRow(r)
		}
	case 1:
		s.eraseLine(1)
		for r := 0; r < s.cur.Row; r++ {
			s.clearRow(r)
		}
	case 2:
		for r := 0; r < s.rows; r++ {
			s.clearRow(r)
		}
	case 3:
		for r := 0; r < s.rows; r++ {
			s.clearRow(r)
		}
		s.scrollback.clear()
	}
}

func (s *Screen) clearRow(r int) {
	erased := eraseCellFor(s.cur.G)
	row := s.grid[r]
	for c := range row {
		row[c] = erased
	}
}

// eraseLine implements EL: 0 cursor-to-end, 1 start-to-cursor, 2 whole
// line.
func (s *Screen) eraseLine(mode int) {
	erased := eraseCellFor(s.cur.G)
	row := s.grid[s.cur.Row]
	switch mode {
	case 0:
		for c := s.cur.Col; c < s.cols; c++ {
			row[c] = erased
		}
	case 1:
		for c := 0; c <= s.cur.Col && c < s.cols; c++ {
			row[c] = erased
		}
	case 2:
		for c := range row {
			row[c] = erased
		}
	}
}

func (s *Screen) insertLines(n int) {
	if s.cur.Row < s.scrollTop || s.cur.Row > s.scrollBottom {
		return
	}
	top := s.cur.Row
	erased := eraseCellFor(s.cur.G)
	for i := 0; i < n; i++ {
		copy(s.grid[top+1:s.scrollBottom+1], s.grid[top:s.scrollBottom])
		s.grid[top] = make([]Cell, s.cols)
		for c := range s.grid[top] {
			s.grid[top][c] = erased
		}
	}
}

func (s *Screen) deleteLines(n int) {
	if s.cur.Row < s.scrollTop || s.cur.Row > s.scrollBottom {
		return
	}
	top := s.cur.Row
	erased := eraseCellFor(s.cur.G)
	for i := 0; i < n; i++ {
		copy(s.grid[top:s.scrollBottom], s.grid[top+1:s.scrollBottom+1])
		s.grid[s.scrollBottom] = make([]Cell, s.cols)
		for c := range s.grid[s.scrollBottom] {
			s.grid[s.scrollBottom][c] = erased
		}
	}
}

func (s *Screen) insertCells(row, col, n int) {
	r := s.grid[row]
	if col >= len(r) {
		return
	}
	erased := eraseCellFor(s.cur.G)
	for i := 0; i < n; i++ {
		copy(r[col+1:], r[col:len(r)-1])
		r[col] = erased
	}
}

func (s *Screen) deleteCells(row, col, n int) {
	r := s.grid[row]
	if col >= len(r) {
		return
	}
	erased := eraseCellFor(s.cur.G)
	for i := 0; i < n; i++ {
		copy(r[col:len(r)-1], r[col+1:])
		r[len(r)-1] = erased
	}
}

func (s *Screen) eraseCells(row, col, n int) {
	erased := eraseCellFor(s.cur.G)
	r := s.grid[row]
	for c := col; c < col+n && c < len(r); c++ {
		r[c] = erased
	}
}

// decaln implements DECALN (ESC # 8): fills the whole screen with 'E'
// for alignment testing, resets margins, and homes the cursor.
func (s *Screen) decaln() {
	for r := 0; r < s.rows; r++ {
		row := s.grid[r]
		for c := range row {
			row[c] = Cell{Ch: 'E'}
		}
	}
	s.scrollTop, s.scrollBottom = 0, s.rows-1
	s.homeCursor()
}

// dispatchOSC handles OSC 0/2 (window title); other OSC numbers are
// accepted and discarded without error.
func (s *Screen) dispatchOSC() {
	body := s.oscBuf
	sep := -1
	for i, b := range body {
		if b == ';' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return
	}
	switch string(body[:sep]) {
	case "0", "2":
		s.title = string(body[sep+1:])
	}
}
