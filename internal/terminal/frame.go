package terminal

// FrameCell is the read-only tuple exposed for one screen position in
// a Frame (spec §4.7): codepoint plus the resolved colors/attributes.
type FrameCell struct {
	Ch     rune
	Fg, Bg Color
	Attrs  Attr
}

// Frame is an immutable snapshot of the screen: the UI contract named
// in spec §6. Producing one never blocks further mutation of the
// Screen it was taken from — the caller owns every slice it holds.
type Frame struct {
	Rows       [][]FrameCell
	Caret      Caret
	Generation uint64
	Title      string
}

// Snapshot produces a read-only Frame: row-indexed cell tuples, the
// resolved caret (§4.6), and the mutation generation counter. This is
// the sole read path a UI consumer should use.
func (s *Screen) Snapshot() Frame {
	rows := make([][]FrameCell, s.rows)
	for r := 0; r < s.rows; r++ {
		row := make([]FrameCell, s.cols)
		for c := 0; c < s.cols; c++ {
			cell := s.grid[r][c]
			row[c] = FrameCell{Ch: cell.Ch, Fg: cell.Fg, Bg: cell.Bg, Attrs: cell.Attrs}
		}
		rows[r] = row
	}

	return Frame{
		Rows:       rows,
		Caret:      s.resolveCaret(),
		Generation: s.generation,
		Title:      s.title,
	}
}

// plainTextRow returns row r as plain text, one rune per cell
// (continuation cells render as a space), with no trailing trim.
func (s *Screen) plainTextRow(r int) string {
	if r < 0 || r >= s.rows {
		return ""
	}
	runes := make([]rune, s.cols)
	for c := 0; c < s.cols; c++ {
		ch := s.grid[r][c].Ch
		if ch == 0 {
			ch = ' '
		}
		runes[c] = ch
	}
	return string(runes)
}

// PlainTextRow returns the plain-text content of row r, trailing
// spaces trimmed. Useful for pattern matching against recent output.
func (s *Screen) PlainTextRow(r int) string {
	line := s.plainTextRow(r)
	end := len(line)
	for end > 0 && line[end-1] == ' ' {
		end--
	}
	return line[:end]
}
