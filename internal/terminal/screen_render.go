package terminal

import (
	"fmt"
	"strings"
)

// Render produces a string representation of the entire screen buffer
// with embedded ANSI escape sequences, so colors and attributes
// survive being displayed inside a host terminal. This is a secondary
// read path kept for debugging and for simple consumers that don't
// need the structured Frame; UI code should prefer Snapshot.
func (s *Screen) Render() string {
	return s.renderRegion(0, 0, s.rows-1, s.cols-1)
}

// RenderRegion renders a sub-rectangle of the screen (0-indexed,
// inclusive bounds).
func (s *Screen) RenderRegion(startRow, startCol, endRow, endCol int) string {
	return s.renderRegion(startRow, startCol, endRow, endCol)
}

func (s *Screen) renderRegion(startRow, startCol, endRow, endCol int) string {
	var b strings.Builder
	b.Grow((endRow - startRow + 1) * (endCol - startCol + 16))

	prev := GraphicState{}
	for r := startRow; r <= endRow && r < s.rows; r++ {
		if r > startRow {
			b.WriteByte('\n')
			b.WriteString("\x1b[0m")
			prev = GraphicState{}
		}
		for c := startCol; c <= endCol && c < s.cols; c++ {
			cell := s.grid[r][c]
			g := GraphicState{Fg: cell.Fg, Bg: cell.Bg, Attrs: cell.Attrs}
			if g != prev {
				b.WriteString(sgrSequence(g))
				prev = g
			}
			ch := cell.Ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// PlainText returns the full screen content as plain text, no ANSI.
func (s *Screen) PlainText() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.plainTextRow(r))
	}
	return b.String()
}

// sgrSequence builds the minimal CSI m sequence that reproduces g,
// always starting from a full reset so sequences compose independent
// of render order.
func sgrSequence(g GraphicState) string {
	parts := []string{"0"}
	if g.Attrs.Has(AttrBold) {
		parts = append(parts, "1")
	}
	if g.Attrs.Has(AttrFaint) {
		parts = append(parts, "2")
	}
	if g.Attrs.Has(AttrItalic) {
		parts = append(parts, "3")
	}
	if g.Attrs.Has(AttrUnderline) {
		parts = append(parts, "4")
	}
	if g.Attrs.Has(AttrBlink) {
		parts = append(parts, "5")
	}
	if g.Attrs.Has(AttrReverse) {
		parts = append(parts, "7")
	}
	if g.Attrs.Has(AttrInvisible) {
		parts = append(parts, "8")
	}
	if g.Attrs.Has(AttrStrike) {
		parts = append(parts, "9")
	}
	parts = append(parts, colorSGRParts(g.Fg, true)...)
	parts = append(parts, colorSGRParts(g.Bg, false)...)
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

func colorSGRParts(c Color, fg bool) []string {
	base := 30
	if !fg {
		base = 40
	}
	switch c.Kind {
	case ColorIndexed:
		if c.Index < 8 {
			return []string{fmt.Sprintf("%d", base+int(c.Index))}
		}
		if c.Index < 16 {
			brightBase := base + 60
			return []string{fmt.Sprintf("%d", brightBase+int(c.Index)-8)}
		}
		return []string{fmt.Sprintf("%d", base+8), "5", fmt.Sprintf("%d", c.Index)}
	case ColorRGB:
		return []string{fmt.Sprintf("%d", base+8), "2", fmt.Sprintf("%d", c.R), fmt.Sprintf("%d", c.G), fmt.Sprintf("%d", c.B)}
	default:
		return nil
	}
}
