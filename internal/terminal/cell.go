package terminal

// Cell is one display position on the grid: a grapheme plus the
// graphic state it was painted with. Continuation carries the leader
// cell's attributes with an empty grapheme, per spec §3 Cell invariant.
type Cell struct {
	Ch           rune
	Fg, Bg       Color
	Attrs        Attr
	Continuation bool
}

// blankCell is the power-on / erased cell value: a space with default
// colors and no attributes.
var blankCell = Cell{Ch: ' '}

// eraseCellFor returns the cell written by an erase operation under
// the given graphic state. Erase preserves attributes but reverts
// color to default (spec §4.2): both foreground and background of the
// blank are the default colors, whatever SGR colors are active.
func eraseCellFor(g GraphicState) Cell {
	return Cell{Ch: ' ', Attrs: g.Attrs}
}
