package terminal

// ColorKind tags the variant held by a Color value.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorRGB
)

// Color is a tagged variant: the terminal's default color, a palette
// index (0-255), or a 24-bit RGB triple. Only one of Index/R/G/B is
// meaningful, selected by Kind.
type Color struct {
	Kind  ColorKind
	Index uint8
	R, G, B uint8
}

// DefaultColor is the zero value: the terminal's default foreground
// or background, whichever this Color is used for.
var DefaultColor = Color{Kind: ColorDefault}

// IndexedColor builds a 256-color palette reference.
func IndexedColor(n uint8) Color {
	return Color{Kind: ColorIndexed, Index: n}
}

// RGBColor builds a 24-bit truecolor value.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Attr is a packed set of SGR boolean attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrInvisible
	AttrStrike
)

// Has reports whether all bits in mask are set.
func (a Attr) Has(mask Attr) bool { return a&mask == mask }

// GraphicState is the SGR-controlled part of the cursor: the
// attributes and colors that PRINT stamps onto new cells.
type GraphicState struct {
	Fg, Bg Color
	Attrs  Attr
}

// ApplySGR decodes one CSI `m` parameter list and mutates g in place.
// Missing parameters default to 0 (reset); unknown parameters are
// ignored without error, per spec §4.1.
func (g *GraphicState) ApplySGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*g = GraphicState{}
		case p == 1:
			g.Attrs |= AttrBold
		case p == 2:
			g.Attrs |= AttrFaint
		case p == 3:
			g.Attrs |= AttrItalic
		case p == 4:
			g.Attrs |= AttrUnderline
		case p == 5:
			g.Attrs |= AttrBlink
		case p == 7:
			g.Attrs |= AttrReverse
		case p == 8:
			g.Attrs |= AttrInvisible
		case p == 9:
			g.Attrs |= AttrStrike
		case p == 22:
			g.Attrs &^= AttrBold | AttrFaint
		case p == 23:
			g.Attrs &^= AttrItalic
		case p == 24:
			g.Attrs &^= AttrUnderline
		case p == 25:
			g.Attrs &^= AttrBlink
		case p == 27:
			g.Attrs &^= AttrReverse
		case p == 28:
			g.Attrs &^= AttrInvisible
		case p == 29:
			g.Attrs &^= AttrStrike
		case p >= 30 && p <= 37:
			g.Fg = IndexedColor(uint8(p - 30))
		case p == 38:
			i = applyExtendedColor(params, i, &g.Fg)
		case p == 39:
			g.Fg = DefaultColor
		case p >= 40 && p <= 47:
			g.Bg = IndexedColor(uint8(p - 40))
		case p == 48:
			i = applyExtendedColor(params, i, &g.Bg)
		case p == 49:
			g.Bg = DefaultColor
		case p >= 90 && p <= 97:
			g.Fg = IndexedColor(uint8(p-90) + 8)
		case p >= 100 && p <= 107:
			g.Bg = IndexedColor(uint8(p-100) + 8)
		}
	}
}

// applyExtendedColor parses "38;5;N" / "38;2;R;G;B" (and the 48;...
// background forms) starting at params[i]==38/48. Returns the index of
// the last consumed parameter.
func applyExtendedColor(params []int, i int, dst *Color) int {
	if i+1 >= len(params) {
		return i
	}
	switch params[i+1] {
	case 5:
		if i+2 < len(params) {
			*dst = IndexedColor(uint8(params[i+2]))
			return i + 2
		}
	case 2:
		if i+4 < len(params) {
			*dst = RGBColor(uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))
			return i + 4
		}
	}
	return i + 1
}
