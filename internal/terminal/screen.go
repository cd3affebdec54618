// Package terminal implements a byte-driven VT100/xterm-class terminal
// emulation core: an escape-sequence parser, a styled character-cell
// grid with scrollback, and a visual-cursor resolver that reconciles
// the standards-conformant cursor with the reverse-video caret modern
// TUI clients paint instead of positioning explicitly.
//
// The core performs no I/O of its own. Bytes are pushed in with Feed;
// probe responses (DSR, DA) are pushed out through the OutboundSink
// supplied at construction. Screen takes no locks of its own (spec §5):
// it is a plain value type meant to be owned and serialized by a single
// caller. A caller that shares a Screen across goroutines — reading a
// Snapshot while another goroutine feeds it fresh PTY bytes, say — must
// provide its own synchronization; internal/session.Session does
// exactly this for the owner/reader split described in spec §5.
package terminal

import (
	"errors"
	"fmt"
)

// parserState is the VT500-series parser automaton state (spec §4.3).
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateCSIIntermediate
	stateCSIIgnore
	stateEscapeHash
	stateOSCString
	stateDCSString
	stateStringIgnore // SOS/PM/APC — accumulated and discarded
)

// cursorState is everything that moves with the cursor (spec §3).
type cursorState struct {
	Row, Col    int
	PendingWrap bool
	G           GraphicState
	charsetG0   byte // 'B' ascii, '0' DEC line drawing
	charsetG1   byte
	activeSet   int // 0 or 1, selects G0/G1
}

// savedState is the DECSC/DECRC snapshot (spec §3 Saved State); one
// level deep, overwritten on a repeated save.
type savedState struct {
	Row, Col  int
	G         GraphicState
	charsetG0 byte
	charsetG1 byte
	activeSet int
	origin    bool
}

// altScreenState preserves the primary screen's grid, cursor, and
// scroll region while the alternate screen buffer (DEC 1049) is active.
type altScreenState struct {
	grid                    [][]Cell
	cur                     cursorState
	scrollTop, scrollBottom int
}

// Options configures a new Screen (spec §6 Configuration table).
type Options struct {
	Rows, Cols        int
	ScrollbackCap     int
	Autowrap          bool
	PromptMarkers     []string
	VisualCursorRules []CaretRule
	Outbound          OutboundSink
	DAPrimary         []byte
}

func (o Options) withDefaults() Options {
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.Cols <= 0 {
		o.Cols = 80
	}
	if o.ScrollbackCap == 0 {
		o.ScrollbackCap = 1000
	}
	if o.DAPrimary == nil {
		o.DAPrimary = defaultPrimaryDA
	}
	return o
}

// Screen is the terminal emulation core: grid, cursor, scroll region,
// tab stops, mode flags, and the byte-driven parser that feeds them.
type Screen struct {
	rows, cols int
	grid       [][]Cell

	cur   cursorState
	saved *savedState
	modes Modes

	tabs map[int]bool

	scrollTop, scrollBottom int // 0-indexed, inclusive

	scrollback    *scrollback
	scrollbackCap int

	alt *altScreenState

	title string

	state            parserState
	csiBuf           []byte
	csiPrivate       byte
	oscBuf           []byte
	pendingST        bool // last byte was ESC while inside a string (OSC/DCS/SOS/PM/APC), awaiting '\' to close it
	escCharsetTarget int  // 0 or 1, which G-set ESC ( / ESC ) is designating
	utf8Buf          [4]byte
	utf8Len          int
	utf8Got          int

	outbound      OutboundSink
	daPrimary     []byte
	caretRules    []CaretRule
	promptMarkers []string

	metrics    Metrics
	generation uint64
}

// NewScreen allocates a Screen per opts, applying the spec §6 default
// for any zero-valued field except Autowrap, which is taken literally
// so callers can construct an autowrap-off screen explicitly.
func NewScreen(opts Options) *Screen {
	opts = opts.withDefaults()
	s := &Screen{
		rows:          opts.Rows,
		cols:          opts.Cols,
		scrollback:    newScrollback(opts.ScrollbackCap),
		scrollbackCap: opts.ScrollbackCap,
		modes:         defaultModes(opts.Autowrap),
		outbound:      opts.Outbound,
		daPrimary:     opts.DAPrimary,
		caretRules:    opts.VisualCursorRules,
		promptMarkers: opts.PromptMarkers,
	}
	s.grid = makeGrid(s.rows, s.cols)
	s.scrollTop, s.scrollBottom = 0, s.rows-1
	s.tabs = defaultTabStops(s.cols)
	s.cur.charsetG0, s.cur.charsetG1 = 'B', 'B'
	return s
}

// NewDefaultScreen builds a 24x80 screen with autowrap on and every
// caret rule enabled — the configuration an interactive session wants
// absent any override.
func NewDefaultScreen() *Screen {
	return NewScreen(Options{Autowrap: true})
}

func makeGrid(rows, cols int) [][]Cell {
	g := make([][]Cell, rows)
	for r := range g {
		g[r] = make([]Cell, cols)
		for c := range g[r] {
			g[r][c] = blankCell
		}
	}
	return g
}

func defaultTabStops(cols int) map[int]bool {
	t := make(map[int]bool)
	for c := 8; c < cols; c += 8 {
		t[c] = true
	}
	return t
}

// Rows returns the current row count.
func (s *Screen) Rows() int { return s.rows }

// Cols returns the current column count.
func (s *Screen) Cols() int { return s.cols }

// Cursor returns the VT cursor's (row, col), 0-indexed.
func (s *Screen) Cursor() (int, int) {
	return s.cur.Row, s.cur.Col
}

// CursorVisible reports the DECTCEM mode flag.
func (s *Screen) CursorVisible() bool {
	return s.modes.CursorVisible
}

// CellAt returns the cell at (row, col), or a blank cell if out of
// bounds.
func (s *Screen) CellAt(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return blankCell
	}
	return s.grid[row][col]
}

// Title returns the window title set by OSC 0/2.
func (s *Screen) Title() string {
	return s.title
}

// ScrollbackLen returns the number of retired rows currently held.
func (s *Screen) ScrollbackLen() int {
	return s.scrollback.len()
}

// ScrollbackRow returns scrollback row i (0 = oldest), or nil if out
// of range.
func (s *Screen) ScrollbackRow(i int) []Cell {
	return s.scrollback.row(i)
}

// SetScrollbackCap adjusts the retained scrollback depth; 0 disables
// scrollback and discards any retained rows (spec §6).
func (s *Screen) SetScrollbackCap(n int) {
	s.scrollbackCap = n
	s.scrollback.setCap(n)
}

// ErrResizeTooSmall is returned by Resize when either dimension is < 1
// (spec §7 ResizeTooSmall: rejected, no change).
var ErrResizeTooSmall = errors.New("terminal: resize dimensions must be >= 1")

// Resize reallocates the grid to rows x cols (spec §5): a shrinking
// width clips trailing cells, a growing width pads with blanks; a
// shrinking height scrolls the rows that fall off the top into
// scrollback before discarding them, a growing height pads with blank
// rows at the bottom. The cursor is clamped to the new bounds and the
// scroll region resets to the full screen.
func (s *Screen) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		s.metrics.ResizeRejected++
		return ErrResizeTooSmall
	}

	if rows < s.rows {
		for r := 0; r < s.rows-rows; r++ {
			s.scrollback.push(s.grid[r])
		}
		s.grid = s.grid[s.rows-rows:]
	}

	next := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = blankCell
		}
		if r < len(s.grid) {
			n := cols
			if len(s.grid[r]) < n {
				n = len(s.grid[r])
			}
			copy(row[:n], s.grid[r][:n])
		}
		next[r] = row
	}

	s.grid = next
	s.rows, s.cols = rows, cols
	s.scrollTop, s.scrollBottom = 0, rows-1
	s.tabs = defaultTabStops(cols)
	s.clampCursor()
	s.bumpGeneration()
	return nil
}

func (s *Screen) clampCursor() {
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

func (s *Screen) bumpGeneration() { s.generation++ }

// Feed processes an arbitrary-size byte slice through the parser.
// Chunking never affects the result (spec §8): feeding one byte at a
// time or the whole buffer at once yields identical screen state.
func (s *Screen) Feed(p []byte) {
	for _, b := range p {
		s.processByte(b)
	}
	s.bumpGeneration()
}

// homeCursor moves the cursor to (0,0), biased to the scroll-region
// top when origin mode is active (DECOM).
func (s *Screen) homeCursor() {
	s.cur.Row = 0
	s.cur.Col = 0
	s.cur.PendingWrap = false
	if s.modes.Origin {
		s.cur.Row = s.scrollTop
	}
}

func (s *Screen) setAltScreen(enter bool) {
	if enter {
		if s.alt != nil {
			return
		}
		s.alt = &altScreenState{grid: s.grid, cur: s.cur, scrollTop: s.scrollTop, scrollBottom: s.scrollBottom}
		s.grid = makeGrid(s.rows, s.cols)
		s.homeCursor()
		return
	}
	if s.alt == nil {
		return
	}
	s.grid = s.alt.grid
	s.cur = s.alt.cur
	s.scrollTop, s.scrollBottom = s.alt.scrollTop, s.alt.scrollBottom
	s.alt = nil
}

func (s *Screen) fullReset() {
	s.grid = makeGrid(s.rows, s.cols)
	s.cur = cursorState{charsetG0: 'B', charsetG1: 'B'}
	s.saved = nil
	s.modes = defaultModes(true)
	s.tabs = defaultTabStops(s.cols)
	s.scrollTop, s.scrollBottom = 0, s.rows-1
	s.title = ""
	s.alt = nil
}

// String renders the bare debugging identity of the screen; UI
// consumers should use Snapshot instead.
func (s *Screen) String() string {
	return fmt.Sprintf("Screen(%dx%d cursor=(%d,%d))", s.rows, s.cols, s.cur.Row, s.cur.Col)
}
