package ui

// Rect describes a rectangular region on screen hosting one session
// pane (0-indexed).
type Rect struct {
	X, Y          int // top-left corner
	Width, Height int
}

// ComputeGrid lays out n session panes within the given area. When
// focus names a valid pane and the grid is small enough to carry a
// visually distinct "master" slot (n in 2..4), that pane gets a wide
// column and the rest stack beside it — the layout a terminal
// multiplexer's focused session benefits from most. Pass focus < 0 to
// always fall back to the even grid:
//
//	1 pane  → 1×1
//	2 panes → 1×2 (side by side)
//	3 panes → 1×2 top + 1×1 bottom  (or 2 rows)
//	4 panes → 2×2
//	5-6     → 2×3
//	7-9     → 3×3
//	10-12   → 3×4
//
// Each pane gets a Rect. Leftover space is distributed to the last column/row.
func ComputeGrid(n, areaWidth, areaHeight, focus int) []Rect {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Rect{{X: 0, Y: 0, Width: areaWidth, Height: areaHeight}}
	}
	if focus >= 0 && focus < n && n <= 4 {
		return mainStackGrid(n, areaWidth, areaHeight, focus)
	}

	cols, rows := gridDimensions(n)

	rects := make([]Rect, n)
	baseW := areaWidth / cols
	baseH := areaHeight / rows

	idx := 0
	for r := 0; r < rows && idx < n; r++ {
		// How many panes in this row?
		rowPanes := cols
		if r == rows-1 {
			rowPanes = n - idx // last row gets the remainder
		}

		for c := 0; c < rowPanes && idx < n; c++ {
			x := c * baseW
			y := r * baseH
			w := baseW
			h := baseH

			// Give extra width to last column in this row
			if c == rowPanes-1 {
				w = areaWidth - x
			}
			// Give extra height to last row
			if r == rows-1 {
				h = areaHeight - y
			}

			rects[idx] = Rect{X: x, Y: y, Width: w, Height: h}
			idx++
		}
	}
	return rects
}

// mainStackGrid gives the pane at focus roughly 60% of the width,
// stacking the remaining n-1 panes vertically in the rest.
func mainStackGrid(n, areaWidth, areaHeight, focus int) []Rect {
	mainW := areaWidth * 3 / 5
	if mainW < 10 || mainW >= areaWidth {
		mainW = areaWidth / 2
	}
	stackW := areaWidth - mainW
	stackCount := n - 1
	stackH := areaHeight / max(stackCount, 1)

	rects := make([]Rect, n)
	si := 0
	for i := 0; i < n; i++ {
		if i == focus {
			rects[i] = Rect{X: 0, Y: 0, Width: mainW, Height: areaHeight}
			continue
		}
		y := si * stackH
		h := stackH
		if si == stackCount-1 {
			h = areaHeight - y // last stacked pane absorbs remainder
		}
		rects[i] = Rect{X: mainW, Y: y, Width: stackW, Height: h}
		si++
	}
	return rects
}

// gridDimensions returns (cols, rows) for n panes.
func gridDimensions(n int) (int, int) {
	switch {
	case n <= 1:
		return 1, 1
	case n <= 2:
		return 2, 1
	case n <= 4:
		return 2, 2
	case n <= 6:
		return 3, 2
	case n <= 9:
		return 3, 3
	default:
		return 4, 3
	}
}
