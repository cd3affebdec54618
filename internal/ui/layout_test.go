package ui

import "testing"

func TestComputeGrid_SinglePaneFillsArea(t *testing.T) {
	rects := ComputeGrid(1, 100, 40, 0)
	if len(rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(rects))
	}
	if rects[0].Width != 100 || rects[0].Height != 40 {
		t.Errorf("expected full-area rect, got %+v", rects[0])
	}
}

func TestComputeGrid_NoFocusFallsBackToEvenGrid(t *testing.T) {
	rects := ComputeGrid(4, 100, 40, -1)
	if len(rects) != 4 {
		t.Fatalf("expected 4 rects, got %d", len(rects))
	}
	for _, r := range rects {
		if r.Width <= 0 || r.Height <= 0 {
			t.Errorf("expected positive dimensions, got %+v", r)
		}
	}
}

func TestComputeGrid_FocusGivesMasterPaneExtraWidth(t *testing.T) {
	rects := ComputeGrid(3, 100, 30, 1)
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	master := rects[1]
	if master.Height != 30 {
		t.Errorf("master pane should span full height, got %d", master.Height)
	}
	for i, r := range rects {
		if i == 1 {
			continue
		}
		if r.Width >= master.Width {
			t.Errorf("stacked pane %d (width %d) should be narrower than master (width %d)", i, r.Width, master.Width)
		}
	}
}

func TestComputeGrid_FocusIgnoredForLargeGrids(t *testing.T) {
	withFocus := ComputeGrid(6, 120, 60, 2)
	withoutFocus := ComputeGrid(6, 120, 60, -1)
	if len(withFocus) != len(withoutFocus) {
		t.Fatalf("expected same pane count regardless of focus")
	}
	for i := range withFocus {
		if withFocus[i] != withoutFocus[i] {
			t.Errorf("rect %d differs with focus set: %+v vs %+v", i, withFocus[i], withoutFocus[i])
		}
	}
}

func TestComputeGrid_PartitionsCoverWholeArea(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 7, 10} {
		rects := ComputeGrid(n, 90, 45, -1)
		if len(rects) != n {
			t.Fatalf("n=%d: expected %d rects, got %d", n, n, len(rects))
		}
		var area int
		for _, r := range rects {
			area += r.Width * r.Height
		}
		if area != 90*45 {
			t.Errorf("n=%d: rects cover area %d, want %d", n, area, 90*45)
		}
	}
}
