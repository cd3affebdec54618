package terminal

import "testing"

func TestScrollback_CapEvictsOldest(t *testing.T) {
	sb := newScrollback(2)
	sb.push([]Cell{{Ch: '1'}})
	sb.push([]Cell{{Ch: '2'}})
	sb.push([]Cell{{Ch: '3'}})
	if sb.len() != 2 {
		t.Fatalf("len() = %d, want 2", sb.len())
	}
	if sb.row(0)[0].Ch != '2' {
		t.Errorf("oldest retained row = %q, want '2'", sb.row(0)[0].Ch)
	}
}

func TestScrollback_ZeroCapDisabled(t *testing.T) {
	sb := newScrollback(0)
	sb.push([]Cell{{Ch: 'x'}})
	if sb.len() != 0 {
		t.Errorf("len() = %d, want 0 with cap 0", sb.len())
	}
}

func TestScrollback_SetCapTrims(t *testing.T) {
	sb := newScrollback(5)
	for i := 0; i < 5; i++ {
		sb.push([]Cell{{Ch: rune('a' + i)}})
	}
	sb.setCap(2)
	if sb.len() != 2 {
		t.Fatalf("len() = %d, want 2", sb.len())
	}
	if sb.row(0)[0].Ch != 'd' {
		t.Errorf("row(0) = %q, want 'd'", sb.row(0)[0].Ch)
	}
}

func TestScreen_ScrollbackGrowsOnOverflow(t *testing.T) {
	s := NewScreen(Options{Rows: 2, Cols: 10, ScrollbackCap: 10, Autowrap: true})
	s.Feed([]byte("a\r\nb\r\nc"))
	if s.ScrollbackLen() != 1 {
		t.Fatalf("ScrollbackLen() = %d, want 1", s.ScrollbackLen())
	}
	if got := s.ScrollbackRow(0)[0].Ch; got != 'a' {
		t.Errorf("ScrollbackRow(0)[0] = %q, want 'a'", got)
	}
}
