package terminal

import "testing"

func TestEmit_NoSinkCountsMetric(t *testing.T) {
	s := NewDefaultScreen()
	s.Feed([]byte("\x1b[6n")) // DSR with no Outbound configured
	if m := s.Metrics(); m.ResponseSinkFull == 0 {
		t.Error("ResponseSinkFull metric not incremented when no sink configured")
	}
}

func TestReportReady(t *testing.T) {
	var out []byte
	s := NewScreen(Options{Outbound: func(b []byte) { out = append(out, b...) }})
	s.Feed([]byte("\x1b[5n"))
	if string(out) != "\x1b[0n" {
		t.Errorf("DSR 5 response = %q, want %q", out, "\x1b[0n")
	}
}

func TestReportSecondaryDA(t *testing.T) {
	var out []byte
	s := NewScreen(Options{Outbound: func(b []byte) { out = append(out, b...) }})
	s.Feed([]byte("\x1b[>c"))
	if string(out) != "\x1b[>1;10;0c" {
		t.Errorf("secondary DA response = %q, want %q", out, "\x1b[>1;10;0c")
	}
}

func TestCustomPrimaryDA(t *testing.T) {
	var out []byte
	s := NewScreen(Options{DAPrimary: []byte("\x1b[?1;2c"), Outbound: func(b []byte) { out = append(out, b...) }})
	s.Feed([]byte("\x1b[c"))
	if string(out) != "\x1b[?1;2c" {
		t.Errorf("primary DA response = %q, want configured override", out)
	}
}
