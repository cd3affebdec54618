package session

import (
	"testing"
	"time"
)

func TestNew_DefaultsDimensions(t *testing.T) {
	s := New(1, Options{})
	if s.Screen.Rows() != 24 || s.Screen.Cols() != 80 {
		t.Errorf("Screen dims = %dx%d, want 24x80", s.Screen.Rows(), s.Screen.Cols())
	}
	if s.Status != StatusRunning {
		t.Errorf("Status = %v, want StatusRunning (pre-Start)", s.Status)
	}
}

func TestStartAndClose_EchoCommand(t *testing.T) {
	s := New(1, Options{Rows: 10, Cols: 40})
	if err := s.Start([]string{"/bin/echo", "hello"}, "", nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for echo to exit")
	}
	if got := s.Screen.PlainTextRow(0); got != "hello" {
		t.Errorf("PlainTextRow(0) = %q, want %q", got, "hello")
	}
}

func TestDetectActivity_IdleWithoutOutput(t *testing.T) {
	s := New(1, Options{})
	if got := s.DetectActivity(); got != ActivityIdle {
		t.Errorf("DetectActivity() = %v, want ActivityIdle before any output", got)
	}
}

func TestClassifyScreenState_PromptMeansDone(t *testing.T) {
	s := New(1, Options{Rows: 5, Cols: 40})
	s.Screen.Feed([]byte("user@host:~$ "))
	if got := s.classifyScreenState(); got != ActivityDone {
		t.Errorf("classifyScreenState() = %v, want ActivityDone", got)
	}
}

func TestClassifyScreenState_ConfirmationPrompt(t *testing.T) {
	s := New(1, Options{Rows: 5, Cols: 40})
	s.Screen.Feed([]byte("Overwrite file? [y/N] "))
	if got := s.classifyScreenState(); got != ActivityNeedsInput {
		t.Errorf("classifyScreenState() = %v, want ActivityNeedsInput", got)
	}
}

func TestParseTokenCount(t *testing.T) {
	cases := map[string]int{"15.2k": 15200, "3800": 3800, "2K": 2000}
	for in, want := range cases {
		if got := parseTokenCount(in); got != want {
			t.Errorf("parseTokenCount(%q) = %d, want %d", in, got, want)
		}
	}
}
