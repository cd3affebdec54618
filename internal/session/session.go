// Package session manages PTY-backed shell/CLI processes and wires
// their raw byte stream into a terminal.Screen. It owns all process
// and I/O lifecycle so the terminal package itself stays free of OS
// calls.
//
// Session is cross-platform: it uses github.com/aymanbagabas/go-pty,
// which wraps Unix PTYs and Windows ConPTY behind one interface, so
// the same binary drives a shell on Linux, macOS, and Windows.
package session

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	gopty "github.com/aymanbagabas/go-pty"

	"github.com/vtcore/vtcore/internal/terminal"
)

// Status represents the current lifecycle state of a Session.
type Status int

const (
	StatusRunning Status = iota
	StatusExited
	StatusError
)

// Options configures a new Session's screen. Rows/Cols default to
// 24x80; PromptMarkers and VisualCursorRules feed straight through to
// the underlying terminal.Screen (spec §4.6).
type Options struct {
	Rows, Cols        int
	ScrollbackCap     int
	PromptMarkers     []string
	VisualCursorRules []terminal.CaretRule
}

// Session wraps a PTY-backed process and the virtual screen it feeds.
// It manages the full lifecycle: start, read loop, resize, close.
type Session struct {
	mu sync.Mutex

	ID     int
	Screen *terminal.Screen
	Status Status
	Title  string

	p   gopty.Pty
	cmd *gopty.Cmd

	done chan struct{}

	// OutputCh receives a non-blocking signal each time new PTY output
	// lands on Screen, so a UI loop can select on it to know when to
	// pull a fresh Snapshot.
	OutputCh chan struct{}

	ExitCode int

	LastOutputAt time.Time

	Activity ActivityState
	Tokens   TokenInfo
}

// New creates a Session with the given id and screen options but does
// not spawn any process yet; call Start to do that. Probe responses
// generated by the screen (DSR, DA) are written straight back into the
// PTY, completing the round-trip a real terminal would make.
func New(id int, opts Options) *Session {
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	s := &Session{
		ID:       id,
		Status:   StatusRunning,
		OutputCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.Screen = terminal.NewScreen(terminal.Options{
		Rows:              opts.Rows,
		Cols:              opts.Cols,
		Autowrap:          true,
		ScrollbackCap:     opts.ScrollbackCap,
		PromptMarkers:     opts.PromptMarkers,
		VisualCursorRules: opts.VisualCursorRules,
		Outbound:          s.writeProbeResponse,
	})
	return s
}

// writeProbeResponse runs synchronously inside Screen.Feed, whose caller
// (readLoop) already holds s.mu, so it reads s.p without locking again.
func (s *Session) writeProbeResponse(b []byte) {
	pty := s.p
	if pty != nil {
		_, _ = pty.Write(b)
	}
}

// Start launches argv inside a new PTY. An empty argv falls back to
// the user's default shell. dir is the working directory; env holds
// additional environment variables appended after the inherited ones.
func (s *Session) Start(argv []string, dir string, env []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(argv) == 0 {
		argv = defaultShell()
	}

	fullEnv := append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
	)
	fullEnv = append(fullEnv, env...)

	rows, cols := s.Screen.Rows(), s.Screen.Cols()

	p, err := gopty.New()
	if err != nil {
		s.Status = StatusError
		return err
	}
	if err := p.Resize(cols, rows); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = fullEnv
	hidePTYConsole(cmd)

	if err := cmd.Start(); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	s.p = p
	s.cmd = cmd

	go s.readLoop()
	go s.waitLoop()

	return nil
}

// readLoop continuously reads from the PTY and feeds the screen. The
// terminal core takes no locks of its own (spec §5), so Session holds
// s.mu for the whole feed-and-update step to serialize against
// concurrent readers such as PlainText, Dimensions, and RenderRegion
// below.
func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.Screen.Feed(buf[:n])
			if title := s.Screen.Title(); title != "" {
				s.Title = title
			}
			s.LastOutputAt = time.Now()
			s.Activity = ActivityActive
			s.mu.Unlock()

			select {
			case s.OutputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			break
		}
	}
}

func (s *Session) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil {
		if s.cmd.ProcessState != nil {
			s.ExitCode = s.cmd.ProcessState.ExitCode()
		} else {
			s.ExitCode = 1
		}
	}
	s.Status = StatusExited
	s.mu.Unlock()
	close(s.done)
}

// Write sends raw bytes to the PTY — keyboard input from the user.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// Resize updates both the Screen and the PTY's reported window size.
func (s *Session) Resize(rows, cols int) error {
	s.mu.Lock()
	err := s.Screen.Resize(rows, cols)
	pty := s.p
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if pty != nil {
		_ = pty.Resize(cols, rows)
	}
	return nil
}

// PlainText returns the current screen contents as plain text. Safe to
// call concurrently with the session's read loop.
func (s *Session) PlainText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Screen.PlainText()
}

// Dimensions returns the screen's current row and column count. Safe
// to call concurrently with the session's read loop.
func (s *Session) Dimensions() (rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Screen.Rows(), s.Screen.Cols()
}

// RenderRegion renders a sub-rectangle of the screen with embedded ANSI
// sequences. Safe to call concurrently with the session's read loop.
func (s *Session) RenderRegion(startRow, startCol, endRow, endCol int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Screen.RenderRegion(startRow, startCol, endRow, endCol)
}

// Close terminates the session: kills the process and closes the PTY,
// then blocks until waitLoop has observed the exit.
func (s *Session) Close() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	if cmd != nil {
		<-s.done
	}
}

// Done returns a channel closed when the process exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// IsRunning reports whether the process is still alive.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status == StatusRunning
}

// EnableKittyKeyboard sends the kitty keyboard protocol enable
// sequence (CSI > 1 u) so the child process reports Shift+Enter and
// other modified keys as distinct CSI u sequences.
func (s *Session) EnableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_, _ = pty.Write([]byte("\x1b[>1u"))
	}
}

// DisableKittyKeyboard pops the kitty keyboard protocol flags (CSI < 1 u).
func (s *Session) DisableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_, _ = pty.Write([]byte("\x1b[<1u"))
	}
}

func defaultShell() []string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return []string{comspec}
		}
		return []string{"cmd.exe"}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return []string{shell}
	}
	return []string{"/bin/bash"}
}
