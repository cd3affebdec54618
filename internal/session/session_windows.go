//go:build windows

package session

import (
	"syscall"

	gopty "github.com/aymanbagabas/go-pty"
)

// hidePTYConsole sets CREATE_NO_WINDOW on the process creation flags so
// child processes spawned via ConPTY don't flash a visible console
// window when the host is a GUI or headless process.
func hidePTYConsole(cmd *gopty.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= 0x08000000 // CREATE_NO_WINDOW
}
