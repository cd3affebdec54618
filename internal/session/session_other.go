//go:build !windows

package session

import gopty "github.com/aymanbagabas/go-pty"

// hidePTYConsole is a no-op on non-Windows platforms.
func hidePTYConsole(_ *gopty.Cmd) {}
