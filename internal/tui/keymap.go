package tui

import tea "github.com/charmbracelet/bubbletea"

// isKey checks whether a tea.KeyMsg matches a given key type (e.g. tea.KeyCtrlT).
func isKey(msg tea.KeyMsg, k tea.KeyType) bool {
	return msg.Type == k
}

// isRune checks whether a tea.KeyMsg is a specific rune.
func isRune(msg tea.KeyMsg, r rune) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == r
}

// ShortcutHelp returns the full help text displayed when the user presses '?'.
func ShortcutHelp() string {
	return `
╔════════════════════════════════════════════════════════════╗
║                    vtcore – Shortcuts                       ║
╠════════════════════════════════════════════════════════════╣
║                                                            ║
║  Topics                                                    ║
║    Ctrl+T         Create new topic                         ║
║    Ctrl+W         Close current topic                      ║
║    1-9            Switch to topic N (when not typing)      ║
║                                                            ║
║  Sessions                                                  ║
║    Ctrl+N         New session (opens launch dialog)        ║
║    Ctrl+X         Close focused session                    ║
║    Ctrl+Z         Zoom (maximise/restore) focused session  ║
║    ←↑↓→           Navigate between sessions                ║
║    Tab            Cycle focus to next session               ║
║    Ctrl+G         Passthrough mode (all keys to terminal)  ║
║    Alt+Enter      Shift+Enter (multiline input)            ║
║                                                            ║
║  Queue Panel                                                ║
║    Ctrl+B         Toggle queue panel                        ║
║    Ctrl+F         Focus/unfocus queue panel                ║
║    ↑↓             Navigate items (when panel focused)      ║
║    a               Queue a new prompt for this session     ║
║    d               Remove the selected pending prompt       ║
║    Esc             Return focus to sessions                ║
║                                                            ║
║  General                                                   ║
║    ?              Show/hide this help                      ║
║    Ctrl+C (×2)    Quit                                     ║
║                                                            ║
║  Smart Features                                            ║
║    Token/cost tracker shown in footer and session titles   ║
║    Pane border flashes green when a session finishes       ║
║    Pane border flashes yellow when input is needed         ║
║    Theme: set "theme" in ~/.vtcore.yaml                    ║
║      Available: dark, light, dracula, nord, solarized      ║
║                                                            ║
╚════════════════════════════════════════════════════════════╝`
}
