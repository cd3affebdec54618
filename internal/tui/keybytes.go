package tui

import tea "github.com/charmbracelet/bubbletea"

// ptyKeyBytes maps a fixed-width key press to its literal byte sequence.
var ptyKeyBytes = map[tea.KeyType][]byte{
	tea.KeyEnter:     {'\r'},
	tea.KeyBackspace: {0x7f},
	tea.KeyTab:       {'\t'},
	tea.KeySpace:     {' '},
	tea.KeyEsc:       {0x1b},
	tea.KeyCtrlA:     {0x01},
	tea.KeyCtrlB:     {0x02},
	tea.KeyCtrlC:     {0x03},
	tea.KeyCtrlD:     {0x04},
	tea.KeyCtrlE:     {0x05},
	tea.KeyCtrlF:     {0x06},
	tea.KeyCtrlG:     {0x07},
	tea.KeyCtrlH:     {0x08},
	tea.KeyCtrlJ:     {0x0a},
	tea.KeyCtrlK:     {0x0b},
	tea.KeyCtrlL:     {0x0c},
	tea.KeyCtrlN:     {0x0e},
	tea.KeyCtrlO:     {0x0f},
	tea.KeyCtrlP:     {0x10},
	tea.KeyCtrlQ:     {0x11},
	tea.KeyCtrlR:     {0x12},
	tea.KeyCtrlS:     {0x13},
	tea.KeyCtrlT:     {0x14},
	tea.KeyCtrlU:     {0x15},
	tea.KeyCtrlV:     {0x16},
	tea.KeyCtrlW:     {0x17},
	tea.KeyCtrlX:     {0x18},
	tea.KeyCtrlY:     {0x19},
	tea.KeyCtrlZ:     {0x1a},
}

// ptyCSIBytes maps navigation/editing keys to their ANSI CSI escape
// sequence, the form most shells and full-screen apps expect.
var ptyCSIBytes = map[tea.KeyType][]byte{
	tea.KeyUp:     {0x1b, '[', 'A'},
	tea.KeyDown:   {0x1b, '[', 'B'},
	tea.KeyRight:  {0x1b, '[', 'C'},
	tea.KeyLeft:   {0x1b, '[', 'D'},
	tea.KeyHome:   {0x1b, '[', 'H'},
	tea.KeyEnd:    {0x1b, '[', 'F'},
	tea.KeyDelete: {0x1b, '[', '3', '~'},
	tea.KeyPgUp:   {0x1b, '[', '5', '~'},
	tea.KeyPgDown: {0x1b, '[', '6', '~'},
}

// keyToBytes converts a Bubbletea key message to raw bytes for PTY input.
func keyToBytes(msg tea.KeyMsg) []byte {
	if msg.Type == tea.KeyRunes {
		return []byte(string(msg.Runes))
	}
	if b, ok := ptyKeyBytes[msg.Type]; ok {
		return b
	}
	return ptyCSIBytes[msg.Type]
}
