package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vtcore/vtcore/internal/config"
)

// LaunchChoice describes what the user selected in the launch dialog.
type LaunchChoice struct {
	Type LaunchType
	Argv []string
}

// LaunchType enumerates the kinds of processes the dialog can start.
type LaunchType int

const (
	LaunchShell   LaunchType = iota // plain shell
	LaunchCommand                   // a custom command line typed by the user
	LaunchCancel                    // user cancelled
)

// DialogState describes the current step in the launch dialog flow.
type DialogState int

const (
	DialogStepMode    DialogState = iota // choose Shell / Custom command
	DialogStepCommand                    // type the custom command line
)

var dialogModeOptions = []string{
	"Shell              (default shell)",
	"Custom command     (type a command line)",
}

// Dialog is the modal launch dialog that appears when creating a new
// session.
type Dialog struct {
	Visible bool
	Step    DialogState
	Options []string
	Cursor  int
	Config  config.Config
	Choice  LaunchChoice

	// CommandInput accumulates the typed command line during DialogStepCommand.
	CommandInput string
}

// NewDialog creates a dialog pre-populated with config.
func NewDialog(cfg config.Config) Dialog {
	return Dialog{
		Config:  cfg,
		Step:    DialogStepMode,
		Options: dialogModeOptions,
	}
}

// Open makes the dialog visible and resets state.
func (d *Dialog) Open() {
	d.Visible = true
	d.Step = DialogStepMode
	d.Cursor = 0
	d.Options = dialogModeOptions
	d.Choice = LaunchChoice{}
	d.CommandInput = ""
}

// Close hides the dialog.
func (d *Dialog) Close() {
	d.Visible = false
}

// MoveUp moves the cursor up in the current option list.
func (d *Dialog) MoveUp() {
	if d.Cursor > 0 {
		d.Cursor--
	}
}

// MoveDown moves the cursor down in the current option list.
func (d *Dialog) MoveDown() {
	if d.Cursor < len(d.Options)-1 {
		d.Cursor++
	}
}

// TypeRune appends a rune to the command input during DialogStepCommand.
func (d *Dialog) TypeRune(r rune) {
	if d.Step == DialogStepCommand {
		d.CommandInput += string(r)
	}
}

// Backspace removes the last rune of the command input.
func (d *Dialog) Backspace() {
	if d.Step == DialogStepCommand && len(d.CommandInput) > 0 {
		d.CommandInput = d.CommandInput[:len(d.CommandInput)-1]
	}
}

// Select confirms the current cursor choice.
// Returns true when the dialog flow is complete (Choice is populated).
func (d *Dialog) Select() bool {
	switch d.Step {
	case DialogStepMode:
		switch d.Cursor {
		case 0: // Shell
			d.Choice = LaunchChoice{Type: LaunchShell}
			d.Close()
			return true
		case 1: // Custom command
			d.Step = DialogStepCommand
			d.CommandInput = ""
			return false
		}
	case DialogStepCommand:
		argv := strings.Fields(d.CommandInput)
		if len(argv) == 0 {
			return false
		}
		d.Choice = LaunchChoice{Type: LaunchCommand, Argv: argv}
		d.Close()
		return true
	}
	return false
}

// Render draws the dialog box.
func (d *Dialog) Render(screenW, screenH int) string {
	if !d.Visible {
		return ""
	}

	var b strings.Builder

	switch d.Step {
	case DialogStepMode:
		b.WriteString(DialogTitle.Render("New Session"))
		b.WriteByte('\n')
		b.WriteString(DialogHint.Render("Choose what to launch:"))
		b.WriteByte('\n')
		b.WriteByte('\n')
		for i, opt := range d.Options {
			prefix := "  "
			style := DialogOption
			if i == d.Cursor {
				prefix = "▸ "
				style = DialogOptionSelected
			}
			b.WriteString(style.Render(prefix + opt))
			b.WriteByte('\n')
		}
	case DialogStepCommand:
		b.WriteString(DialogTitle.Render("Command"))
		b.WriteByte('\n')
		b.WriteString(DialogHint.Render("Type a command line and press Enter:"))
		b.WriteByte('\n')
		b.WriteByte('\n')
		b.WriteString(DialogOptionSelected.Render("▸ " + d.CommandInput + "█"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(DialogHint.Render("↑/↓: navigate  Enter: select  Esc: cancel"))

	box := DialogOverlay.Render(b.String())

	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}
