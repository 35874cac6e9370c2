package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the calculator TUI. Digits, operators and
// the decimal point are handled by the keypad package and are listed here only
// for help output.
type KeyMap struct {
	Digits    key.Binding
	Operators key.Binding
	Evaluate  key.Binding
	Delete    key.Binding
	Clear     key.Binding

	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
			key.WithHelp("0-9 .", "digit"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "x", "/"),
			key.WithHelp("+ - * /", "operator"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=/enter", "evaluate"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "esc"),
			key.WithHelp("c/esc", "clear"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.ToggleTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operators, k.Evaluate},
		{k.Delete, k.Clear},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
