package tui

import (
	"strings"

	"calcd/internal/engine"
	"calcd/internal/keypad"
	"calcd/internal/log"
	"calcd/internal/theme"
	"calcd/internal/tui/messages"
	"calcd/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	engine *engine.Engine
	theme  *theme.Controller
	keys   KeyMap
	help   help.Model

	dark   bool
	styles styles.Styles

	pressed  string // label of the last key that reached the engine
	status   string
	err      error
	quitting bool
}

// New creates the TUI model. systemDark is the terminal's background, used
// when no theme preference is stored.
func New(eng *engine.Engine, ctl *theme.Controller, systemDark bool) *Model {
	m := &Model{
		engine: eng,
		theme:  ctl,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.setDark(ctl.Resolve(systemDark))
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case messages.ThemeChangedMsg:
		m.setDark(msg.Dark)
		m.err = nil
		m.status = themeName(msg.Dark) + " theme"
	case messages.ErrorMsg:
		m.err = msg.Err
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		return m, toggleTheme(m.theme, m.dark)
	}

	token := msg.String()
	if err := keypad.Press(m.engine, token); err != nil {
		log.LogWithError(err).Debug("key ignored")
		m.pressed = ""
		m.status = "Unknown key " + token
		return m, nil
	}
	m.pressed = labelFor(token)
	m.status = ""
	m.err = nil
	return m, nil
}

// toggleTheme stores the opposite of the theme on screen, which may come
// from the terminal rather than a stored preference.
func toggleTheme(ctl *theme.Controller, shown bool) tea.Cmd {
	return func() tea.Msg {
		if err := ctl.SetDark(!shown); err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.ThemeChangedMsg{Dark: !shown}
	}
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	m.styles = styles.For(dark)
	m.help.Styles.ShortKey = m.styles.Help.UnsetMarginTop().Bold(true)
	m.help.Styles.FullKey = m.help.Styles.ShortKey
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Calculator"))
	sb.WriteString("\n")
	sb.WriteString(m.renderDisplay())
	sb.WriteString("\n")
	sb.WriteString(m.renderKeypad())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.App.Render(sb.String())
}

func (m *Model) renderDisplay() string {
	d := m.engine.Display()
	if strings.HasSuffix(d, engine.ErrorText) {
		return m.styles.Display.Foreground(m.styles.Error.GetForeground()).Render(d)
	}
	return m.styles.Display.Render(d)
}

func (m *Model) renderKeypad() string {
	rows := make([]string, 0, len(keypad.Layout))
	for _, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for i, b := range row {
			style := m.keyStyle(b)
			// three-key rows widen their first key to span two cells
			if i == 0 && len(row) == 3 {
				style = style.Width(2*styles.KeyWidth + 2)
			}
			cells = append(cells, style.Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) keyStyle(b keypad.Button) lipgloss.Style {
	if b.Label == m.pressed {
		return m.styles.Pressed
	}
	switch b.Kind {
	case keypad.Operation:
		return m.styles.Operator
	case keypad.Function:
		return m.styles.Function
	case keypad.Equals:
		return m.styles.Equals
	default:
		return m.styles.Number
	}
}

func (m *Model) renderStatus() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	return m.styles.Status.Render(m.status)
}

// labelFor returns the keypad label a typed token corresponds to.
func labelFor(token string) string {
	if op, ok := keypad.Operator(token); ok {
		return op.String()
	}
	for _, row := range keypad.Layout {
		for _, b := range row {
			if b.Token == token {
				return b.Label
			}
		}
	}
	switch token {
	case "enter":
		return "="
	case "c", "esc", "escape":
		return "C"
	case "backspace", "del", "delete":
		return "⌫"
	}
	return ""
}

func themeName(dark bool) string {
	if dark {
		return "Dark"
	}
	return "Light"
}

// Getters

func (m *Model) Display() string {
	return m.engine.Display()
}

func (m *Model) IsDark() bool {
	return m.dark
}

func (m *Model) ShowHelp() bool {
	return m.help.ShowAll
}

func (m *Model) Err() error {
	return m.err
}
