package tui

import (
	"os"
	"path/filepath"
	"testing"

	"calcd/internal/engine"
	"calcd/internal/errors"
	"calcd/internal/theme"
	"calcd/internal/tui/messages"
	"calcd/pkg/testutils"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	ctl := theme.NewController(theme.NewMemoryStore())
	require.NoError(t, ctl.Load())
	return New(engine.New(), ctl, false)
}

func send(m *Model, keys ...string) *Model {
	return testutils.SendKeys(m, keys...).(*Model)
}

func TestModelInitialization(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.Init())
	assert.Equal(t, "0", m.Display())
	assert.False(t, m.IsDark())
	assert.False(t, m.ShowHelp())

	view := testutils.StripANSI(m.View())
	alsrt.Contains(t, view, "Calculator")
	for _, label := range []string{"C", "⌫", "÷", "×", "−", "+", "=", "0", "9"} {
		alsrt.Contains(t, view, label)
	}
}

func TestModelUsesSystemThemeWhenUnset(t *testing.T) {
	ctl := theme.NewController(theme.NewMemoryStore())
	m := New(engine.New(), ctl, true)
	assert.True(t, m.IsDark())

	store := theme.NewMemoryStore()
	require.NoError(t, store.Write(false))
	ctl = theme.NewController(store)
	require.NoError(t, ctl.Load())
	m = New(engine.New(), ctl, true)
	assert.False(t, m.IsDark(), "stored preference wins over the terminal")
}

func TestTypingEvaluates(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"addition", []string{"7", "+", "3", "enter"}, "7+3=10"},
		{"left to right", []string{"2", "+", "3", "*", "4", "="}, "2+3×4=20"},
		{"ascii minus", []string{"9", "-", "4", "="}, "9−4=5"},
		{"slash divides", []string{"1", "0", "/", "4", "="}, "10÷4=2.5"},
		{"division by zero", []string{"5", "/", "0", "="}, "5÷0=Error"},
		{"backspace", []string{"1", "2", "backspace"}, "1"},
		{"escape clears", []string{"1", "2", "+", "esc"}, "0"},
		{"c clears", []string{"4", "c"}, "0"},
		{"result carried forward", []string{"2", "0", "+", "5", "=", "+", "1", "="}, "25+1=26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(newTestModel(t), tt.keys...)
			alsrt.Equal(t, tt.want, m.Display())
			alsrt.Contains(t, testutils.StripANSI(m.View()), tt.want)
		})
	}
}

func TestUnknownKeyLeavesDisplay(t *testing.T) {
	m := send(newTestModel(t), "7", "z")
	assert.Equal(t, "7", m.Display())
	alsrt.Contains(t, testutils.StripANSI(m.View()), "Unknown key z")

	m = send(m, "8")
	assert.Equal(t, "78", m.Display())
	assert.NotContains(t, testutils.StripANSI(m.View()), "Unknown key")
}

func TestToggleTheme(t *testing.T) {
	m := newTestModel(t)

	m = send(m, "t")
	assert.True(t, m.IsDark())
	assert.True(t, m.theme.IsDark())
	alsrt.Contains(t, testutils.StripANSI(m.View()), "Dark theme")

	m = send(m, "t")
	assert.False(t, m.IsDark())
	alsrt.Contains(t, testutils.StripANSI(m.View()), "Light theme")
}

func TestToggleThemeWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	ctl := theme.NewController(theme.NewFileStore(filepath.Join(blocker, "theme.yaml")))
	m := send(New(engine.New(), ctl, false), "t")

	require.Error(t, m.Err())
	assert.True(t, errors.IsPreferenceError(m.Err()))
	alsrt.Contains(t, testutils.StripANSI(m.View()), "theme")
}

func TestExternalThemeChange(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(messages.ThemeChangedMsg{Dark: true})
	assert.Nil(t, cmd)
	assert.True(t, updated.(*Model).IsDark())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := testutils.StripANSI(m.View())
	alsrt.Contains(t, short, "quit")
	assert.NotContains(t, short, "operator")

	m = send(m, "?")
	assert.True(t, m.ShowHelp())
	alsrt.Contains(t, testutils.StripANSI(m.View()), "operator")
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		_, cmd := m.Update(testutils.Key(k))
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k)
		assert.Empty(t, m.View())
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, m.help.Width)
}

func TestLabelFor(t *testing.T) {
	tests := map[string]string{
		"7":         "7",
		".":         ".",
		"-":         "−",
		"*":         "×",
		"/":         "÷",
		"enter":     "=",
		"esc":       "C",
		"backspace": "⌫",
		"?":         "",
	}
	for token, want := range tests {
		assert.Equal(t, want, labelFor(token), token)
	}
}

func TestToggleFromTerminalTheme(t *testing.T) {
	store := theme.NewMemoryStore()
	ctl := theme.NewController(store)
	require.NoError(t, ctl.Load())

	m := New(engine.New(), ctl, true)
	require.True(t, m.IsDark(), "dark terminal with nothing stored")

	m = send(m, "t")
	assert.False(t, m.IsDark())
	alsrt.Contains(t, testutils.StripANSI(m.View()), "Light theme")

	dark, ok, err := store.Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, dark)

	m = send(m, "t")
	assert.True(t, m.IsDark())
}
