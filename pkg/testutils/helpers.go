package testutils

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// WriteFiles creates files with specific content under dir
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"esc":       tea.KeyEsc,
	"ctrl+c":    tea.KeyCtrlC,
}

// Key builds the KeyMsg bubbletea delivers for a key such as "7" or "enter".
func Key(k string) tea.KeyMsg {
	if kt, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// SendKeys feeds each key to m in order, running any returned command and
// feeding its message back in. tea.Quit is not run.
func SendKeys(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(Key(k))
		m = drain(m, cmd)
	}
	return m
}

func drain(m tea.Model, cmd tea.Cmd) tea.Model {
	for cmd != nil {
		msg := cmd()
		if _, quit := msg.(tea.QuitMsg); quit || msg == nil {
			return m
		}
		m, cmd = m.Update(msg)
	}
	return m
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
