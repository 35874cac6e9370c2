package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"calcd/internal/config"
	"calcd/internal/errors"
	"calcd/internal/theme"
	"calcd/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testEnv writes a config whose theme file lives in a temp dir.
func testEnv(t *testing.T) (cfgPath, themePath string) {
	t.Helper()
	dir := t.TempDir()
	themePath = filepath.Join(dir, "theme.yaml")
	testutils.WriteFiles(t, dir, map[string]string{
		"config.yaml": `app:
  id: io.github.calcd.test
splash:
  enabled: false
theme:
  store: file
  file: ` + themePath + `
  watch: false
log:
  level: warn
`,
	})
	return filepath.Join(dir, "config.yaml"), themePath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	cfgPath, _ := testEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"simple addition", []string{"7+3="}, "7+3=10"},
		{"left to right", []string{"2+3*4="}, "2+3×4=20"},
		{"division by zero", []string{"5/0="}, "5÷0=Error"},
		{"fraction", []string{"10/4="}, "10÷4=2.5"},
		{"whole division", []string{"9/3="}, "9÷3=3"},
		{"args are joined", []string{"1", "+", "2", "="}, "1+2=3"},
		{"pending expression", []string{"12-"}, "12−"},
		{"carry forward", []string{"20+5=+1="}, "25+1=26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--config", cfgPath, "eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestEvalSteps(t *testing.T) {
	cfgPath, _ := testEnv(t)
	out, err := run(t, "--config", cfgPath, "eval", "--steps", "7+3=")
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "7+", "7+3", "7+3=10"}, strings.Fields(out))
}

func TestEvalUnknownKey(t *testing.T) {
	cfgPath, _ := testEnv(t)
	_, err := run(t, "--config", cfgPath, "eval", "7+a")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownKey(err))
}

func TestEvalRequiresKeys(t *testing.T) {
	cfgPath, _ := testEnv(t)
	_, err := run(t, "--config", cfgPath, "eval")
	assert.Error(t, err)
}

func TestThemeCommands(t *testing.T) {
	cfgPath, themePath := testEnv(t)

	out, err := run(t, "--config", cfgPath, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "light (default)\n", out)

	out, err = run(t, "--config", cfgPath, "theme", "set", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	dark, ok, err := theme.NewFileStore(themePath).Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, dark)

	out, err = run(t, "--config", cfgPath, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = run(t, "--config", cfgPath, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = run(t, "--config", cfgPath, "theme", "get")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeSetInvalid(t *testing.T) {
	cfgPath, themePath := testEnv(t)
	_, err := run(t, "--config", cfgPath, "theme", "set", "purple")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))

	_, statErr := os.Stat(themePath)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written")
}

func TestThemeFileFromEnv(t *testing.T) {
	cfgPath, _ := testEnv(t)
	override := filepath.Join(t.TempDir(), "other.yaml")
	t.Setenv("CALCD_THEME_FILE", override)

	_, err := run(t, "--config", cfgPath, "theme", "set", "dark")
	require.NoError(t, err)

	dark, ok, err := theme.NewFileStore(override).Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, dark)
}

func TestThemePreferencesStoreRejected(t *testing.T) {
	cfgPath, _ := testEnv(t)
	t.Setenv("CALCD_THEME_STORE", config.StorePreferences)

	_, err := run(t, "--config", cfgPath, "theme", "get")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = run(t, "--config", path, "config", "init")
	assert.Error(t, err, "refuses to overwrite")

	_, err = run(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, config.New().App.ID, shown.App.ID)
	assert.Equal(t, config.New().Splash.Duration, shown.Splash.Duration)
}

func TestInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		"config.yaml": "log:\n  level: loud\n",
	})

	_, err := run(t, "--config", filepath.Join(dir, "config.yaml"), "eval", "1")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}
