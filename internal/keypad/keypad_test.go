package keypad

import (
	"testing"

	"calcd/internal/engine"
	"calcd/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTokensAreAllPressable(t *testing.T) {
	count := 0
	for _, row := range Layout {
		for _, b := range row {
			e := engine.New()
			assert.NoError(t, Press(e, b.Token), "button %s", b.Label)
			count++
		}
	}
	// 10 digits, decimal point, 4 operators, equals, clear, delete
	assert.Equal(t, 18, count)
}

func TestLayoutKinds(t *testing.T) {
	for _, row := range Layout {
		for _, b := range row {
			_, isOp := Operator(b.Token)
			assert.Equal(t, isOp, b.Kind == Operation, "button %s", b.Label)
		}
	}
}

func TestOperatorAliases(t *testing.T) {
	tests := map[string]engine.Operator{
		"+": engine.Add, "plus": engine.Add,
		"−": engine.Subtract, "-": engine.Subtract,
		"×": engine.Multiply, "x": engine.Multiply, "*": engine.Multiply,
		"÷": engine.Divide, "/": engine.Divide,
	}
	for token, want := range tests {
		op, ok := Operator(token)
		require.True(t, ok, token)
		assert.Equal(t, want, op, token)
	}

	_, ok := Operator("%")
	assert.False(t, ok)
}

func TestPressAll(t *testing.T) {
	tests := []struct {
		input   string
		display string
	}{
		{"7+3=", "7+3=10"},
		{"7 + 3 =", "7+3=10"},
		{"2+3*4=", "2+3×4=20"},
		{"10/4=", "10÷4=2.5"},
		{"9-12=", "9−12=-3"},
		{"5/0=", "5÷0=Error"},
		{"123⌫", "12"},
		{"12+3c", "0"},
		{"7+3=2", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := engine.New()
			require.NoError(t, PressAll(e, tt.input))
			assert.Equal(t, tt.display, e.Display())
		})
	}
}

func TestPressNamedKeys(t *testing.T) {
	e := engine.New()
	for _, token := range []string{"4", "plus", "4", "enter"} {
		require.NoError(t, Press(e, token))
	}
	assert.Equal(t, "4+4=8", e.Display())

	require.NoError(t, Press(e, "backspace"))
	assert.Equal(t, "0", e.Display())

	require.NoError(t, Press(e, "9"))
	require.NoError(t, Press(e, "esc"))
	assert.Equal(t, "0", e.Display())
}

func TestPressUnknownKey(t *testing.T) {
	e := engine.New()
	require.NoError(t, PressAll(e, "12"))

	err := PressAll(e, "3%4")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownKey(err))
	// keys before the bad one still apply
	assert.Equal(t, "123", e.Display())
}

func TestDigitKeys(t *testing.T) {
	for _, token := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."} {
		assert.True(t, digitKey.Match(token), token)
	}
	for _, token := range []string{"a", "-", ",", "10", ""} {
		assert.False(t, digitKey.Match(token), token)
	}

	e := engine.New()
	require.NoError(t, PressAll(e, "0.5"))
	assert.Equal(t, "0.5", e.Display())
}
