package engine

import (
	"math"
	"testing"

	"calcd/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		expr   string
		tokens []string
	}{
		{"", nil},
		{"12", []string{"12"}},
		{"2+3×4", []string{"2", "+", "3", "×", "4"}},
		{"-2+1", []string{"-2", "+", "1"}},
		{"1.5÷0.5−2", []string{"1.5", "÷", "0.5", "−", "2"}},
		{"5+", []string{"5", "+"}},
		{"×5", []string{"×", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.tokens, Tokenize(tt.expr))
		})
	}
}

func TestCalculate(t *testing.T) {
	v, err := Calculate("2+3×4")
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	v, err = Calculate("100÷4−5×2")
	require.NoError(t, err)
	assert.Equal(t, 40.0, v)

	// trailing operator is ignored, as the evaluator only consumes complete pairs
	v, err = Calculate("1+2+")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		malformed bool
		divZero   bool
	}{
		{"empty", "", true, false},
		{"single operand", "5", true, false},
		{"missing right operand", "5+", true, false},
		{"leading operator", "×5+3", true, false},
		{"double operator", "5+×3", true, false},
		{"unparseable operand", "Error+1", true, false},
		{"division by zero", "5÷0", false, true},
		{"division by zero then more", "5÷0×2", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Calculate(tt.expr)
			require.Error(t, err)
			assert.True(t, math.IsNaN(v))
			assert.Equal(t, tt.malformed, errors.IsMalformedExpression(err))
			assert.Equal(t, tt.divZero, errors.IsDivisionByZero(err))
		})
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{4, "4"},
		{-4, "-4"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{2.5, "2.5"},
		{10.0 / 3, "3.3333333333"},
		{2.0 / 3, "0.6666666667"},
		{0.1 + 0.2, "0.3"},
		{1e-12, "0"},
		{-0.75, "-0.75"},
		{1e15, "1000000000000000"},
		{math.NaN(), "Error"},
		{math.Inf(1), "Error"},
		{math.Inf(-1), "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.value))
		})
	}
}

func TestEvaluateString(t *testing.T) {
	got, err := Evaluate("10÷4")
	require.NoError(t, err)
	assert.Equal(t, "2.5", got)

	got, err = Evaluate("5÷0")
	assert.Error(t, err)
	assert.Equal(t, ErrorText, got)
}

func TestOperatorApply(t *testing.T) {
	assert.Equal(t, 5.0, Add.Apply(2, 3))
	assert.Equal(t, -1.0, Subtract.Apply(2, 3))
	assert.Equal(t, 6.0, Multiply.Apply(2, 3))
	assert.Equal(t, 2.0, Divide.Apply(6, 3))
	assert.True(t, math.IsNaN(Divide.Apply(6, 0)))
	assert.True(t, math.IsNaN(Operator(0).Apply(1, 1)))

	assert.Equal(t, "−", Subtract.String())
	assert.Equal(t, "?", Operator(9).String())
}
