// Package keypad maps calculator buttons and typed keys onto engine operations.
package keypad

import (
	"strings"

	"calcd/internal/engine"
	"calcd/internal/errors"

	"github.com/gobwas/glob"
)

// Kind groups buttons by their role, which also drives their styling.
type Kind int

const (
	Number Kind = iota
	Operation
	Function
	Equals
)

// Button is one key on the calculator face.
type Button struct {
	Label string
	Kind  Kind
	// Token is what Press receives when the button is tapped.
	Token string
}

// Layout is the button grid, top row first.
var Layout = [][]Button{
	{{"C", Function, "C"}, {"⌫", Function, "⌫"}, {"÷", Operation, "÷"}},
	{{"7", Number, "7"}, {"8", Number, "8"}, {"9", Number, "9"}, {"×", Operation, "×"}},
	{{"4", Number, "4"}, {"5", Number, "5"}, {"6", Number, "6"}, {"−", Operation, "−"}},
	{{"1", Number, "1"}, {"2", Number, "2"}, {"3", Number, "3"}, {"+", Operation, "+"}},
	{{"0", Number, "0"}, {".", Number, "."}, {"=", Equals, "="}},
}

var (
	digitKey  = glob.MustCompile("[.0-9]")
	equalsKey = glob.MustCompile("{=,enter}")
	clearKey  = glob.MustCompile("{c,C,esc,escape}")
	deleteKey = glob.MustCompile("{⌫,backspace,del,delete}")

	operatorKeys = []struct {
		pattern glob.Glob
		op      engine.Operator
	}{
		{glob.MustCompile("{+,plus}"), engine.Add},
		{glob.MustCompile("{−,-,minus}"), engine.Subtract},
		{glob.MustCompile("{×,x,X,\\*}"), engine.Multiply},
		{glob.MustCompile("{÷,/}"), engine.Divide},
	}
)

// Operator returns the operator a key token stands for, accepting ASCII aliases.
func Operator(token string) (engine.Operator, bool) {
	for _, k := range operatorKeys {
		if k.pattern.Match(token) {
			return k.op, true
		}
	}
	return 0, false
}

// Press applies one key token to e. Unknown tokens leave e untouched.
func Press(e *engine.Engine, token string) error {
	switch {
	case digitKey.Match(token):
		e.InputDigit(token)
	case equalsKey.Match(token):
		e.Evaluate()
	case clearKey.Match(token):
		e.Clear()
	case deleteKey.Match(token):
		e.DeleteLast()
	default:
		op, ok := Operator(token)
		if !ok {
			return errors.NewKeyError("unknown key", token, nil)
		}
		e.InputOperator(op)
	}
	return nil
}

// Tokens splits typed input such as "12+3=" into one token per key. Whitespace
// separates nothing and is dropped.
func Tokens(input string) []string {
	var tokens []string
	for _, r := range input {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}

// PressAll applies every token in input, stopping at the first unknown key.
func PressAll(e *engine.Engine, input string) error {
	for _, token := range Tokens(input) {
		if err := Press(e, token); err != nil {
			return errors.Wrapf(err, "pressing %q", strings.TrimSpace(input))
		}
	}
	return nil
}
