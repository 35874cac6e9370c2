package engine

import (
	"math"
	"strconv"
	"strings"

	"calcd/internal/errors"
)

// ErrorText is shown in place of a result that cannot be represented.
const ErrorText = "Error"

// maxFractionDigits bounds the decimals kept in a non-integral result.
const maxFractionDigits = 10

var nan = math.NaN()

// Tokenize splits expr into alternating operand and operator tokens. Any run
// of characters between operator glyphs is a single operand token.
func Tokenize(expr string) []string {
	var tokens []string
	var operand strings.Builder

	for _, r := range expr {
		if _, ok := OperatorFromGlyph(r); ok {
			if operand.Len() > 0 {
				tokens = append(tokens, operand.String())
				operand.Reset()
			}
			tokens = append(tokens, string(r))
			continue
		}
		operand.WriteRune(r)
	}
	if operand.Len() > 0 {
		tokens = append(tokens, operand.String())
	}
	return tokens
}

// Calculate evaluates expr strictly left to right with no operator precedence,
// so "2+3×4" is (2+3)×4. Division by zero returns NaN together with a
// DivisionByZero error; evaluation still runs to the end of the expression.
func Calculate(expr string) (float64, error) {
	tokens := Tokenize(expr)
	if len(tokens) < 3 {
		return nan, errors.NewExpressionError("need operand, operator and operand", expr, errors.MalformedExpression, nil)
	}

	result, err := parseOperand(expr, tokens[0])
	if err != nil {
		return nan, err
	}

	var divErr error
	for i := 1; i+1 < len(tokens); i += 2 {
		opRunes := []rune(tokens[i])
		op, ok := OperatorFromGlyph(opRunes[0])
		if len(opRunes) != 1 || !ok {
			return nan, errors.NewExpressionError("expected operator", expr, errors.MalformedExpression, nil)
		}
		operand, err := parseOperand(expr, tokens[i+1])
		if err != nil {
			return nan, err
		}
		if op == Divide && operand == 0 && divErr == nil {
			divErr = errors.NewExpressionError("division by zero", expr, errors.DivisionByZero, nil)
		}
		result = op.Apply(result, operand)
	}

	if divErr != nil {
		return nan, divErr
	}
	return result, nil
}

func parseOperand(expr, token string) (float64, error) {
	if _, ok := OperatorFromGlyph([]rune(token)[0]); ok {
		return nan, errors.NewExpressionError("expected operand", expr, errors.MalformedExpression, nil)
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nan, errors.NewExpressionError("invalid operand", expr, errors.InvalidOperand, err)
	}
	return v, nil
}

// FormatResult renders v for display. NaN and infinities become "Error",
// integral values have no decimals, and other values keep at most ten
// fractional digits with trailing zeros removed.
func FormatResult(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorText
	}
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', maxFractionDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Evaluate calculates expr and formats the result. Every failure collapses
// to ErrorText; the error is returned for logging only.
func Evaluate(expr string) (string, error) {
	v, err := Calculate(expr)
	if err != nil {
		return ErrorText, err
	}
	return FormatResult(v), nil
}
