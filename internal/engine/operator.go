package engine

// Operator is one of the four binary arithmetic operations.
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Glyphs written into the expression text. Subtract uses U+2212 so that a
// leading ASCII '-' on a carried-forward negative result stays part of the operand.
const (
	AddGlyph      = '+'
	SubtractGlyph = '−'
	MultiplyGlyph = '×'
	DivideGlyph   = '÷'
)

// Glyph returns the symbol written into the expression for op.
func (op Operator) Glyph() rune {
	switch op {
	case Add:
		return AddGlyph
	case Subtract:
		return SubtractGlyph
	case Multiply:
		return MultiplyGlyph
	case Divide:
		return DivideGlyph
	}
	return 0
}

func (op Operator) String() string {
	if g := op.Glyph(); g != 0 {
		return string(g)
	}
	return "?"
}

// Apply returns a op b. Division by exactly zero yields NaN.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		if b == 0 {
			return nan
		}
		return a / b
	}
	return nan
}

// OperatorFromGlyph maps an expression glyph back to its Operator.
func OperatorFromGlyph(r rune) (Operator, bool) {
	switch r {
	case AddGlyph:
		return Add, true
	case SubtractGlyph:
		return Subtract, true
	case MultiplyGlyph:
		return Multiply, true
	case DivideGlyph:
		return Divide, true
	}
	return 0, false
}
