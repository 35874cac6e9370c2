// Package engine turns calculator key presses into a running display string
// and a left-to-right evaluated result.
package engine

import (
	"strings"
	"sync"

	"calcd/internal/log"
)

// State is the calculator's typed input state.
type State struct {
	// CurrentInput is the numeral being typed, or the last result.
	CurrentInput string
	// Expression is the accumulated operand and operator text.
	Expression string
	// PendingOperator is the last operator pressed, 0 when none.
	PendingOperator Operator
	// AwaitingOperand is set right after an operator, before the next digit.
	AwaitingOperand bool
	// ResultShown is set once "=" has produced a value.
	ResultShown bool
}

func initialState() State {
	return State{CurrentInput: "0"}
}

// Engine owns one State and the display derived from it. Operations are
// synchronous and safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	state     State
	display   string
	listeners []func(string)
}

// New creates an engine in its initial state with display "0".
func New() *Engine {
	return &Engine{
		state:   initialState(),
		display: "0",
	}
}

// Display returns the text the presentation layer should show.
func (e *Engine) Display() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.display
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// OnChange registers fn to be called with the new display after every
// operation that changes it. fn runs without the engine lock held.
func (e *Engine) OnChange(fn func(display string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// InputDigit handles "0"-"9" and ".". Tokens outside that set are ignored.
func (e *Engine) InputDigit(token string) {
	if !isDigitToken(token) {
		log.Debugf("ignoring non-digit token %q", token)
		return
	}
	e.mutate(func(s *State) {
		if s.ResultShown {
			*s = initialState()
		}

		if s.AwaitingOperand {
			if token == "." {
				s.CurrentInput = "0."
			} else {
				s.CurrentInput = token
			}
			s.AwaitingOperand = false
			return
		}

		switch {
		case s.CurrentInput == "0" && token != ".":
			s.CurrentInput = token
		case token == "." && strings.Contains(s.CurrentInput, "."):
			// at most one decimal point
		case s.CurrentInput == "0" && token == ".":
			s.CurrentInput = "0."
		default:
			s.CurrentInput += token
		}
	})
}

// InputOperator appends op to the expression. After a result, the result
// becomes the left operand of the new expression.
func (e *Engine) InputOperator(op Operator) {
	if op.Glyph() == 0 {
		return
	}
	e.mutate(func(s *State) {
		if s.ResultShown {
			s.Expression = s.CurrentInput
			s.ResultShown = false
		}

		if s.Expression == "" {
			s.Expression = s.CurrentInput
		} else if !s.AwaitingOperand {
			s.Expression += s.CurrentInput
		} else if last, ok := lastOperator(s.Expression); ok {
			// a second operator in a row replaces the first
			s.Expression = strings.TrimSuffix(s.Expression, string(last.Glyph()))
		}

		s.Expression += string(op.Glyph())
		s.PendingOperator = op
		s.AwaitingOperand = true
	})
}

// Evaluate computes the expression. It does nothing without a pending
// operator or when a result is already shown.
func (e *Engine) Evaluate() {
	e.mu.Lock()
	s := &e.state
	if s.PendingOperator == 0 || s.ResultShown {
		e.mu.Unlock()
		return
	}

	full := s.Expression + s.CurrentInput
	result, err := Evaluate(full)
	if err != nil {
		log.LogWithError(err).Debug("expression evaluated to error")
	} else {
		log.LogWithFields(log.F("expression", full), log.F("result", result)).Debug("expression evaluated")
	}

	s.CurrentInput = result
	s.PendingOperator = 0
	s.AwaitingOperand = true
	s.ResultShown = true
	e.display = full + "=" + result
	e.unlockAndNotify()
}

// Clear resets to the initial state.
func (e *Engine) Clear() {
	e.reset()
}

// DeleteLast removes the last typed character. After a result it resets instead.
func (e *Engine) DeleteLast() {
	e.mu.Lock()
	s := &e.state
	if s.ResultShown {
		e.resetLocked()
		return
	}
	if len(s.CurrentInput) > 1 {
		s.CurrentInput = s.CurrentInput[:len(s.CurrentInput)-1]
	} else {
		s.CurrentInput = "0"
	}
	e.display = renderDisplay(*s)
	e.unlockAndNotify()
}

func (e *Engine) reset() {
	e.mu.Lock()
	e.resetLocked()
}

func (e *Engine) resetLocked() {
	e.state = initialState()
	e.display = "0"
	e.unlockAndNotify()
	log.Debugf("engine reset")
}

// mutate applies fn to the state, recomputes the display and notifies.
func (e *Engine) mutate(fn func(s *State)) {
	e.mu.Lock()
	fn(&e.state)
	e.display = renderDisplay(e.state)
	e.unlockAndNotify()
}

// unlockAndNotify releases the lock, then calls listeners with the new display.
func (e *Engine) unlockAndNotify() {
	display := e.display
	listeners := append([]func(string){}, e.listeners...)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(display)
	}
}

func renderDisplay(s State) string {
	if s.Expression != "" && !s.ResultShown {
		if s.AwaitingOperand {
			return s.Expression
		}
		return s.Expression + s.CurrentInput
	}
	return s.CurrentInput
}

func isDigitToken(token string) bool {
	if len(token) != 1 {
		return false
	}
	c := token[0]
	return c == '.' || (c >= '0' && c <= '9')
}

func lastOperator(expr string) (Operator, bool) {
	runes := []rune(expr)
	if len(runes) == 0 {
		return 0, false
	}
	return OperatorFromGlyph(runes[len(runes)-1])
}
