// Package errors provides standardized error handling for calcd.
// It defines the error kinds raised by configuration, theme persistence,
// expression evaluation and key dispatch, plus helpers for wrapping and
// classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Preference error kinds
	PreferenceReadFailed
	PreferenceWriteFailed
	// Expression error kinds
	MalformedExpression
	InvalidOperand
	DivisionByZero
	// Input error kinds
	UnknownKey
)

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig       = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrMalformedExpression = NewExpressionError("malformed expression", "", MalformedExpression, nil)
	ErrDivisionByZero      = NewExpressionError("division by zero", "", DivisionByZero, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// detailed formats msg, an optional detail and the wrapped error.
func (e *ApplicationError) detailed(detail string) string {
	if detail == "" {
		return e.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, detail, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, detail)
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		param:            param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	return e.detailed(e.param)
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// PreferenceError represents a failure reading or writing a persisted preference
type PreferenceError struct {
	ApplicationError
	key string
}

// NewPreferenceError creates a new preference error
func NewPreferenceError(msg string, key string, kind ErrorKind, err error) *PreferenceError {
	return &PreferenceError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		key:              key,
	}
}

// Error returns the preference error message
func (e *PreferenceError) Error() string {
	return e.detailed(e.key)
}

// Key returns the preference key associated with the error
func (e *PreferenceError) Key() string {
	return e.key
}

// ExpressionError represents an expression that could not be evaluated
type ExpressionError struct {
	ApplicationError
	expression string
}

// NewExpressionError creates a new expression error
func NewExpressionError(msg string, expression string, kind ErrorKind, err error) *ExpressionError {
	return &ExpressionError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		expression:       expression,
	}
}

// Error returns the expression error message
func (e *ExpressionError) Error() string {
	return e.detailed(e.expression)
}

// Expression returns the expression text that failed
func (e *ExpressionError) Expression() string {
	return e.expression
}

// Is matches another ExpressionError of the same kind so that
// errors.Is(err, ErrDivisionByZero) works for any expression.
func (e *ExpressionError) Is(target error) bool {
	var other *ExpressionError
	if !errors.As(target, &other) {
		return false
	}
	return other.kind == e.kind && other.expression == ""
}

// KeyError represents a key token that maps to no calculator button
type KeyError struct {
	ApplicationError
	key string
}

// NewKeyError creates a new key error
func NewKeyError(msg string, key string, err error) *KeyError {
	return &KeyError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: UnknownKey},
		key:              key,
	}
}

// Error returns the key error message
func (e *KeyError) Error() string {
	return e.detailed(e.key)
}

// Key returns the offending key token
func (e *KeyError) Key() string {
	return e.key
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first specific kind found in err's chain. Wrapping with
// Wrap or Wrapf does not hide the kind underneath.
func KindOf(err error) ErrorKind {
	for err != nil {
		if kinded, ok := err.(interface{ Kind() ErrorKind }); ok && kinded.Kind() != Unknown {
			return kinded.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsPreferenceError checks if the error came from a preference store
func IsPreferenceError(err error) bool {
	var prefErr *PreferenceError
	return errors.As(err, &prefErr)
}

// IsDivisionByZero checks if the error is a division by zero
func IsDivisionByZero(err error) bool {
	var exprErr *ExpressionError
	if errors.As(err, &exprErr) {
		return exprErr.Kind() == DivisionByZero
	}
	return false
}

// IsMalformedExpression checks if the expression could not be tokenized or parsed
func IsMalformedExpression(err error) bool {
	var exprErr *ExpressionError
	if errors.As(err, &exprErr) {
		return exprErr.Kind() == MalformedExpression || exprErr.Kind() == InvalidOperand
	}
	return false
}

// IsUnknownKey checks if the error is an unknown key error
func IsUnknownKey(err error) bool {
	var keyErr *KeyError
	return errors.As(err, &keyErr)
}
