package log

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	apperrors "calcd/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is a structured logger backed by logrus.
type Logger struct {
	base   *logrus.Logger
	fields logrus.Fields
	file   *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sends log entries to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.base.SetOutput(w)
	}
}

// WithJSON switches to JSON formatted entries.
func WithJSON() Option {
	return func(l *Logger) {
		l.base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile appends entries to path in addition to the current output.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file %s: %v\n", path, err)
			return
		}
		l.file = f
		l.base.SetOutput(io.MultiWriter(l.base.Out, f))
	}
}

// WithLevel sets the minimum level by name (debug, info, warn, error).
func WithLevel(level string) Option {
	return func(l *Logger) {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return
		}
		l.base.SetLevel(lvl)
		if lvl >= logrus.DebugLevel {
			isDebug.Store(true)
		}
	}
}

// NewLogger creates a logger writing text entries to stdout.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05",
		DisableColors:    true,
		DisableQuote:     true,
		QuoteEmptyFields: true,
	})

	l := &Logger{base: base, fields: logrus.Fields{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Close releases the log file, if any.
func Close() {
	if logger.file != nil {
		logger.file.Close()
	}
}

// SetDebug toggles debug output for all loggers.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	merged := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &Logger{base: l.base, fields: merged, file: l.file}
}

// WithError attaches err and its classification.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", int(apperrors.KindOf(err))),
	}

	var configErr *apperrors.ConfigError
	var prefErr *apperrors.PreferenceError
	var exprErr *apperrors.ExpressionError
	var keyErr *apperrors.KeyError
	switch {
	case apperrors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case apperrors.As(err, &prefErr):
		fields = append(fields, F("key", prefErr.Key()))
	case apperrors.As(err, &exprErr):
		fields = append(fields, F("expression", exprErr.Expression()))
	case apperrors.As(err, &keyErr):
		fields = append(fields, F("key", keyErr.Key()))
	}
	return l.With(fields...)
}

func (l *Logger) entry() *logrus.Entry {
	return l.base.WithFields(l.fields)
}

func (l *Logger) Info(msg string)  { l.entry().Info(msg) }
func (l *Logger) Warn(msg string)  { l.entry().Warn(msg) }
func (l *Logger) Error(msg string) { l.entry().Error(msg) }

// Debug logs msg only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if isDebug.Load() {
		l.entry().Debug(msg)
	}
}

func (l *Logger) Infof(format string, args ...interface{})  { l.entry().Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry().Warnf(format, args...) }

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		l.entry().Debugf(format, args...)
	}
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger with err attached.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
