package logging

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 builds a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 builds a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err builds an error-valued Field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal surface the bigint core's optional diagnostics
// rely on. Both ZerologAdapter and StdLoggerAdapter implement it.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of zerolog.Logger.
type ZerologAdapter struct {
	log zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{log: zl}
}

// NewDefaultLogger returns a ZerologAdapter writing human-readable
// console output to standard output, suitable when the caller hasn't
// configured anything and just wants diagnostics to go somewhere sensible.
func NewDefaultLogger() *ZerologAdapter {
	return &ZerologAdapter{log: zerolog.New(zerolog.NewConsoleWriter())}
}

// NewLogger builds a ZerologAdapter writing to w, tagging every line
// with a "component" field so diagnostics from several levels of the
// ladder can be told apart in aggregate logs.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Str("component", component).Logger()
	return &ZerologAdapter{log: zl}
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.log.Info(), fields).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.log.Error().Err(err), fields).Msg(msg)
}

func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.log.Debug(), fields).Msg(msg)
}

func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (a *ZerologAdapter) Println(args ...any) {
	a.log.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger on top of the standard library's
// *log.Logger, for embedders that would rather not pull in zerolog.
type StdLoggerAdapter struct {
	log *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{log: l}
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	return " " + strings.Join(parts, " ")
}

func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.log.Printf("[INFO] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	all := append([]Field{Err(err)}, fields...)
	a.log.Printf("[ERROR] %s%s", msg, formatFields(all))
}

func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.log.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.log.Printf(format, args...)
}

func (a *StdLoggerAdapter) Println(args ...any) {
	a.log.Println(args...)
}
