package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the console layer: a zerolog console writer combined with a
// severity filter evaluated per target. The console layer receives every
// span and event, subject only to this filter.
type Logger struct {
	zl     zerolog.Logger
	filter Filter
}

// New creates a console logger writing to w with the given filter.
func New(w io.Writer, filter Filter) *Logger {
	zl := zerolog.New(newConsoleWriter(w)).With().Timestamp().Logger()
	return &Logger{zl: zl, filter: filter}
}

// NewDefault creates a console logger on stderr with the "info" floor.
func NewDefault() *Logger {
	return New(os.Stderr, DefaultFilter())
}

// Filter returns the logger's severity filter.
func (l *Logger) Filter() Filter { return l.filter }

// Enabled reports whether a record at the given level for the given target
// would be written.
func (l *Logger) Enabled(target string, level zerolog.Level) bool {
	return l.filter.Enabled(target, level)
}

// Log writes a record at the given level if the filter admits it. Target may
// be empty for application-level records.
func (l *Logger) Log(level zerolog.Level, target, msg string, fields ...map[string]interface{}) {
	if !l.filter.Enabled(target, level) {
		return
	}
	event := l.zl.WithLevel(level)
	if target != "" {
		event = event.Str("target", target)
	}
	for _, fm := range fields {
		for k, v := range fm {
			event = event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.Log(zerolog.DebugLevel, "", msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.Log(zerolog.InfoLevel, "", msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.Log(zerolog.WarnLevel, "", msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	l.Log(zerolog.ErrorLevel, "", msg, fields...)
}

// --- Global logger ---

var globalLogger *Logger

// SetGlobal sets the global logger instance.
func SetGlobal(l *Logger) { globalLogger = l }

// Global returns the global logger, creating a default one if needed.
func Global() *Logger {
	if globalLogger == nil {
		globalLogger = NewDefault()
	}
	return globalLogger
}

// Package-level convenience functions delegate to the global logger.

func Debug(msg string, fields ...map[string]interface{}) { Global().Debug(msg, fields...) }
func Info(msg string, fields ...map[string]interface{})  { Global().Info(msg, fields...) }
func Warn(msg string, fields ...map[string]interface{})  { Global().Warn(msg, fields...) }
func Error(msg string, fields ...map[string]interface{}) { Global().Error(msg, fields...) }

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("metrics initialized", logger.Fields("host", host, "port", port))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// newConsoleWriter builds the plain-text console writer. Output is ANSI-free
// so it stays readable in container log collectors.
func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
		FormatLevel: func(i interface{}) string {
			switch lvl := strings.ToUpper(fmt.Sprintf("%s", i)); lvl {
			case "DEBUG":
				return "[DBG]"
			case "INFO":
				return "[INF]"
			case "WARN":
				return "[WRN]"
			case "ERROR":
				return "[ERR]"
			case "FATAL":
				return "[FTL]"
			default:
				return fmt.Sprintf("[%s]", lvl)
			}
		},
	}
}
