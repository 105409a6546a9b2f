package logger

import (
	"context"
	"fmt"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide logger used by the package-level functions.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey, l)
}

// FromContext returns the logger stored in ctx, or Default if there is none.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey).(*Logger); ok && l != nil {
			return l
		}
	}
	return Default()
}

type contextKeyType struct{}

var contextKey = contextKeyType{}

// --- Package-level logging on the default logger ---

// Debug logs msg at DEBUG level on the default logger.
func Debug(msg any) {
	if !DebugMode() {
		return
	}
	Default().leveled(DebugLevel, msg, callerSite(2))
}

// Info logs msg at INFO level on the default logger.
func Info(msg any) {
	if !DebugMode() {
		return
	}
	Default().leveled(InfoLevel, msg, callerSite(2))
}

// Warning logs msg at WARNING level on the default logger.
func Warning(msg any) {
	if !DebugMode() {
		return
	}
	Default().leveled(WarningLevel, msg, callerSite(2))
}

// Error logs msg at ERROR level on the default logger.
func Error(msg any) {
	if !DebugMode() {
		return
	}
	Default().leveled(ErrorLevel, msg, callerSite(2))
}

// Plain logs msg without decoration on the default logger.
func Plain(msg any) {
	if !DebugMode() {
		return
	}
	Default().write(event{msg: msg})
}

// Print is Plain under the name used for one-shot console dumps.
func Print(msg any) {
	if !DebugMode() {
		return
	}
	Default().write(event{msg: msg})
}

// Debugf logs a formatted DEBUG message on the default logger.
func Debugf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	Default().leveled(DebugLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Infof logs a formatted INFO message on the default logger.
func Infof(format string, v ...any) {
	if !DebugMode() {
		return
	}
	Default().leveled(InfoLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Warningf logs a formatted WARNING message on the default logger.
func Warningf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	Default().leveled(WarningLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Errorf logs a formatted ERROR message on the default logger.
func Errorf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	Default().leveled(ErrorLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Plainf logs a formatted undecorated message on the default logger.
func Plainf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	Default().write(event{msg: fmt.Sprintf(format, v...)})
}

// DebugAt logs msg at DEBUG level on the default logger attributed to site.
func DebugAt(msg any, site CallSite) { Default().DebugAt(msg, site) }

// InfoAt logs msg at INFO level on the default logger attributed to site.
func InfoAt(msg any, site CallSite) { Default().InfoAt(msg, site) }

// WarningAt logs msg at WARNING level on the default logger attributed to site.
func WarningAt(msg any, site CallSite) { Default().WarningAt(msg, site) }

// ErrorAt logs msg at ERROR level on the default logger attributed to site.
func ErrorAt(msg any, site CallSite) { Default().ErrorAt(msg, site) }

// PlainAt logs msg without decoration on the default logger.
func PlainAt(msg any, site CallSite) { Default().PlainAt(msg, site) }
