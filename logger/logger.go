package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// debugMode gates all output. When false every entry point returns
// before capturing the caller or formatting the message.
var debugMode atomic.Bool

func init() {
	debugMode.Store(defaultDebugMode)
}

// DebugMode reports whether logging output is enabled.
func DebugMode() bool {
	return debugMode.Load()
}

// SetDebugMode enables or disables logging output process-wide.
// It defaults to true, or false when built with -tags release.
func SetDebugMode(on bool) {
	debugMode.Store(on)
}

// Logger writes decorated lines to an output writer.
// A Logger is safe for concurrent use; lines never interleave.
type Logger struct {
	config *Config

	mu  sync.Mutex
	out io.Writer

	now func() time.Time
}

// Option configures a Logger built by New.
type Option func(*Logger)

// WithConfig makes the logger use c. Loggers sharing a Config see each
// other's changes to it.
func WithConfig(c *Config) Option {
	return func(l *Logger) {
		if c != nil {
			l.config = c
		}
	}
}

// WithOutput sets the output writer. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.out = w
		}
	}
}

// New returns a Logger with its own Config from NewConfig unless WithConfig is given.
func New(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	if l.config == nil {
		l.config = NewConfig()
	}
	return l
}

// Config returns the logger's configuration for reading or mutation.
func (l *Logger) Config() *Config {
	return l.config
}

func (l *Logger) write(e event) {
	line := formatLine(l.config.snapshot(), e, l.now())

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line+"\n")
}

func (l *Logger) leveled(level Level, msg any, site CallSite) {
	l.write(event{msg: msg, level: level, leveled: true, site: site})
}

// --- Leveled logging, call site captured automatically ---

// Debug logs msg at DEBUG level.
func (l *Logger) Debug(msg any) {
	if !DebugMode() {
		return
	}
	l.leveled(DebugLevel, msg, callerSite(2))
}

// Info logs msg at INFO level.
func (l *Logger) Info(msg any) {
	if !DebugMode() {
		return
	}
	l.leveled(InfoLevel, msg, callerSite(2))
}

// Warning logs msg at WARNING level.
func (l *Logger) Warning(msg any) {
	if !DebugMode() {
		return
	}
	l.leveled(WarningLevel, msg, callerSite(2))
}

// Error logs msg at ERROR level.
func (l *Logger) Error(msg any) {
	if !DebugMode() {
		return
	}
	l.leveled(ErrorLevel, msg, callerSite(2))
}

// Plain logs msg without any decoration.
func (l *Logger) Plain(msg any) {
	if !DebugMode() {
		return
	}
	l.write(event{msg: msg})
}

// --- Leveled logging with an explicit call site ---

// DebugAt logs msg at DEBUG level attributed to site.
func (l *Logger) DebugAt(msg any, site CallSite) {
	if !DebugMode() {
		return
	}
	l.leveled(DebugLevel, msg, site)
}

// InfoAt logs msg at INFO level attributed to site.
func (l *Logger) InfoAt(msg any, site CallSite) {
	if !DebugMode() {
		return
	}
	l.leveled(InfoLevel, msg, site)
}

// WarningAt logs msg at WARNING level attributed to site.
func (l *Logger) WarningAt(msg any, site CallSite) {
	if !DebugMode() {
		return
	}
	l.leveled(WarningLevel, msg, site)
}

// ErrorAt logs msg at ERROR level attributed to site.
func (l *Logger) ErrorAt(msg any, site CallSite) {
	if !DebugMode() {
		return
	}
	l.leveled(ErrorLevel, msg, site)
}

// PlainAt logs msg without decoration. The site is accepted for symmetry
// with the leveled forms and is never printed.
func (l *Logger) PlainAt(msg any, _ CallSite) {
	if !DebugMode() {
		return
	}
	l.write(event{msg: msg})
}

// LogAt logs msg at level attributed to site. Invalid levels are logged
// without decoration.
func (l *Logger) LogAt(level Level, msg any, site CallSite) {
	if !DebugMode() {
		return
	}
	l.write(event{msg: msg, level: level, leveled: level.Valid(), site: site})
}

// --- Formatted logging (fmt.Sprintf style) ---

// Debugf logs a DEBUG message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	l.leveled(DebugLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Infof logs an INFO message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	if !DebugMode() {
		return
	}
	l.leveled(InfoLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Warningf logs a WARNING message formatted with fmt.Sprintf.
func (l *Logger) Warningf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	l.leveled(WarningLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Errorf logs an ERROR message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	l.leveled(ErrorLevel, fmt.Sprintf(format, v...), callerSite(2))
}

// Plainf logs an undecorated message formatted with fmt.Sprintf.
func (l *Logger) Plainf(format string, v ...any) {
	if !DebugMode() {
		return
	}
	l.write(event{msg: fmt.Sprintf(format, v...)})
}
