package logger

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// CallSite is the source location a log call was made from.
// Column is zero when captured automatically; the Go runtime does not report it.
type CallSite struct {
	File     string
	Line     int
	Column   int
	Function string
}

// Tag renders the site as "[<file base name>]:<line> <function> ->".
func (c CallSite) Tag() string {
	return fmt.Sprintf("[%s]:%d %s ->", baseName(c.File), c.Line, c.Function)
}

// baseName returns the last slash-separated segment of path.
func baseName(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// Caller returns the call site skip frames above the function calling Caller.
// Caller(0) is the caller of Caller itself.
func Caller(skip int) CallSite {
	return callerSite(skip + 2)
}

// callerSite returns the call site at the given stack depth, with the
// function reported as package.Function.
func callerSite(depth int) CallSite {
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return CallSite{}
	}
	site := CallSite{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		full := fn.Name()
		if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 {
			full = full[lastSlash+1:]
		}
		site.Function = full
	}
	return site
}

// event is one log call.
type event struct {
	msg     any
	level   Level
	leveled bool
	site    CallSite
}

// formatLine renders e without the trailing newline. Decorations are only
// considered for leveled events and are emitted in a fixed order: timestamp,
// icon, level name, call site, then the message. Empty tokens are skipped so
// the line never has leading, trailing or doubled spaces.
func formatLine(s snapshot, e event, now time.Time) string {
	var b strings.Builder
	add := func(tok string) {
		if tok == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}

	if e.leveled && e.level.Valid() {
		l := e.level
		if s.timestampLevels.Has(l) {
			add(s.timestamp.render(now))
		}
		if s.iconLevels.Has(l) {
			add(s.icons[l])
		}
		if s.levelNameLevels.Has(l) {
			add(s.levelName(l))
		}
		if s.callSiteLevels.Has(l) {
			add(e.site.Tag())
		}
	}
	add(fmt.Sprint(e.msg))
	return b.String()
}
