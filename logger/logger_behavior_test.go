package logger

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(opts ...Option) (*Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := New(append([]Option{WithOutput(buf)}, opts...)...)
	l.now = func() time.Time { return fixedNow }
	return l, buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

// countingStringer records how many times it has been rendered.
type countingStringer struct{ calls *int }

func (c countingStringer) String() string {
	*c.calls++
	return "counted"
}

func TestLeveledEntryPoints(t *testing.T) {
	l, buf := newTestLogger()
	l.DebugAt("d", testSite)
	l.InfoAt("i", testSite)
	l.WarningAt("w", testSite)
	l.ErrorAt("e", testSite)
	l.PlainAt("p", testSite)

	assert.Equal(t, []string{
		"2024-05-01 10:42:07 ✏️ DEBUG d",
		"2024-05-01 10:42:07 ℹ️ INFO i",
		"2024-05-01 10:42:07 ⚠️ WARNING [main.go]:42 main.run -> w",
		"2024-05-01 10:42:07 ❌ ERROR [main.go]:42 main.run -> e",
		"p",
	}, lines(buf))
}

func TestDisabledDecorationsMatchPlain(t *testing.T) {
	l, buf := newTestLogger()
	c := l.Config()
	c.SetTimestampLevels(0)
	c.SetIconLevels(0)
	c.SetLevelNameLevels(0)
	c.SetCallSiteLevels(0)

	entries := []func(any, CallSite){l.DebugAt, l.InfoAt, l.WarningAt, l.ErrorAt}
	for _, entry := range entries {
		buf.Reset()
		entry("same message", testSite)
		leveled := buf.String()

		buf.Reset()
		l.PlainAt("same message", testSite)
		assert.Equal(t, buf.String(), leveled)
	}
}

func TestCallSiteOnWarningAndErrorByDefault(t *testing.T) {
	l, buf := newTestLogger()
	tag := regexp.MustCompile(`\[logger_behavior_test\.go\]:\d+ logger\.TestCallSiteOnWarningAndErrorByDefault ->`)

	l.Debug("d")
	l.Info("i")
	for _, line := range lines(buf) {
		assert.NotRegexp(t, tag, line)
		assert.NotContains(t, line, "->")
	}

	buf.Reset()
	l.Warning("w")
	l.Error("e")
	out := lines(buf)
	require.Len(t, out, 2)
	for _, line := range out {
		assert.Regexp(t, tag, line)
	}
}

func TestFormattedEntryPoints(t *testing.T) {
	l, buf := newTestLogger()
	c := l.Config()
	c.SetTimestampLevels(0)
	c.SetIconLevels(0)
	c.SetCallSiteLevels(0)

	l.Debugf("%d", 1)
	l.Infof("%s", "two")
	l.Warningf("%v", 3.5)
	l.Errorf("%q", "four")
	l.Plainf("[%03d]", 5)

	assert.Equal(t, []string{"DEBUG 1", "INFO two", "WARNING 3.5", `ERROR "four"`, "[005]"}, lines(buf))
}

func TestLogAt(t *testing.T) {
	l, buf := newTestLogger()
	l.Config().SetTimestampLevels(0)

	l.LogAt(ErrorLevel, "bad", CallSite{File: "db.go", Line: 9, Function: "db.Open"})
	l.LogAt(Level(42), "unknown level", testSite)

	assert.Equal(t, []string{"❌ ERROR [db.go]:9 db.Open -> bad", "unknown level"}, lines(buf))
}

func TestTimestampUsesClockAtFormatTime(t *testing.T) {
	l, buf := newTestLogger()
	l.Config().SetIconLevels(0)
	l.Config().SetLevelNameLevels(0)

	ticks := 0
	l.now = func() time.Time {
		ticks++
		return fixedNow.Add(time.Duration(ticks) * time.Second)
	}
	l.Info("a")
	l.Info("b")

	assert.Equal(t, []string{"2024-05-01 10:42:08 a", "2024-05-01 10:42:09 b"}, lines(buf))
}

func TestReleaseModeIsSilent(t *testing.T) {
	l, buf := newTestLogger()
	SetDebugMode(false)
	defer SetDebugMode(true)
	require.False(t, DebugMode())

	calls, ticks := 0, 0
	l.now = func() time.Time {
		ticks++
		return fixedNow
	}
	msg := countingStringer{calls: &calls}

	l.Debug(msg)
	l.Info(msg)
	l.Warning(msg)
	l.Error(msg)
	l.Plain(msg)
	l.DebugAt(msg, testSite)
	l.InfoAt(msg, testSite)
	l.WarningAt(msg, testSite)
	l.ErrorAt(msg, testSite)
	l.PlainAt(msg, testSite)
	l.LogAt(InfoLevel, msg, testSite)
	l.Infof("%v", msg)
	l.Plainf("%v", msg)

	assert.Empty(t, buf.String())
	assert.Zero(t, calls, "message must not be rendered in release mode")
	assert.Zero(t, ticks, "clock must not be read in release mode")

	SetDebugMode(true)
	l.Info(msg)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, ticks)
}

func TestIndependentLoggers(t *testing.T) {
	t.Parallel()

	a, bufA := newTestLogger()
	b, bufB := newTestLogger()
	a.Config().SetIconOverride(InfoLevel, "A")
	b.Config().SetLevelNameLevels(0)

	a.InfoAt("x", testSite)
	b.InfoAt("x", testSite)

	assert.Equal(t, "2024-05-01 10:42:07 A INFO x\n", bufA.String())
	assert.Equal(t, "2024-05-01 10:42:07 ℹ️ x\n", bufB.String())
}

func TestSharedConfig(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	a, bufA := newTestLogger(WithConfig(c))
	b, bufB := newTestLogger(WithConfig(c))
	require.Same(t, c, a.Config())

	c.SetTimestampLevels(0)
	a.InfoAt("x", testSite)
	b.InfoAt("x", testSite)
	assert.Equal(t, bufA.String(), bufB.String())
	assert.Equal(t, "ℹ️ INFO x\n", bufA.String())
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	t.Parallel()

	l := New(WithConfig(nil), WithOutput(nil))
	assert.NotNil(t, l.Config())
	assert.NotNil(t, l.out)
}

func TestDefaultLoggerAndPackageFunctions(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	l, buf := newTestLogger()
	l.Config().SetTimestampLevels(0)
	l.Config().SetIconLevels(0)
	SetDefault(l)
	SetDefault(nil)
	require.Same(t, l, Default())

	Debug("d")
	Info("i")
	Warning("w")
	Error("e")
	Plain("p")
	Print("raw")
	Infof("n=%d", 3)
	Plainf("%s!", "hey")
	ErrorAt("x", CallSite{File: "a/b.go", Line: 1, Function: "b.F"})

	out := lines(buf)
	require.Len(t, out, 9)
	assert.Equal(t, "DEBUG d", out[0])
	assert.Equal(t, "INFO i", out[1])
	assert.Regexp(t, `^WARNING \[logger_behavior_test\.go\]:\d+ logger\.TestDefaultLoggerAndPackageFunctions -> w$`, out[2])
	assert.Regexp(t, `^ERROR \[logger_behavior_test\.go\]:\d+ logger\.TestDefaultLoggerAndPackageFunctions -> e$`, out[3])
	assert.Equal(t, "p", out[4])
	assert.Equal(t, "raw", out[5])
	assert.Equal(t, "INFO n=3", out[6])
	assert.Equal(t, "hey!", out[7])
	assert.Equal(t, "ERROR [b.go]:1 b.F -> x", out[8])
}

func TestLoggerInContext(t *testing.T) {
	t.Parallel()

	t.Run("from nil context return default logger", func(t *testing.T) {
		t.Parallel()
		var ctx context.Context
		assert.Same(t, Default(), FromContext(ctx))
	})

	t.Run("from empty context return default logger", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, Default(), FromContext(context.Background()))
	})

	t.Run("context with a logger return that logger", func(t *testing.T) {
		t.Parallel()
		l, _ := newTestLogger()
		ctx := WithContext(context.Background(), l)
		assert.Same(t, l, FromContext(ctx))
	})
}
