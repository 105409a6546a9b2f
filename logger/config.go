package logger

import (
	"maps"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Config holds the decoration toggles of a Logger.
// It is safe for concurrent use: setters take effect for every line
// formatted after they return, and the last writer wins.
type Config struct {
	mu sync.RWMutex

	timestampLevels LevelSet
	iconLevels      LevelSet
	levelNameLevels LevelSet
	callSiteLevels  LevelSet

	iconOverrides map[Level]string

	timestampFormat string
	timestamp       *timeRenderer

	colorize bool
}

// NewConfig returns a Config with every decoration enabled for every level,
// except call-site info which is enabled for WARNING and ERROR only.
func NewConfig() *Config {
	return &Config{
		timestampLevels: AllLevelsSet(),
		iconLevels:      AllLevelsSet(),
		levelNameLevels: AllLevelsSet(),
		callSiteLevels:  NewLevelSet(WarningLevel, ErrorLevel),
		iconOverrides:   map[Level]string{},
		timestampFormat: DefaultTimestampFormat,
		timestamp:       compileTimePattern(DefaultTimestampFormat, time.Local),
	}
}

// TimestampLevels returns the levels that print a timestamp.
func (c *Config) TimestampLevels() LevelSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timestampLevels
}

// SetTimestampLevels sets the levels that print a timestamp.
func (c *Config) SetTimestampLevels(s LevelSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timestampLevels = s
}

// IconLevels returns the levels that print an icon.
func (c *Config) IconLevels() LevelSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.iconLevels
}

// SetIconLevels sets the levels that print an icon.
func (c *Config) SetIconLevels(s LevelSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.iconLevels = s
}

// LevelNameLevels returns the levels that print their name.
func (c *Config) LevelNameLevels() LevelSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.levelNameLevels
}

// SetLevelNameLevels sets the levels that print their name.
func (c *Config) SetLevelNameLevels(s LevelSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levelNameLevels = s
}

// CallSiteLevels returns the levels that print the [file]:line function -> tag.
func (c *Config) CallSiteLevels() LevelSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.callSiteLevels
}

// SetCallSiteLevels sets the levels that print the call-site tag.
func (c *Config) SetCallSiteLevels(s LevelSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callSiteLevels = s
}

// SetIconOverride replaces the default icon of a level.
func (c *Config) SetIconOverride(l Level, icon string) {
	if !l.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.iconOverrides == nil {
		c.iconOverrides = map[Level]string{}
	}
	c.iconOverrides[l] = icon
}

// RemoveIconOverride restores the default icon of a level.
func (c *Config) RemoveIconOverride(l Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.iconOverrides, l)
}

// IconOverrides returns a copy of the icon overrides.
func (c *Config) IconOverrides() map[Level]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.iconOverrides)
}

// Icon returns the icon printed for l: its override if any, else l.Icon().
func (c *Config) Icon(l Level) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.iconLocked(l)
}

func (c *Config) iconLocked(l Level) string {
	if icon, ok := c.iconOverrides[l]; ok {
		return icon
	}
	return l.Icon()
}

// TimestampFormat returns the current timestamp pattern.
func (c *Config) TimestampFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timestampFormat
}

// SetTimestampFormat sets the timestamp pattern (for example "HH:mm:ss.SSS")
// and rebuilds the renderer against the local time zone as it is now.
// The pattern is not validated.
func (c *Config) SetTimestampFormat(format string) {
	r := compileTimePattern(format, time.Local)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timestampFormat = format
	c.timestamp = r
}

// Colorize reports whether level names are colored.
func (c *Config) Colorize() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.colorize
}

// SetColorize toggles ANSI colors on level names.
func (c *Config) SetColorize(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.colorize = on
}

// snapshot is an immutable view of a Config taken for one line.
type snapshot struct {
	timestampLevels LevelSet
	iconLevels      LevelSet
	levelNameLevels LevelSet
	callSiteLevels  LevelSet
	icons           [len(levelNames)]string
	timestamp       *timeRenderer
	colorize        bool
}

func (c *Config) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := snapshot{
		timestampLevels: c.timestampLevels,
		iconLevels:      c.iconLevels,
		levelNameLevels: c.levelNameLevels,
		callSiteLevels:  c.callSiteLevels,
		timestamp:       c.timestamp,
		colorize:        c.colorize,
	}
	for _, l := range AllLevels() {
		s.icons[l] = c.iconLocked(l)
	}
	return s
}

var levelColors = [...]*color.Color{
	DebugLevel:   color.New(color.FgCyan),
	InfoLevel:    color.New(color.FgGreen),
	WarningLevel: color.New(color.FgYellow),
	ErrorLevel:   color.New(color.FgRed),
}

func (s snapshot) levelName(l Level) string {
	if s.colorize {
		return levelColors[l].Sprint(l.Name())
	}
	return l.Name()
}
