package logger

import (
	"fmt"
	"strings"
)

// Levels define log severity.
type Level int

const (
	// DebugLevel is for development traces.
	DebugLevel Level = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// WarningLevel is for recoverable problems.
	WarningLevel
	// ErrorLevel is for failures.
	ErrorLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR"}

var levelIcons = [...]string{"✏️", "ℹ️", "⚠️", "❌"}

// AllLevels returns all supported levels, ordered from least to most severe.
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarningLevel, ErrorLevel}
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= ErrorLevel
}

// Name returns the uppercase display name of the level.
func (l Level) Name() string {
	if !l.Valid() {
		return ""
	}
	return levelNames[l]
}

// Icon returns the default icon of the level.
func (l Level) Icon() string {
	if !l.Valid() {
		return ""
	}
	return levelIcons[l]
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name. Matching is case-insensitive and WARN is
// accepted as an alias of WARNING.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// LevelSet is a set of levels.
type LevelSet uint8

// NewLevelSet returns a set holding the given levels. Invalid levels are ignored.
func NewLevelSet(levels ...Level) LevelSet {
	var s LevelSet
	for _, l := range levels {
		s = s.Add(l)
	}
	return s
}

// AllLevelsSet returns the set of every level.
func AllLevelsSet() LevelSet {
	return NewLevelSet(AllLevels()...)
}

// Has reports whether l is in the set.
func (s LevelSet) Has(l Level) bool {
	return l.Valid() && s&(1<<uint(l)) != 0
}

// Add returns a copy of s with l added.
func (s LevelSet) Add(l Level) LevelSet {
	if !l.Valid() {
		return s
	}
	return s | 1<<uint(l)
}

// Remove returns a copy of s without l.
func (s LevelSet) Remove(l Level) LevelSet {
	if !l.Valid() {
		return s
	}
	return s &^ (1 << uint(l))
}

// Levels returns the members in severity order.
func (s LevelSet) Levels() []Level {
	out := make([]Level, 0, len(levelNames))
	for _, l := range AllLevels() {
		if s.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

func (s LevelSet) String() string {
	names := make([]string, 0, len(levelNames))
	for _, l := range s.Levels() {
		names = append(names, l.Name())
	}
	return strings.Join(names, ",")
}

// MarshalText encodes the set as a comma-separated list of level names.
func (s LevelSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a comma-separated list of level names.
// An empty value or NONE yields the empty set, ALL yields every level.
// LoadEnvConfig skips empty variables, so NONE is the only way to clear a
// set from the environment.
func (s *LevelSet) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "", "NONE":
		*s = 0
		return nil
	case "ALL":
		*s = AllLevelsSet()
		return nil
	}
	var set LevelSet
	for _, p := range strings.Split(string(text), ",") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		l, err := ParseLevel(p)
		if err != nil {
			return err
		}
		set = set.Add(l)
	}
	*s = set
	return nil
}
