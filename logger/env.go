package logger

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the logger configuration read from the environment.
// Variables that are unset or empty keep the NewConfig defaults. Level lists
// are comma-separated names, or ALL or NONE; use NONE to clear a list.
type EnvConfig struct {
	Debug           bool              `env:"EVRLOG_DEBUG"`
	Colorize        bool              `env:"EVRLOG_COLORIZE"`
	TimestampFormat string            `env:"EVRLOG_TIMESTAMP_FORMAT"`
	TimestampLevels LevelSet          `env:"EVRLOG_TIMESTAMP_LEVELS"`
	IconLevels      LevelSet          `env:"EVRLOG_ICON_LEVELS"`
	LevelNameLevels LevelSet          `env:"EVRLOG_LEVEL_NAME_LEVELS"`
	CallSiteLevels  LevelSet          `env:"EVRLOG_CALLSITE_LEVELS"`
	Icons           map[string]string `env:"EVRLOG_ICONS" envKeyValSeparator:"="`
}

// LoadEnvConfig parses the EVRLOG_* environment variables.
func LoadEnvConfig() (*EnvConfig, error) {
	defaults := NewConfig()
	envVars := EnvConfig{
		Debug:           defaultDebugMode,
		TimestampFormat: defaults.TimestampFormat(),
		TimestampLevels: defaults.TimestampLevels(),
		IconLevels:      defaults.IconLevels(),
		LevelNameLevels: defaults.LevelNameLevels(),
		CallSiteLevels:  defaults.CallSiteLevels(),
	}
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *EnvConfig) error {
	envError := make([]string, 0)
	for name := range envVars.Icons {
		if _, err := ParseLevel(name); err != nil {
			envError = append(envError, fmt.Sprintf("EVRLOG_ICONS has unknown level %q", name))
		}
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// Apply copies the parsed values into c. The debug flag is process-wide and
// is not touched; pass e.Debug to SetDebugMode for that.
func (e *EnvConfig) Apply(c *Config) {
	c.SetColorize(e.Colorize)
	c.SetTimestampFormat(e.TimestampFormat)
	c.SetTimestampLevels(e.TimestampLevels)
	c.SetIconLevels(e.IconLevels)
	c.SetLevelNameLevels(e.LevelNameLevels)
	c.SetCallSiteLevels(e.CallSiteLevels)
	for name, icon := range e.Icons {
		if l, err := ParseLevel(name); err == nil {
			c.SetIconOverride(l, icon)
		}
	}
}
