// Package config loads lvleet settings from defaults, an optional config
// file, LVLEET_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvleet/runner"
)

// EnvPrefix prefixes every environment variable, e.g. LVLEET_TIMEOUT.
const EnvPrefix = "LVLEET"

// Keys understood by Load.
const (
	KeyCasesDir    = "cases_dir"
	KeyTimeout     = "timeout"
	KeyParallelism = "parallelism"
	KeyLogLevel    = "log_level"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all configuration for the CLI.
type Config struct {
	CasesDir    string        `mapstructure:"cases_dir"` // empty selects the embedded suites
	Timeout     time.Duration `mapstructure:"timeout"`
	Parallelism int           `mapstructure:"parallelism"`
	LogLevel    string        `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCasesDir, "")
	v.SetDefault(KeyTimeout, runner.DefaultTimeout.String())
	v.SetDefault(KeyParallelism, 1)
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads configPath (when non-empty) into v, decodes the merged settings
// and validates them.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout %v must be positive: %w", c.Timeout, ErrInvalid)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("config: parallelism %d must be at least 1: %w", c.Parallelism, ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.LogLevel, ErrInvalid)
	}

	return nil
}

// Level returns the parsed log level, info when it cannot be parsed.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// RunnerOptions translates the configuration into runner options.
func (c *Config) RunnerOptions(log *zap.Logger) []runner.Option {
	return []runner.Option{
		runner.WithTimeout(c.Timeout),
		runner.WithParallelism(c.Parallelism),
		runner.WithLogger(log),
	}
}
