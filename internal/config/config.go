// Package config loads runtime configuration from the environment, after
// optionally reading a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel      = "PATHLAB_LOG_LEVEL"
	EnvLogFormat     = "PATHLAB_LOG_FORMAT"
	EnvLogCaller     = "PATHLAB_LOG_INCLUDE_CALLER"
	EnvSelection     = "PATHLAB_SELECTION"
	EnvTrace         = "PATHLAB_TRACE"
	EnvOutputFormat  = "PATHLAB_OUTPUT"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultSelection = "linear"
	defaultOutput    = "text"
)

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig
	Engine  EngineConfig
	Trace   TraceConfig
	Output  string // text|json
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// EngineConfig selects the shortest-path strategy.
type EngineConfig struct {
	Selection string // linear|heap
}

// TraceConfig toggles span export to stderr.
type TraceConfig struct {
	Enabled bool
}

// Load reads envFiles (missing files are ignored) into the process
// environment without overriding variables that are already set, then builds
// a Config from the environment with defaults applied.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(valueOrDefault(EnvLogLevel, defaultLogLevel)),
			Format: strings.ToLower(valueOrDefault(EnvLogFormat, defaultLogFormat)),
		},
		Engine: EngineConfig{
			Selection: strings.ToLower(valueOrDefault(EnvSelection, defaultSelection)),
		},
		Output: strings.ToLower(valueOrDefault(EnvOutputFormat, defaultOutput)),
	}

	var err error
	if cfg.Logging.IncludeCaller, err = parseBool(EnvLogCaller); err != nil {
		return Config{}, err
	}
	if cfg.Trace.Enabled, err = parseBool(EnvTrace); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("config: invalid log format %q: must be 'text' or 'json'", c.Logging.Format)
	}
	if c.Engine.Selection != "linear" && c.Engine.Selection != "heap" {
		return fmt.Errorf("config: invalid selection %q: must be 'linear' or 'heap'", c.Engine.Selection)
	}
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("config: invalid output %q: must be 'text' or 'json'", c.Output)
	}

	return nil
}

func valueOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return def
}

func parseBool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s: %w", key, err)
	}

	return b, nil
}
