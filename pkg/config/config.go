// Package config loads clicktrack settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/clicktrack/pkg/telemetry"
)

// DefaultFileName is read from the working directory when no path is given.
const DefaultFileName = "clicktrack.toml"

// Config captures the user-adjustable knobs.
type Config struct {
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
	Tracking  TrackingConfig  `toml:"tracking"`

	// Source indicates where the configuration originated (defaults or a file path).
	Source string `toml:"-"`
}

// TelemetryConfig selects and configures the telemetry sink.
type TelemetryConfig struct {
	Mode     string `toml:"mode"`
	Format   string `toml:"format"`
	Output   string `toml:"output"`
	RingSize int    `toml:"ring_size"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// TrackingConfig tunes the click resolver.
type TrackingConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// Default returns the baseline configuration used when no overrides are supplied.
func Default() Config {
	return Config{
		Telemetry: TelemetryConfig{
			Mode:     "stream",
			Format:   "text",
			Output:   "-",
			RingSize: telemetry.DefaultRingSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Source: "<defaults>",
	}
}

// Load reads configuration from disk if present, otherwise returning defaults.
// When path is empty, the loader attempts to read ./clicktrack.toml but
// tolerates a missing file.
func Load(path string) (Config, error) {
	cfg := Default()

	candidate := strings.TrimSpace(path)
	explicit := candidate != ""
	if !explicit {
		candidate = DefaultFileName
	}

	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return cfg, fmt.Errorf("config file %q not found", candidate)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config file %q: %w", candidate, err)
	}

	md, err := toml.DecodeFile(candidate, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config file %q: %w", candidate, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config file %q: unknown keys: %s", candidate, strings.Join(keys, ", "))
	}
	cfg.Source = candidate

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate ensures configuration values are present and sensible.
func (c Config) Validate() error {
	if _, err := telemetry.ParseMode(c.Telemetry.Mode); err != nil {
		return fmt.Errorf("telemetry.mode: %w", err)
	}
	if _, err := telemetry.ParseFormat(c.Telemetry.Format); err != nil {
		return fmt.Errorf("telemetry.format: %w", err)
	}
	if c.Telemetry.RingSize < 0 {
		return errors.New("telemetry.ring_size must not be negative")
	}
	if _, err := NormalizeLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := NormalizeLogFormat(c.Logging.Format); err != nil {
		return err
	}
	if c.Tracking.MaxDepth < 0 {
		return errors.New("tracking.max_depth must not be negative")
	}
	return nil
}

// TelemetrySink converts the telemetry section into a sink configuration.
func (c Config) TelemetrySink() (telemetry.Config, error) {
	mode, err := telemetry.ParseMode(c.Telemetry.Mode)
	if err != nil {
		return telemetry.Config{}, err
	}
	format, err := telemetry.ParseFormat(c.Telemetry.Format)
	if err != nil {
		return telemetry.Config{}, err
	}
	return telemetry.Config{
		Mode:       mode,
		Format:     format,
		OutputPath: c.Telemetry.Output,
		RingSize:   c.Telemetry.RingSize,
	}, nil
}

// NormalizeLogLevel lowercases and validates a log level.
func NormalizeLogLevel(level string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized, nil
	case "":
		return "info", nil
	default:
		return "", fmt.Errorf("logging.level %q is not one of debug|info|warn|error", level)
	}
}

// NormalizeLogFormat lowercases and validates a log format.
func NormalizeLogFormat(format string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "json", "text":
		return normalized, nil
	case "console":
		return "text", nil
	case "":
		return "text", nil
	default:
		return "", fmt.Errorf("logging.format %q is not one of json|text", format)
	}
}
