// Package config loads pathlab settings from defaults, an optional YAML file,
// PATHLAB_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathlab/telemetry"
)

// EnvPrefix is prepended to every environment key: log_level → PATHLAB_LOG_LEVEL.
const EnvPrefix = "PATHLAB"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat     string `mapstructure:"log_format" yaml:"log_format"`
	Format        string `mapstructure:"format" yaml:"format"`
	OTelEndpoint  string `mapstructure:"otel_endpoint" yaml:"otel_endpoint"`
	ServiceName   string `mapstructure:"service_name" yaml:"service_name"`
	ProgressEvery int    `mapstructure:"progress_every" yaml:"progress_every"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Format:        "text",
		ServiceName:   "pathlab",
		ProgressEvery: 1000,
	}
}

// Load resolves a Config. path may be empty (no file). Flags in fs whose
// names match a key, with '-' read as '_', are bound so that explicitly set
// flags win over every other source. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("format", def.Format)
	v.SetDefault("otel_endpoint", def.OTelEndpoint)
	v.SetDefault("service_name", def.ServiceName)
	v.SetDefault("progress_every", def.ProgressEvery)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if fs != nil {
		var bindErr error
		known := v.AllKeys()
		fs.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !slices.Contains(known, key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerations and bounds.
func (c Config) Validate() error {
	switch {
	case !slices.Contains([]string{"text", "json", "yaml"}, c.Format):
		return fmt.Errorf("%w: format %q (want text, json or yaml)", ErrInvalid, c.Format)
	case !slices.Contains([]string{"text", "json"}, c.LogFormat):
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	case c.ProgressEvery <= 0:
		return fmt.Errorf("%w: progress_every must be positive, got %d", ErrInvalid, c.ProgressEvery)
	}
	if c.OTelEndpoint != "" {
		if _, err := telemetry.ParseEndpoint(c.OTelEndpoint); err != nil {
			return fmt.Errorf("%w: otel_endpoint: %w", ErrInvalid, err)
		}
	}

	return nil
}
