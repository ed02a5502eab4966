// SPDX-License-Identifier: MIT

// Package config loads benchplot settings with viper.
//
// Precedence, highest first: command-line flags, BENCHPLOT_* environment
// variables, the YAML file given with --config, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BENCHPLOT_DPI or
// BENCHPLOT_LOG_LEVEL.
const EnvPrefix = "BENCHPLOT"

// Keys.
const (
	KeyOutputDir   = "output_dir"
	KeyDPI         = "dpi"
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyRepetitions = "repetitions"
	KeySeed        = "seed"
	KeyShow        = "show"
	KeySave        = "save"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	OutputDir   string    `mapstructure:"output_dir" yaml:"output_dir"`
	DPI         int       `mapstructure:"dpi" yaml:"dpi"`
	Width       float64   `mapstructure:"width" yaml:"width"`   // inches
	Height      float64   `mapstructure:"height" yaml:"height"` // inches
	Repetitions int       `mapstructure:"repetitions" yaml:"repetitions"`
	Seed        int64     `mapstructure:"seed" yaml:"seed"`
	Show        bool      `mapstructure:"show" yaml:"show"`
	Save        bool      `mapstructure:"save" yaml:"save"`
	Log         LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, "graphs")
	v.SetDefault(KeyDPI, 500)
	v.SetDefault(KeyWidth, 6.4)
	v.SetDefault(KeyHeight, 4.8)
	v.SetDefault(KeyRepetitions, 1)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyShow, false)
	v.SetDefault(KeySave, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"out":        KeyOutputDir,
	"dpi":        KeyDPI,
	"width":      KeyWidth,
	"height":     KeyHeight,
	"reps":       KeyRepetitions,
	"seed":       KeySeed,
	"show":       KeyShow,
	"save":       KeySave,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
}

// BindFlags binds every known flag present in fs to its key. Flags missing
// from fs are skipped, so each command binds only what it declares.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load resolves the configuration from v. file, when non-empty, is read as
// the config file and must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks numeric ranges.
func (c Config) Validate() error {
	switch {
	case c.DPI <= 0:
		return fmt.Errorf("%w: %s=%d must be > 0", ErrInvalid, KeyDPI, c.DPI)
	case c.Width <= 0:
		return fmt.Errorf("%w: %s=%g must be > 0", ErrInvalid, KeyWidth, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: %s=%g must be > 0", ErrInvalid, KeyHeight, c.Height)
	case c.Repetitions < 1:
		return fmt.Errorf("%w: %s=%d must be ≥ 1", ErrInvalid, KeyRepetitions, c.Repetitions)
	case c.Save && c.OutputDir == "":
		return fmt.Errorf("%w: %s must be set when saving", ErrInvalid, KeyOutputDir)
	}

	return nil
}
