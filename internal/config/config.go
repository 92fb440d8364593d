// Package config provides configuration loading and validation for the fpgrowth CLI.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fpgrowth/mining"
)

// Sentinel validation errors.
var (
	ErrInvalidMinSupport = errors.New("min support must be a finite non-negative number")
	ErrInvalidRelative   = errors.New("relative min support must be within [0, 1]")
	ErrInvalidMaxLength  = errors.New("max length cannot be negative")
	ErrInvalidSeparator  = errors.New("separator must not be empty")
	ErrInvalidFormat     = errors.New("unknown output format")
)

// Default configuration values.
const (
	EnvPrefix          = "FPGROWTH"
	DefaultConfigName  = ".fpgrowth"
	defaultMinSupport  = 1.0
	defaultSeparator   = ","
	defaultFormat      = "table"
	defaultLogLevel    = "warning"
	defaultPatternBase = "weighted"
)

// Formats lists the accepted output formats.
var Formats = []string{"table", "json", "yaml"}

// Config holds all configuration of a mining run.
type Config struct {
	MinSupport  float64 `mapstructure:"min_support"`
	Relative    bool    `mapstructure:"relative"`
	PatternBase string  `mapstructure:"pattern_base"`
	MaxLength   int     `mapstructure:"max_length"`
	Separator   string  `mapstructure:"separator"`
	Format      string  `mapstructure:"format"`
	Verify      bool    `mapstructure:"verify"`
	LogLevel    string  `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults sets default configuration values.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("min_support", defaultMinSupport)
	v.SetDefault("relative", false)
	v.SetDefault("pattern_base", defaultPatternBase)
	v.SetDefault("max_length", 0)
	v.SetDefault("separator", defaultSeparator)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("verify", false)
	v.SetDefault("log_level", defaultLogLevel)
}

// Load reads the optional config file into v, then unmarshals and validates.
// With an empty configPath the file is searched as .fpgrowth.{yaml,json,toml}
// in the working and home directories; a missing file is not an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if math.IsNaN(c.MinSupport) || math.IsInf(c.MinSupport, 0) || c.MinSupport < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMinSupport, c.MinSupport)
	}
	if c.Relative && c.MinSupport > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidRelative, c.MinSupport)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxLength, c.MaxLength)
	}
	if c.Separator == "" {
		return ErrInvalidSeparator
	}
	if _, err := mining.ParsePatternBase(c.PatternBase); err != nil {
		return err
	}
	if !isFormat(c.Format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidFormat, c.Format, strings.Join(Formats, ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// MiningOptions translates the config into mining options.
func (c *Config) MiningOptions() []mining.Option {
	pb, _ := mining.ParsePatternBase(c.PatternBase)
	return []mining.Option{
		mining.WithPatternBase(pb),
		mining.WithMaxLength(c.MaxLength),
	}
}

// Threshold returns the raw count threshold for n transactions.
func (c *Config) Threshold(n int) (float64, error) {
	if !c.Relative {
		return c.MinSupport, nil
	}
	return mining.AbsoluteSupport(c.MinSupport, n)
}

func isFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
