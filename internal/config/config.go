package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "P4SSW0RD"

// ErrConfigTypeRequired is returned by LoadBytes when configType is blank.
var ErrConfigTypeRequired = errors.New("config: config type is required")

// Config is the CLI configuration.
type Config struct {
	// Cost is the bcrypt work factor for hash and simulate.  Zero selects
	// password.DefaultCost, as it does in the library.
	Cost int `mapstructure:"cost" validate:"omitempty,gte=4,lte=31"`

	// LogLevel is an hclog level name.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error off"`

	Calibrate Calibrate `mapstructure:"calibrate"`
}

// Calibrate configures the calibrate command.
type Calibrate struct {
	// Target is the hashing time the chosen cost must reach.
	Target time.Duration `mapstructure:"target" validate:"gt=0"`

	// MaxCost bounds the search.
	MaxCost int `mapstructure:"max_cost" validate:"gte=4,lte=31"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("cost", password.DefaultCost)
	v.SetDefault("log_level", "info")
	v.SetDefault("calibrate.target", 250*time.Millisecond)
	v.SetDefault("calibrate.max_cost", 16)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path (skipped when empty), applies
// environment overrides and validates the result.
//
// The file type is inferred by viper from the extension.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return decode(v)
}

// LoadBytes reads configuration from memory.  configType is a format
// supported by viper (e.g. "yaml", "json", "toml").
func LoadBytes(configType string, data []byte) (*Config, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, ErrConfigTypeRequired
	}

	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", configType, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	val, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := val.Validate(&cfg); err != nil {
		return nil, err
	}
	if cfg.Cost == 0 {
		cfg.Cost = password.DefaultCost
	}
	return &cfg, nil
}
