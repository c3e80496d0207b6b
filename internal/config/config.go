// Package config defines the calckit application configuration and loads
// it from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/iwvelando/calckit/pkg/validation"
	"github.com/spf13/viper"
)

// Preference store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Configuration holds all configuration for calckit.
type Configuration struct {
	Logging        LoggingConfig     `mapstructure:"logging" yaml:"logging,omitempty"`
	Output         OutputConfig      `mapstructure:"output" yaml:"output,omitempty"`
	Preferences    PreferencesConfig `mapstructure:"preferences" yaml:"preferences,omitempty"`
	Locale         string            `mapstructure:"locale" yaml:"locale,omitempty"`
	DebounceMillis int               `mapstructure:"debounceMillis" yaml:"debounceMillis,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json
}

// PreferencesConfig selects where user preferences are kept.
type PreferencesConfig struct {
	Backend string      `mapstructure:"backend" yaml:"backend,omitempty"` // memory, redis
	Redis   RedisConfig `mapstructure:"redis" yaml:"redis,omitempty"`
}

// RedisConfig locates the redis preference cache.
type RedisConfig struct {
	Address   string `mapstructure:"address" yaml:"address,omitempty"`
	Password  string `mapstructure:"password" yaml:"password,omitempty"`
	DB        int    `mapstructure:"db" yaml:"db,omitempty"`
	KeyPrefix string `mapstructure:"keyPrefix" yaml:"keyPrefix,omitempty"`
	TTLHours  int    `mapstructure:"ttlHours" yaml:"ttlHours,omitempty"`
}

// TTL returns how long a stored preference lives.
func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLHours) * time.Hour
}

// Debounce returns the recalculation delay.
func (c *Configuration) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("preferences.backend", BackendMemory)
	v.SetDefault("preferences.redis.address", "localhost:6379")
	v.SetDefault("preferences.redis.password", "")
	v.SetDefault("preferences.redis.db", 0)
	v.SetDefault("preferences.redis.keyPrefix", "")
	v.SetDefault("preferences.redis.ttlHours", constants.DefaultPreferenceTTLHours)
	v.SetDefault("locale", constants.DefaultLocale)
	v.SetDefault("debounceMillis", constants.DefaultDebounceMillis)
}

// LoadConfiguration loads the YAML configuration at configPath. Values can
// be overridden with CALCKIT_* environment variables, e.g. CALCKIT_LOCALE
// or CALCKIT_PREFERENCES_BACKEND. An empty path, or the default file name
// when no such file exists, yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		_, statErr := os.Stat(configPath)
		if !(errors.Is(statErr, fs.ErrNotExist) && configPath == constants.DefaultConfigFile) {
			v.SetConfigFile(configPath)
			v.SetConfigType("yml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks the enumerated settings.
func (c *Configuration) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	switch c.Preferences.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Preferences.Redis.Address == "" {
			return errors.New("redis preference backend requires preferences.redis.address")
		}
	default:
		return fmt.Errorf("invalid preference backend: %s", c.Preferences.Backend)
	}
	if c.DebounceMillis <= 0 {
		return fmt.Errorf("debounceMillis must be positive, got %d", c.DebounceMillis)
	}
	return nil
}
