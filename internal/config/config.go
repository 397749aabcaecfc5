// Package config loads the chapter03 configuration with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved configuration.
type Config struct {
	Dialect  string `mapstructure:"dialect"`   // sqlite, postgres or mysql
	Driver   string `mapstructure:"driver"`    // pgx or pq, postgres only
	DSN      string `mapstructure:"dsn"`       // empty selects the dialect default
	LogLevel string `mapstructure:"log_level"` // zap level name
}

// EnvPrefix prefixes every environment variable, e.g. CHAPTER03_DSN.
const EnvPrefix = "CHAPTER03"

// TestEnvPrefix selects the database of the test suites, e.g.
// CHAPTER03_TEST_DIALECT.
const TestEnvPrefix = EnvPrefix + "_TEST"

// New returns a viper instance with defaults, the optional chapter03.yaml
// search path and environment binding set up. Callers may override keys
// with v.Set before calling Load.
func New() *viper.Viper {
	return NewWithPrefix(EnvPrefix)
}

// NewWithPrefix is New with environment variables read under prefix.
func NewWithPrefix(prefix string) *viper.Viper {
	v := viper.New()

	v.SetDefault("dialect", "sqlite")
	v.SetDefault("driver", "pgx")
	v.SetDefault("dsn", "")
	v.SetDefault("log_level", "info")

	v.SetConfigName("chapter03")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and returns the validated Config.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the dialect and driver names.
func (c Config) Validate() error {
	switch c.Dialect {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("dialect must be sqlite, postgres or mysql, got: %q", c.Dialect)
	}
	if c.Dialect == "postgres" && c.Driver != "pgx" && c.Driver != "pq" {
		return fmt.Errorf("driver must be pgx or pq, got: %q", c.Driver)
	}
	return nil
}
