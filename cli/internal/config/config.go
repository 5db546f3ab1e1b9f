// Package config loads CLI settings from config files, .env files,
// environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tplib/comfort/runtime/client"
)

// AppFs is the filesystem config, .env and schema files are read from.
var AppFs = afero.NewOsFs()

// EnvPrefix prefixes environment variables, e.g. COMFORT_DATABASE.
const EnvPrefix = "COMFORT"

// Config holds the application configuration
type Config struct {
	Provider       string        `mapstructure:"provider" validate:"required,oneof=sqlite sqlite3 mysql postgres postgresql"`
	Database       string        `mapstructure:"database" validate:"required"`
	Schema         string        `mapstructure:"schema"`
	Debug          bool          `mapstructure:"debug"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gte=0"`
}

// Options control where configuration is read from.
type Options struct {
	// ConfigFile overrides the config file search.
	ConfigFile string
	// Flags are bound over file and environment values when set.
	Flags *pflag.FlagSet
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"provider": "provider",
	"db":       "database",
	"schema":   "schema",
	"debug":    "debug",
	"timeout":  "connect_timeout",
}

// Load loads configuration from various sources. Precedence from lowest to
// highest: defaults, config file, .env, .env.local, environment, flags.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetFs(AppFs)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(".comfort")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "comfort"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("provider", string(client.SQLite))
	v.SetDefault("database", "comfort.db")
	v.SetDefault("schema", "comfort.schema")
	v.SetDefault("debug", false)
	v.SetDefault("connect_timeout", client.DefaultConnectTimeout)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := loadDotenv(".env", false); err != nil {
		return nil, err
	}
	if err := loadDotenv(".env.local", true); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotenv sets variables from a .env style file. Unless override is
// set, variables already present in the environment win.
func loadDotenv(name string, override bool) error {
	f, err := AppFs.Open(name)
	if err != nil {
		return nil
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	for k, val := range vars {
		if _, exists := lookupEnv(k); exists && !override {
			continue
		}
		if err := setEnv(k, val); err != nil {
			return err
		}
	}
	return nil
}

// ClientConfig converts the settings into a client configuration.
func (c *Config) ClientConfig() (client.Config, error) {
	provider, err := client.ParseProvider(c.Provider)
	if err != nil {
		return client.Config{}, err
	}
	return client.Config{
		Provider:       provider,
		DSN:            c.Database,
		ConnectTimeout: c.ConnectTimeout,
	}, nil
}
