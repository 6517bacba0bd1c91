// Package config loads the binddemo settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the demo configuration.
type Config struct {
	Profile ProfileConfig
	Log     LogConfig
}

// ProfileConfig is the profile the editor starts from.
type ProfileConfig struct {
	Name       string
	Email      string
	Age        int
	Newsletter bool
}

// LogConfig controls the debug log. An empty Path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// SlogLevel parses Level; an empty level is debug.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	if c.Level == "" {
		return slog.LevelDebug, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	return l, nil
}

// Load reads configuration from file and env. Env var overrides use prefix BINDDEMO_,
// e.g. BINDDEMO_PROFILE_NAME.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("profile.name", "")
	v.SetDefault("profile.email", "")
	v.SetDefault("profile.age", 0)
	v.SetDefault("profile.newsletter", false)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "debug")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BINDDEMO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "binddemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BINDDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist and parse.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
