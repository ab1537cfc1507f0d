// Package config loads application configuration from a config file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Locale   LocaleConfig
	Goal     GoalConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Format is "json" or "human".
	Format string
	Level  string
}

// LocaleConfig holds localization settings.
type LocaleConfig struct {
	// Language is a BCP 47 tag, one of en, hi or mr.
	Language string
}

// GoalConfig holds gamification targets.
type GoalConfig struct {
	// The tag is required: field name matching does not bridge the
	// underscore in the key.
	MonthlySavings int64 `mapstructure:"monthly_savings"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// PAISAPAL_, e.g. PAISAPAL_DATABASE_PATH.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "paisapal", "paisapal.db"))
	v.SetDefault("log.format", "json")
	v.SetDefault("log.level", "info")
	v.SetDefault("locale.language", "en")
	v.SetDefault("goal.monthly_savings", 20000)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PAISAPAL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "paisapal"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAISAPAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// ConfigureLogging applies the log settings to the global zerolog logger.
func ConfigureLogging(c LogConfig) {
	if c.Format == "human" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
