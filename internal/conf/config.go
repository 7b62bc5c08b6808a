package conf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the application configuration.
type Settings struct {
	Database DatabaseSettings `mapstructure:"database"`
	Scraper  ScraperSettings  `mapstructure:"scraper"`
	Log      LogSettings      `mapstructure:"log"`
}

// DatabaseSettings configures the SQLite database location.
type DatabaseSettings struct {
	Path string `mapstructure:"path"`
}

// ScraperSettings configures the calendar scraper.
type ScraperSettings struct {
	URL    string `mapstructure:"url"`
	Source string `mapstructure:"source"`
}

// LogSettings configures log output.
type LogSettings struct {
	Level string `mapstructure:"level"`
}

// Load initializes viper and returns the resolved settings. A missing
// config file is not an error; defaults and environment variables
// (CHSEVENTS_*) still apply.
func Load() (*Settings, error) {
	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return settings, nil
}

func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/charleston-events")

	viper.SetEnvPrefix("chsevents")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("database.path", "events.db")
	viper.SetDefault("scraper.url", "https://holycitysinner.com/calendar")
	viper.SetDefault("scraper.source", "holycitysinner")
	viper.SetDefault("log.level", "info")
}
