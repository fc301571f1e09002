package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyAPIBaseURL      = "api.base_url"
	keyAPITimeout      = "api.timeout"
	keyTwentyFourHour  = "display.24hr_clock"
	keyIncludeWeekends = "display.include_weekends"
	keyDarkTheme       = "display.dark_theme"
	keyEntryCmd        = "settings.entry_cmd"
	keyDefaultProject  = "settings.default_project"
	keyNotify          = "settings.notify"
	keyStoreBackend    = "store.backend"
)

// WithViperConfig returns an Option that loads configuration from
// Viper, writing a default config file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyAPIBaseURL, "")
	v.SetDefault(keyAPITimeout, 10*time.Second)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyIncludeWeekends, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyEntryCmd, "")
	v.SetDefault(keyDefaultProject, "")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyStoreBackend, string(BackendLocal))
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return c.validate()
}

func (c *Config) validate() error {
	if c.Store.Backend != BackendLocal && c.Store.Backend != BackendAPI {
		return errUnknownBackend.Fmt(c.Store.Backend)
	}

	if c.Store.Backend == BackendAPI && c.API.BaseURL == "" {
		return errMissingBaseURL
	}

	return nil
}
