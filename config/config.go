// Package config loads and provides access to the timecard
// configuration and the client session.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

// Backend selects which entry store implementation is used.
type Backend string

const (
	BackendLocal Backend = "local"
	BackendAPI   Backend = "api"
)

type (
	// Config holds all configuration settings.
	Config struct {
		API      APIConfig      `mapstructure:"api"`
		Display  DisplayConfig  `mapstructure:"display"`
		Settings SettingsConfig `mapstructure:"settings"`
		Store    StoreConfig    `mapstructure:"store"`

		PathToConfig string `mapstructure:"-"`
	}

	// APIConfig holds remote entry store settings.
	APIConfig struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		TwentyFourHour  bool `mapstructure:"24hr_clock"`
		IncludeWeekends bool `mapstructure:"include_weekends"`
		DarkTheme       bool `mapstructure:"dark_theme"`
	}

	// SettingsConfig holds behavioural settings.
	SettingsConfig struct {
		EntryCmd       string `mapstructure:"entry_cmd"`
		DefaultProject string `mapstructure:"default_project"`
		Notify         bool   `mapstructure:"notify"`
	}

	// StoreConfig selects the entry store backend.
	StoreConfig struct {
		Backend Backend `mapstructure:"backend"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir       = "timecard"
	configFileName  = "config.yml"
	dbFileName      = "timecard.db"
	statusFileName  = "status.json"
	sessionFileName = "session.json"
	logFileName     = "timecard.log"
	dbFilePath      string
	configFilePath  string
	statusFilePath  string
	sessionFilePath string
	logFilePath     string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func SessionFilePath() string {
	return sessionFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves every file path used by the application.
// The TIMECARD_ENV environment variable suffixes the file names so
// that tests and development instances keep separate state.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("TIMECARD_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("timecard_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		sessionFileName = fmt.Sprintf("session_%s.json", env)
		logFileName = fmt.Sprintf("timecard_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)
	statusFilePath = filepath.Join(dataDir, statusFileName)
	sessionFilePath = filepath.Join(dataDir, sessionFileName)

	stateDir, err := xdg.StateFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath = filepath.Join(stateDir, logFileName)
}

// New creates a Config from the given options.
func New(opts ...Option) (*Config, error) {
	c := &Config{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

var (
	once sync.Once
	cfg  *Config
)

// Get returns the application configuration, loading it from the
// config file on first use. A config error is fatal since no command
// can run without one.
func Get() *Config {
	once.Do(func() {
		InitializePaths()

		c, err := New(WithViperConfig(configFilePath))
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		c.PathToConfig = configFilePath
		cfg = c
	})

	return cfg
}
