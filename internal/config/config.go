package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"dessert-clicker/internal/i18n"
)

const (
	ShareClipboard = "clipboard"
	ShareMail      = "mail"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds the runtime settings. Every field can be set from the
// environment; command-line flags take precedence.
type Config struct {
	LogLevel     string  `env:"DESSERT_LOG_LEVEL" envDefault:"info"`
	JSONLogs     bool    `env:"DESSERT_JSON_LOGS"`
	CatalogPath  string  `env:"DESSERT_CATALOG"`
	Language     string  `env:"DESSERT_LANG" envDefault:"en"`
	Currency     string  `env:"DESSERT_CURRENCY" envDefault:"€"`
	ShareTarget  string  `env:"DESSERT_SHARE_TARGET" envDefault:"clipboard"`
	ShareEmail   string  `env:"DESSERT_SHARE_EMAIL"`
	WindowWidth  float32 `env:"DESSERT_WINDOW_WIDTH" envDefault:"420"`
	WindowHeight float32 `env:"DESSERT_WINDOW_HEIGHT" envDefault:"760"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.ShareTarget {
	case ShareClipboard, ShareMail:
	default:
		return fmt.Errorf("share target %q: %w", c.ShareTarget, ErrInvalid)
	}

	if !i18n.Supported(c.Language) {
		return fmt.Errorf("language %q: %w", c.Language, ErrInvalid)
	}

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %.0fx%.0f: %w", c.WindowWidth, c.WindowHeight, ErrInvalid)
	}

	return nil
}
