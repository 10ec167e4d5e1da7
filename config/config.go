package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is resolved once at startup and immutable afterwards.
type Config struct {
	// APIKey authenticates every request to the CDISC Library.
	// Obtain one at https://www.cdisc.org/cdisc-library. ENV: CDISC_API_KEY
	APIKey string `env:"CDISC_API_KEY,required"`
	// BaseURL is the CDISC Library API root. ENV: CDISC_BASE_URL
	BaseURL string `env:"CDISC_BASE_URL,default=https://api.library.cdisc.org/api"`
}

// Load resolves configuration from the environment, with an optional .env
// file in the working directory as a development override. A missing or
// empty CDISC_API_KEY is fatal: the upstream rejects unauthenticated calls,
// so there is no point starting the server.
func Load() (Config, error) {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config_error: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return Config{}, errors.New("config_error: CDISC_API_KEY is empty")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		return Config{}, errors.New("config_error: base URL is empty")
	}

	return cfg, nil
}
