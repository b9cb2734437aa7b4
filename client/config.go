package client

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/semtisem/dracoon-go/errs"
)

const (
	apiPrefix = "/api/v4"

	oauthTokenPath     = "/oauth/token"
	oauthRevokePath    = "/oauth/revoke"
	oauthAuthorizePath = "/oauth/authorize"
)

const defaultUserAgent = "dracoon-go/1.0.0"

// Config of a DRACOON session. BaseURL and the OAuth2 client pair are
// mandatory, everything else has a usable default.
type Config struct {
	BaseURL      string `env:"DRACOON_BASE_URL"`
	ClientID     string `env:"DRACOON_CLIENT_ID"`
	ClientSecret string `env:"DRACOON_CLIENT_SECRET"`

	UserAgent  string        `env:"DRACOON_USER_AGENT"`
	Timeout    time.Duration `env:"DRACOON_TIMEOUT" envDefault:"30s"`
	RetryCount int           `env:"DRACOON_RETRY_COUNT" envDefault:"3"`

	Debug   bool   `env:"DRACOON_DEBUG"`
	LogFile string `env:"DRACOON_LOG_FILE"`
}

// FromEnv reads the config from DRACOON_* environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return errs.NewErr(errs.InvalidArgument, "base URL is required")
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return errs.NewErr(errs.InvalidArgument, "OAuth2 client id and secret are required")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
