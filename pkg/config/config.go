package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "shopfront"

type Config struct {
	App      AppConfig
	API      APIConfig
	State    StateConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.State.ensurePath(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SHOPFRONT_APP_ENV" default:"dev"`
	LogLevel string `envconfig:"SHOPFRONT_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type APIConfig struct {
	BaseURL string        `envconfig:"SHOPFRONT_API_BASE_URL" default:"http://localhost:8080/api/v1"`
	Timeout time.Duration `envconfig:"SHOPFRONT_API_TIMEOUT" default:"15s"`
	// AssetBaseURL prefixes relative image download paths returned by
	// the backend.
	AssetBaseURL string `envconfig:"SHOPFRONT_ASSET_BASE_URL" default:"http://localhost:8080"`
}

type StateConfig struct {
	// Backend selects where persisted identifiers live: "sqlite" keeps a
	// per-machine file, "redis" shares state between processes.
	Backend string `envconfig:"SHOPFRONT_STATE_BACKEND" default:"sqlite"`
	Path    string `envconfig:"SHOPFRONT_STATE_PATH"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPFRONT_REDIS_URL"`
	Address      string        `envconfig:"SHOPFRONT_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"SHOPFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPFRONT_REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"SHOPFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	// CallbackAddr is where the local listener waits for the payment
	// redirect after the hosted checkout completes.
	CallbackAddr string        `envconfig:"SHOPFRONT_CHECKOUT_CALLBACK_ADDR" default:"127.0.0.1:4242"`
	WaitTimeout  time.Duration `envconfig:"SHOPFRONT_CHECKOUT_WAIT_TIMEOUT" default:"10m"`
}

func (s *StateConfig) ensurePath() error {
	if s.Path != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	s.Path = filepath.Join(home, ".shopfront", "state.db")
	return nil
}
