package pokelance

import (
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/FallenDeity/PokeLance/cache"
	"github.com/FallenDeity/PokeLance/ports"
	"github.com/FallenDeity/PokeLance/rest"
)

type (
	// Config is the full client configuration.
	Config struct {
		API   APIConfig   `yaml:"api"`
		Cache CacheConfig `yaml:"cache"`
		Log   LogConfig   `yaml:"logger"`
	}

	// APIConfig holds the transport settings.
	APIConfig struct {
		BaseURL        string        `yaml:"base-url" env:"POKELANCE_BASE_URL"`
		UserAgent      string        `yaml:"user-agent" env:"POKELANCE_USER_AGENT"`
		ConnectTimeout time.Duration `yaml:"connect-timeout" env:"POKELANCE_CONNECT_TIMEOUT"`
		RequestTimeout time.Duration `yaml:"request-timeout" env:"POKELANCE_REQUEST_TIMEOUT"`
		RateLimit      float64       `yaml:"rate-limit" env:"POKELANCE_RATE_LIMIT"`
		RateBurst      int           `yaml:"rate-burst" env:"POKELANCE_RATE_BURST"`
	}

	// CacheConfig holds the cache settings.
	CacheConfig struct {
		Dir            string   `yaml:"dir" env:"POKELANCE_CACHE_DIR"`
		DisabledGroups []string `yaml:"disabled-groups" env:"POKELANCE_DISABLED_GROUPS"`
		SaveOnClose    bool     `yaml:"save-on-close" env:"POKELANCE_SAVE_ON_CLOSE"`
		MediaCacheSize int      `yaml:"media-cache-size" env:"POKELANCE_MEDIA_CACHE_SIZE"`
	}

	// LogConfig holds the logging settings.
	LogConfig struct {
		Verbosity int `yaml:"verbosity" env:"POKELANCE_LOG_VERBOSITY"`
	}
)

// DefaultConfig returns the settings used against the public service.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = rest.DefaultBaseURL
	cfg.API.UserAgent = "PokeLance/" + Version + " (github.com/FallenDeity/PokeLance)"
	cfg.API.ConnectTimeout = 5 * time.Second
	cfg.API.RequestTimeout = 30 * time.Second
	cfg.API.RateLimit = 20
	cfg.API.RateBurst = 5
	cfg.Cache.Dir = ".pokelance"
	cfg.Cache.MediaCacheSize = 128
	return cfg
}

// LoadConfig builds a configuration from the defaults, the optional
// YAML file at path and environment overrides, in that order.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, errors.Wrapf(ports.ErrConfiguration, "failed to read config %s: %v", path, err)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrapf(ports.ErrConfiguration, "failed to read environment: %v", err)
	}
	return cfg, nil
}

func (c *Config) restConfig() rest.Config {
	return rest.Config{
		BaseURL:        c.API.BaseURL,
		UserAgent:      c.API.UserAgent,
		ConnectTimeout: c.API.ConnectTimeout,
		RequestTimeout: c.API.RequestTimeout,
		RateLimit:      c.API.RateLimit,
		RateBurst:      c.API.RateBurst,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if err := c.restConfig().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Cache.Dir) == "" {
		return errors.Wrap(ports.ErrConfiguration, "cache dir must not be empty")
	}
	if c.Cache.MediaCacheSize <= 0 {
		return errors.Wrap(ports.ErrConfiguration, "media cache size must be positive")
	}
	for _, g := range c.Cache.DisabledGroups {
		if !rest.KnownGroup(cache.Canonicalize(g)) {
			return errors.Wrapf(ports.ErrConfiguration, "unknown endpoint group %q in disabled-groups", g)
		}
	}
	return nil
}
