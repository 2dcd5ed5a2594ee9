package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"termfolio/internal/domain"
	"termfolio/pkg/tz"
)

type Config struct {
	Addr string `env:"TERMFOLIO_ADDR" envDefault:":8080"`
	// SiteURL is the public origin, e.g. https://example.dev. Optional;
	// without it the sitemap answers 500 and pages carry no canonical link.
	SiteURL       string   `env:"TERMFOLIO_SITE_URL"`
	DefaultLocale string   `env:"TERMFOLIO_DEFAULT_LOCALE" envDefault:"es"`
	Environment   string   `env:"TERMFOLIO_ENV" envDefault:"development"`
	CORSOrigins   []string `env:"TERMFOLIO_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	Timezone      string   `env:"TERMFOLIO_TIMEZONE" envDefault:"UTC"`
	// PublicDir holds project media linked from the page. A missing
	// directory only disables those links.
	PublicDir string `env:"TERMFOLIO_PUBLIC_DIR" envDefault:"public"`

	Logging LoggingConfig

	// Derived by validate.
	Locale   domain.Locale
	Location *time.Location
}

type LoggingConfig struct {
	// Level is empty unless set; the logger then derives it from TERMFOLIO_ENV.
	Level      string `env:"TERMFOLIO_LOG_LEVEL"`
	LogDir     string `env:"TERMFOLIO_LOG_DIR"`
	MaxSizeMB  int    `env:"TERMFOLIO_LOG_MAX_SIZE_MB" envDefault:"20"`
	MaxBackups int    `env:"TERMFOLIO_LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"TERMFOLIO_LOG_MAX_AGE_DAYS" envDefault:"14"`
	Compress   bool   `env:"TERMFOLIO_LOG_COMPRESS" envDefault:"true"`
}

// Load reads the configuration from the environment (and an optional .env) and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// validate applies every rule on the loaded configuration and fills derived fields.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: TERMFOLIO_ADDR cannot be empty")
	}

	locale, err := domain.ParseLocale(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("config: TERMFOLIO_DEFAULT_LOCALE: %w", err)
	}
	c.Locale = locale

	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "development", "production", "test":
	default:
		return fmt.Errorf("config: TERMFOLIO_ENV must be development, production or test, got %q", c.Environment)
	}

	loc, err := tz.Load(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: TERMFOLIO_TIMEZONE: %w", err)
	}
	c.Location = loc

	if strings.TrimSpace(c.SiteURL) != "" {
		origin, err := siteOrigin(c.SiteURL)
		if err != nil {
			return err
		}
		c.SiteURL = origin
	}

	if dir := strings.TrimSpace(c.PublicDir); dir != "" {
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			return fmt.Errorf("config: TERMFOLIO_PUBLIC_DIR %q is not a directory", dir)
		}
	}

	origins := c.CORSOrigins[:0]
	for _, o := range c.CORSOrigins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("config: TERMFOLIO_CORS_ORIGINS entry %q must be * or an http(s) origin", o)
		}
		origins = append(origins, o)
	}
	c.CORSOrigins = origins

	return nil
}

// siteOrigin reduces a site URL to scheme://host[:port].
func siteOrigin(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("config: TERMFOLIO_SITE_URL invalid (%q): %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("config: TERMFOLIO_SITE_URL invalid (%q): scheme must be http or https", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("config: TERMFOLIO_SITE_URL invalid (%q): missing host", raw)
	}
	return parsed.Scheme + "://" + parsed.Host, nil
}
