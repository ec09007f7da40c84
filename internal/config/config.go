// Package config loads process configuration from the environment (and .env in development).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	SessionStoreCookie = "cookie"
	SessionStoreDB     = "db"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	OrderAPIBaseURL      string        `envconfig:"ORDER_API_BASE_URL" default:"http://localhost:5000/api"`
	OrderAPITimeout      time.Duration `envconfig:"ORDER_API_TIMEOUT" default:"10s"`
	OrderAPIServiceToken string        `envconfig:"ORDER_API_SERVICE_TOKEN"`

	FlashSecret  string        `envconfig:"FLASH_SECRET" required:"true"`
	FlashCookie  string        `envconfig:"FLASH_COOKIE" default:"flash"`
	CookieSecure bool          `envconfig:"COOKIE_SECURE" default:"false"`
	BannerTTL    time.Duration `envconfig:"BANNER_TTL" default:"3s"`

	SessionStore  string `envconfig:"SESSION_STORE" default:"cookie"`
	SessionCookie string `envconfig:"SESSION_COOKIE"`
	SessionSecret string `envconfig:"SESSION_SECRET"`
	DBDSN         string `envconfig:"DB_DSN"`

	// CSRFKey must be 32 bytes; empty disables CSRF protection.
	CSRFKey string `envconfig:"CSRF_KEY"`

	LoginPath     string `envconfig:"LOGIN_PATH" default:"/login"`
	HomePath      string `envconfig:"HOME_PATH" default:"/"`
	DashboardPath string `envconfig:"DASHBOARD_PATH" default:"/admin"`

	AuditKafkaBrokers []string `envconfig:"AUDIT_KAFKA_BROKERS"`
	AuditKafkaTopic   string   `envconfig:"AUDIT_KAFKA_TOPIC" default:"admin-order-events"`
}

// Load reads .env if present (production uses the real environment) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.FlashSecret == "" {
		errs = append(errs, errors.New("FLASH_SECRET is required"))
	}

	switch c.SessionStore {
	case SessionStoreCookie:
		if c.SessionSecret == "" {
			errs = append(errs, errors.New("SESSION_SECRET is required for the cookie session store"))
		}
	case SessionStoreDB:
		if c.DBDSN == "" {
			errs = append(errs, errors.New("DB_DSN is required for the db session store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore))
	}

	if c.CSRFKey != "" && len(c.CSRFKey) != 32 {
		errs = append(errs, errors.New("CSRF_KEY must be 32 bytes"))
	}
	if !strings.HasPrefix(c.OrderAPIBaseURL, "http://") && !strings.HasPrefix(c.OrderAPIBaseURL, "https://") {
		errs = append(errs, fmt.Errorf("ORDER_API_BASE_URL %q must be an http(s) URL", c.OrderAPIBaseURL))
	}

	return errors.Join(errs...)
}

// KafkaEnabled reports whether admin actions are published to Kafka.
func (c Config) KafkaEnabled() bool {
	return len(c.AuditKafkaBrokers) > 0 && c.AuditKafkaTopic != ""
}
