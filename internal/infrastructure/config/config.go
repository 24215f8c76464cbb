package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStoreDynamoDB = "dynamodb"
)

// Config is read once at startup from the environment (.env is autoloaded by
// the binary).
//
// Supported env vars:
//   - APP_ENV (default: development)
//   - PORT (default: 8080)
//   - STOREFRONT_BASE_URL (default: http://localhost:8000)
//   - STOREFRONT_TIMEOUT (default: 10s)
//   - SESSION_STORE memory|redis|dynamodb (default: memory)
//   - SESSION_TTL (default: 15m)
//   - REDIS_URL (default: redis://localhost:6379/0)
//   - PAYMENT_WIDGET_CLIENT_KEY (optional; the card route alerts without it)
//   - COUPON_DELAY (default: 1s)
//   - SUBMIT_RATE_LIMIT per second per client (default: 1)
//   - SUBMIT_RATE_BURST (default: 3)
type Config struct {
	Env               string
	Port              int
	StorefrontBaseURL string
	StorefrontTimeout time.Duration
	SessionStore      string
	SessionTTL        time.Duration
	RedisURL          string
	WidgetClientKey   string
	CouponDelay       time.Duration
	SubmitRateLimit   float64
	SubmitRateBurst   int
}

func Load() (Config, error) {
	cfg := Config{
		Env:               getenvDefault("APP_ENV", "development"),
		StorefrontBaseURL: strings.TrimRight(getenvDefault("STOREFRONT_BASE_URL", "http://localhost:8000"), "/"),
		SessionStore:      strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreMemory)),
		RedisURL:          getenvDefault("REDIS_URL", "redis://localhost:6379/0"),
		WidgetClientKey:   strings.TrimSpace(os.Getenv("PAYMENT_WIDGET_CLIENT_KEY")),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.StorefrontTimeout, err = getenvDuration("STOREFRONT_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = getenvDuration("SESSION_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CouponDelay, err = getenvDuration("COUPON_DELAY", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SubmitRateBurst, err = getenvInt("SUBMIT_RATE_BURST", 3); err != nil {
		return Config{}, err
	}
	limit := getenvDefault("SUBMIT_RATE_LIMIT", "1")
	if cfg.SubmitRateLimit, err = strconv.ParseFloat(limit, 64); err != nil {
		return Config{}, fmt.Errorf("invalid SUBMIT_RATE_LIMIT %q: %w", limit, err)
	}

	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreRedis, SessionStoreDynamoDB:
	default:
		return Config{}, fmt.Errorf("invalid SESSION_STORE %q", cfg.SessionStore)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
