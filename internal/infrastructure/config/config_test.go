package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "STOREFRONT_BASE_URL", "STOREFRONT_TIMEOUT", "SESSION_STORE", "SESSION_TTL", "COUPON_DELAY", "SUBMIT_RATE_LIMIT", "SUBMIT_RATE_BURST", "PAYMENT_WIDGET_CLIENT_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.StorefrontBaseURL)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Second, cfg.CouponDelay)
	assert.Equal(t, 10*time.Second, cfg.StorefrontTimeout)
	assert.Equal(t, 1.0, cfg.SubmitRateLimit)
	assert.Equal(t, 3, cfg.SubmitRateBurst)
	assert.Empty(t, cfg.WidgetClientKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STOREFRONT_BASE_URL", "https://shop.example.com/")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COUPON_DELAY", "0s")
	t.Setenv("PAYMENT_WIDGET_CLIENT_KEY", " test_ck ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://shop.example.com", cfg.StorefrontBaseURL)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Duration(0), cfg.CouponDelay)
	assert.Equal(t, "test_ck", cfg.WidgetClientKey)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":              "http",
		"SESSION_TTL":       "soon",
		"SESSION_STORE":     "postgres",
		"SUBMIT_RATE_LIMIT": "fast",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
