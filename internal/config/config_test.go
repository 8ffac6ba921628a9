package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-token-spoof/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("AUTH_ENDPOINT", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("ENV", "")

	c := config.New()
	assert.Equal(t, "https://accounts.reddit.com", c.GetAuthEndpoint())
	assert.Equal(t, "/api/access_token", c.GetTokenPath())
	assert.Equal(t, []string{"*", "email", "pii"}, c.GetScopes())
	assert.Equal(t, 10*time.Second, c.GetHTTPTimeout())
	assert.Equal(t, 2*time.Minute, c.GetRenewalMargin())
	assert.Equal(t, "DEV", c.GetEnv())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_ENDPOINT", "http://127.0.0.1:9999/")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("ENV", "prod")

	c := config.New()
	assert.Equal(t, "http://127.0.0.1:9999", c.GetAuthEndpoint())
	assert.Equal(t, 3*time.Second, c.GetHTTPTimeout())
	assert.Equal(t, "PROD", c.GetEnv())
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	assert.Equal(t, 10*time.Second, config.New().GetHTTPTimeout())
}
