package config

import (
	"strings"
	"time"
)

const (
	authEndpointVar = "AUTH_ENDPOINT"
	httpTimeoutVar  = "HTTP_TIMEOUT"
)

type OAuth struct{}

var _ OAuthConfig = OAuth{}

// GetAuthEndpoint is the base URL of the identity service, without a trailing slash.
func (OAuth) GetAuthEndpoint() string {
	return strings.TrimSuffix(GetEnv(authEndpointVar, "https://accounts.reddit.com"), "/")
}

func (OAuth) GetTokenPath() string {
	return "/api/access_token"
}

// GetScopes are the scopes the mobile apps request on every token call.
func (OAuth) GetScopes() []string {
	return []string{"*", "email", "pii"}
}

func (OAuth) GetHTTPTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(httpTimeoutVar, "10s"))
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetRenewalMargin is how long before expiry the token is renewed.
func (OAuth) GetRenewalMargin() time.Duration {
	return 2 * time.Minute
}

// GetMinRefreshDelay bounds how often renewal runs when the server hands out
// tokens that live no longer than the renewal margin.
func (OAuth) GetMinRefreshDelay() time.Duration {
	return 30 * time.Second
}
