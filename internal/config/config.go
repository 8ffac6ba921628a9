package config

import "time"

type Config interface {
	EnvConfig
	OAuthConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type OAuthConfig interface {
	GetAuthEndpoint() string
	GetTokenPath() string
	GetScopes() []string
	GetHTTPTimeout() time.Duration
	GetRenewalMargin() time.Duration
	GetMinRefreshDelay() time.Duration
}

type mainConfig struct {
	EnvVars
	OAuth
}

func New() Config {
	return mainConfig{}
}
