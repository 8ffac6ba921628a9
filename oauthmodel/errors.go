package oauthmodel

import "errors"

var (
	ErrMissingAccessToken = errors.New("response has no access_token")
	ErrMissingExpiresIn   = errors.New("response has no expires_in")
)
