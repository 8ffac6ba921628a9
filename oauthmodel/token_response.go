package oauthmodel

import (
	"encoding/json"
	"fmt"
)

// AccessTokenResponse is the body returned from /api/access_token.
// Unknown fields are ignored.
type AccessTokenResponse struct {
	// AccessToken is the bearer credential.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken *string `json:"access_token"`

	// ExpiresIn is the lifetime in seconds, counted from the response.
	// Example: 86400
	// Must be a non-negative integer; floats and strings are rejected.
	ExpiresIn *uint64 `json:"expires_in"`

	// TokenType is informational; it is always "bearer" in practice.
	TokenType string `json:"token_type,omitempty"`

	// Scope is the space-separated list of granted scopes, when present.
	Scope string `json:"scope,omitempty"`
}

// ParseAccessTokenResponse decodes body and checks the fields a token client needs.
func ParseAccessTokenResponse(body []byte) (*AccessTokenResponse, error) {
	var resp AccessTokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode access token response: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate reports whether both access_token and expires_in were present.
func (r *AccessTokenResponse) Validate() error {
	if r.AccessToken == nil || *r.AccessToken == "" {
		return ErrMissingAccessToken
	}
	if r.ExpiresIn == nil {
		return ErrMissingExpiresIn
	}
	return nil
}
