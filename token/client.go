// Package token keeps a bearer token for a spoofed mobile installation. The
// Client performs the access-token exchange and exposes the current token and
// header set to anything that needs to authorize outbound requests.
package token

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/jrsteele09/go-token-spoof/device"
	"github.com/jrsteele09/go-token-spoof/internal/errors"
	"github.com/jrsteele09/go-token-spoof/oauthmodel"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL   = "https://accounts.reddit.com"
	defaultTokenPath = "/api/access_token"

	maxResponseBytes = 1 << 20
)

var defaultScopes = []string{"*", "email", "pii"}

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client owns one device profile and the token obtained for it. All state is
// guarded by mu; an exchange holds the write lock for its whole round trip.
type Client struct {
	profile    *device.Profile
	httpClient Doer
	baseURL    string
	tokenPath  string
	scopes     []string
	nowFunc    func() time.Time

	mu         sync.RWMutex
	token      string
	expiresIn  uint64
	obtainedAt time.Time
	headers    http.Header
}

// Snapshot is a consistent view of the client state taken under one read lock.
type Snapshot struct {
	Token      string
	ExpiresIn  uint64
	ObtainedAt time.Time
	Headers    http.Header
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithTokenPath(path string) ClientOption {
	return func(c *Client) {
		c.tokenPath = path
	}
}

func WithScopes(scopes ...string) ClientOption {
	return func(c *Client) {
		c.scopes = slices.Clone(scopes)
	}
}

func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = d
	}
}

func WithNowFunc(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.nowFunc = now
	}
}

// New creates a Client for profile. No request is made until Login.
func New(profile *device.Profile, opts ...ClientOption) *Client {
	c := &Client{
		profile:    profile,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		tokenPath:  defaultTokenPath,
		scopes:     defaultScopes,
		nowFunc:    time.Now,
		headers:    profile.Headers(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile returns the device the client impersonates.
func (c *Client) Profile() *device.Profile {
	return c.profile
}

// Login requests a token from the identity service and, on success, stores
// it together with its lifetime and the matching Bearer header. On failure
// the stored state is left exactly as it was.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exchange(ctx)
}

// Refresh renews the token. The identity service does not distinguish
// renewal from first acquisition, so this replays Login with the headers
// accumulated so far.
func (c *Client) Refresh(ctx context.Context) error {
	err := c.Login(ctx)
	if err != nil {
		log.Err(err).Msg("Refreshing OAuth token... failed")
		return err
	}
	log.Info().Uint64("expires_in", c.ExpiresIn()).Msg("Refreshing OAuth token... success")
	return nil
}

// exchange must be called with mu held for writing.
func (c *Client) exchange(ctx context.Context) error {
	url := c.baseURL + c.tokenPath

	req, err := c.newTokenRequest(ctx, url)
	if err != nil {
		return errors.Wrapf(err, "[token exchange] build request")
	}
	log.Debug().Str("url", url).Interface("headers", redact(req.Header)).Msg("Requesting OAuth token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Mark(errors.ErrTransport, err, "[token exchange] POST %s", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Mark(errors.ErrTransport, err, "[token exchange] read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("[token exchange] %w: HTTP %d: %s", errors.ErrUnexpectedStatus, resp.StatusCode, truncate(body, 200))
	}

	parsed, err := oauthmodel.ParseAccessTokenResponse(body)
	if err != nil {
		return errors.Mark(errors.ErrMalformedResponse, err, "[token exchange] parse response")
	}

	if loid := resp.Header.Get(oauthmodel.HeaderLoid); loid != "" {
		c.headers.Set(oauthmodel.HeaderLoid, loid)
	}
	c.token = *parsed.AccessToken
	c.expiresIn = *parsed.ExpiresIn
	c.obtainedAt = c.nowFunc()
	c.headers.Set(oauthmodel.HeaderAuthorization, oauthmodel.BearerAuth(c.token))

	ev := log.Info().Str("token", tokenPrefix(c.token)).Uint64("expires_in", c.expiresIn)
	if exp, ok := jwtExpiry(c.token); ok {
		ev = ev.Time("jwt_exp", exp)
	}
	ev.Msg("Retrieved OAuth token")
	return nil
}

func (c *Client) newTokenRequest(ctx context.Context, url string) (*http.Request, error) {
	payload, err := json.Marshal(oauthmodel.AccessTokenRequest{Scopes: c.scopes})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	// A stored Bearer token is never presented on a token request; the apps
	// authenticate with Basic client credentials only.
	for k, v := range c.headers {
		if http.CanonicalHeaderKey(k) == oauthmodel.HeaderAuthorization {
			continue
		}
		req.Header[k] = slices.Clone(v)
	}
	req.Header.Set(oauthmodel.HeaderAuthorization, oauthmodel.BasicAuth(c.profile.OAuthClientID))
	req.Header.Set(oauthmodel.HeaderContentType, "application/json")
	return req, nil
}

// AccessToken returns the current bearer token, or "" before the first login.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ExpiresIn returns the lifetime in seconds reported by the last successful exchange.
func (c *Client) ExpiresIn() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiresIn
}

// Expiry returns when the current token stops being valid, or the zero time
// if no token has been obtained.
func (c *Client) Expiry() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiryLocked()
}

func (c *Client) expiryLocked() time.Time {
	if c.token == "" {
		return time.Time{}
	}
	return c.obtainedAt.Add(time.Duration(c.expiresIn) * time.Second)
}

// Headers returns a copy of the current header set, including the Bearer
// Authorization once a token is held.
func (c *Client) Headers() http.Header {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers.Clone()
}

func (c *Client) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		Token:      c.token,
		ExpiresIn:  c.expiresIn,
		ObtainedAt: c.obtainedAt,
		Headers:    c.headers.Clone(),
	}
}

// Authorize sets the device headers and the Bearer Authorization on req.
func (c *Client) Authorize(req *http.Request) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for k, v := range c.headers {
		req.Header[k] = slices.Clone(v)
	}
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	if out.Get(oauthmodel.HeaderAuthorization) != "" {
		out.Set(oauthmodel.HeaderAuthorization, "<redacted>")
	}
	return out
}

func tokenPrefix(t string) string {
	if len(t) <= 8 {
		return t
	}
	return t[:8] + "..."
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
