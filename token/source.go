package token

import (
	"net/http"

	"github.com/jrsteele09/go-token-spoof/internal/errors"
	"github.com/jrsteele09/go-token-spoof/oauthmodel"
	"golang.org/x/oauth2"
)

var _ oauth2.TokenSource = (*Client)(nil)

// Token implements oauth2.TokenSource. It never triggers an exchange; renewal
// is the daemon's job, so a stale token is returned as is.
func (c *Client) Token() (*oauth2.Token, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return nil, errors.ErrNoToken
	}
	return &oauth2.Token{
		AccessToken: c.token,
		TokenType:   "Bearer",
		Expiry:      c.expiryLocked(),
	}, nil
}

// NewTransport returns a RoundTripper that presents the spoofed device
// headers and the current Bearer token on every request. A nil base means
// http.DefaultTransport.
func NewTransport(src *Client, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &oauth2.Transport{
		Source: src,
		Base:   &deviceHeaderTransport{src: src, base: base},
	}
}

// deviceHeaderTransport runs beneath oauth2.Transport, which has already set
// Authorization on the cloned request.
type deviceHeaderTransport struct {
	src  *Client
	base http.RoundTripper
}

func (t *deviceHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	for k, v := range t.src.Headers() {
		if k == oauthmodel.HeaderAuthorization {
			continue
		}
		req2.Header[k] = v
	}
	return t.base.RoundTrip(req2)
}
