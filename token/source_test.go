package token_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/go-token-spoof/device"
	"github.com/jrsteele09/go-token-spoof/internal/errors"
	"github.com/jrsteele09/go-token-spoof/token"
	"github.com/jrsteele09/go-token-spoof/token/identitytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSourceBeforeLogin(t *testing.T) {
	c := token.New(device.NewGenerator().Android())
	tok, err := c.Token()
	assert.Nil(t, tok)
	assert.ErrorIs(t, err, errors.ErrNoToken)
}

func TestTokenSourceAfterLogin(t *testing.T) {
	srv := identitytest.NewServer(t, identitytest.TokenResponse("abc123", 3600))
	c := newTestClient(t, device.NewGenerator().Android(), srv)
	require.NoError(t, c.Login(context.Background()))

	tok, err := c.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.Type())
	assert.Equal(t, testNow.Add(time.Hour), tok.Expiry)
}

func TestTransportAuthorizesRequests(t *testing.T) {
	idp := identitytest.NewServer(t, identitytest.TokenResponse("abc123", 3600))
	p := device.NewGenerator().IOS()
	c := newTestClient(t, p, idp)
	require.NoError(t, c.Login(context.Background()))

	var got http.Header
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(api.Close)

	hc := &http.Client{Transport: token.NewTransport(c, nil)}
	resp, err := hc.Get(api.URL + "/api/v1/me")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []string{"Bearer abc123"}, got.Values("Authorization"))
	assert.Equal(t, p.UserAgent, got.Get("User-Agent"))
	assert.Equal(t, p.DeviceID, got.Get("Client-Vendor-Id"))
	assert.Equal(t, p.Model, got.Get("Device-Name"))
}

func TestTransportFailsWithoutToken(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	t.Cleanup(api.Close)

	c := token.New(device.NewGenerator().Android())
	hc := &http.Client{Transport: token.NewTransport(c, nil)}
	_, err := hc.Get(api.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoToken)
}
