package oauthmodel_test

import (
	"testing"

	"github.com/jrsteele09/go-token-spoof/oauthmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccessTokenResponse(t *testing.T) {
	resp, err := oauthmodel.ParseAccessTokenResponse([]byte(`{"access_token":"abc123","expires_in":3600,"token_type":"bearer","scope":"* email pii","extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, "abc123", *resp.AccessToken)
	assert.Equal(t, uint64(3600), *resp.ExpiresIn)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestParseAccessTokenResponseFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "missing access_token", body: `{"expires_in":3600}`, wantErr: oauthmodel.ErrMissingAccessToken},
		{name: "empty access_token", body: `{"access_token":"","expires_in":3600}`, wantErr: oauthmodel.ErrMissingAccessToken},
		{name: "missing expires_in", body: `{"access_token":"abc"}`, wantErr: oauthmodel.ErrMissingExpiresIn},
		{name: "null expires_in", body: `{"access_token":"abc","expires_in":null}`, wantErr: oauthmodel.ErrMissingExpiresIn},
		{name: "access_token not a string", body: `{"access_token":42,"expires_in":3600}`},
		{name: "expires_in negative", body: `{"access_token":"abc","expires_in":-1}`},
		{name: "expires_in float", body: `{"access_token":"abc","expires_in":36.5}`},
		{name: "expires_in string", body: `{"access_token":"abc","expires_in":"3600"}`},
		{name: "not json", body: `<html>rate limited</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := oauthmodel.ParseAccessTokenResponse([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, resp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizationValues(t *testing.T) {
	assert.Equal(t, "Basic b2hYcG9xclpZdWIxa2c6", oauthmodel.BasicAuth("ohXpoqrZYub1kg"))
	assert.Equal(t, "Bearer abc123", oauthmodel.BearerAuth("abc123"))
}
