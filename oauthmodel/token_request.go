package oauthmodel

import "encoding/base64"

// Headers exchanged with the identity service.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	// HeaderLoid identifies the installation. The server hands it out on the
	// first exchange and the apps replay it on every later one.
	HeaderLoid = "X-Reddit-Loid"
)

// AccessTokenRequest is the JSON body the mobile apps POST to /api/access_token.
// There is no grant_type: first acquisition and renewal are the same request.
type AccessTokenRequest struct {
	// Scopes requested for the anonymous installation token.
	// Example: ["*", "email", "pii"]
	Scopes []string `json:"scopes"`
}

// BasicAuth returns the Authorization value for a public client: the client id
// with an empty password.
func BasicAuth(clientID string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(clientID+":"))
}

// BearerAuth returns the Authorization value for an issued access token.
func BearerAuth(accessToken string) string {
	return "Bearer " + accessToken
}
