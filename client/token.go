package client

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// tokenExpirySkew is subtracted from the token lifetime so a token that is
// about to expire mid-request already counts as stale.
const tokenExpirySkew = 10 * time.Second

type GrantType string

const (
	GrantPassword     GrantType = "password"
	GrantAuthCode     GrantType = "authorization_code"
	GrantRefreshToken GrantType = "refresh_token"
)

// Credentials select one of the three supported OAuth2 flows.
type Credentials struct {
	Grant GrantType

	// password flow
	Username string
	Password string

	// authorization code flow
	Code        string
	RedirectURI string

	// refresh token flow
	RefreshToken string
}

func PasswordFlow(username, password string) Credentials {
	return Credentials{Grant: GrantPassword, Username: username, Password: password}
}

func AuthCodeFlow(code, redirectURI string) Credentials {
	return Credentials{Grant: GrantAuthCode, Code: code, RedirectURI: redirectURI}
}

func RefreshTokenFlow(refreshToken string) Credentials {
	return Credentials{Grant: GrantRefreshToken, RefreshToken: refreshToken}
}

// TokenResponse is the answer of the /oauth/token endpoint.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// connection is the live token state of a client.
type connection struct {
	TokenResponse
	connectedAt time.Time
}

// fresh reports whether the access token is still usable. The exp claim of
// the token wins when it is a parseable JWT, otherwise connect time plus
// expires_in is used.
func (c *connection) fresh(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	if exp, ok := jwtExpiry(c.AccessToken); ok {
		return now.Before(exp.Add(-tokenExpirySkew))
	}
	if c.ExpiresIn <= 0 {
		return true
	}
	exp := c.connectedAt.Add(time.Duration(c.ExpiresIn) * time.Second)
	return now.Before(exp.Add(-tokenExpirySkew))
}

// jwtExpiry reads the exp claim without verifying the signature. The client
// is not the token audience, it only needs the lifetime.
func jwtExpiry(raw string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
