package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access-token payload the backend issues.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// ParseIdentity extracts the identity from an access token without
// verifying the signature. The client has no signing key; trust comes
// from having received the token over the authenticated channel.
func ParseIdentity(accessToken string) (*Identity, error) {
	parser := jwt.NewParser()
	var claims Claims
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	id := &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// Valid reports whether the identity carries a subject and is not expired.
func (i Identity) Valid() bool {
	if i.UserID == "" {
		return false
	}
	return i.ExpiresAt.IsZero() || time.Now().Before(i.ExpiresAt)
}
