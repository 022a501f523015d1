// Package auth handles OTP login and the resulting session identity.
package auth

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCode is returned when the server rejects the submitted OTP.
var ErrInvalidCode = errors.New("invalid or expired login code")

// Identity is the signed-in user as described by the access token claims.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is a completed login.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     Identity
}

// Provider performs the OTP handshake against the auth backend.
type Provider interface {
	// RequestOTP asks the backend to email a one-time code.
	RequestOTP(ctx context.Context, email string) error
	// VerifyOTP exchanges the code for a session.
	VerifyOTP(ctx context.Context, email, code string) (*Session, error)
	// Refresh exchanges a refresh token for a fresh session.
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	// SignOut revokes the session server-side.
	SignOut(ctx context.Context, accessToken string) error
}
