package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/alakhsir/studium/internal/db"
)

// AuthState is the persisted login session.
type AuthState struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	ExpiresAt    time.Time
}

// Expired reports whether the stored access token is past its expiry.
func (a AuthState) Expired() bool {
	return !a.ExpiresAt.IsZero() && time.Now().After(a.ExpiresAt)
}

// GetAuth returns the saved session, or nil when nobody is signed in.
func (m *Manager) GetAuth() (*AuthState, error) {
	row := m.db.QueryRow(`
		SELECT access_token, refresh_token, user_id, email, expires_at
		FROM auth_state WHERE id = 1
	`)

	var st AuthState
	var refresh, email sql.NullString
	var expiresAt int64

	err := row.Scan(&st.AccessToken, &refresh, &st.UserID, &email, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // signed out is a valid state
	}
	if err != nil {
		return nil, err
	}

	st.RefreshToken = dbutil.NullStringValue(refresh)
	st.Email = dbutil.NullStringValue(email)
	st.ExpiresAt = time.Unix(expiresAt, 0)

	return &st, nil
}

// SaveAuth persists the session after a successful login or token refresh.
func (m *Manager) SaveAuth(st AuthState) error {
	_, err := m.db.Exec(`
		INSERT INTO auth_state (id, access_token, refresh_token, user_id, email, expires_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			user_id = excluded.user_id,
			email = excluded.email,
			expires_at = excluded.expires_at
	`, st.AccessToken, st.RefreshToken, st.UserID, st.Email, st.ExpiresAt.Unix())
	return err
}

// ClearAuth signs the user out.
func (m *Manager) ClearAuth() error {
	_, err := m.db.Exec(`DELETE FROM auth_state WHERE id = 1`)
	return err
}
