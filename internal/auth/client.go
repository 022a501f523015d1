package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to the OTP auth endpoint over HTTP.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient builds an auth client for the given endpoint. The API key is
// sent on every request; it identifies the app, not the user.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: newTransport(),
		},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

func (c *Client) RequestOTP(ctx context.Context, email string) error {
	body := map[string]any{"email": email, "create_user": true}
	resp, err := c.post(ctx, "/otp", "", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*Session, error) {
	body := map[string]any{"type": "email", "email": email, "token": code}
	resp, err := c.post(ctx, "/verify", "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return nil, ErrInvalidCode
	default:
		return nil, apiError(resp)
	}

	return decodeSession(resp.Body)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	body := map[string]any{"refresh_token": refreshToken}
	resp, err := c.post(ctx, "/token?grant_type=refresh_token", "", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	return decodeSession(resp.Body)
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	resp, err := c.post(ctx, "/logout", accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Revocation failures are not actionable for the user.
	if resp.StatusCode >= http.StatusInternalServerError {
		return apiError(resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path, bearer string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	logrus.WithField("path", path).Debug("auth: request")
	return c.http.Do(req)
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func decodeSession(r io.Reader) (*Session, error) {
	var sr sessionResponse
	if err := json.NewDecoder(r).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sr.AccessToken == "" {
		return nil, fmt.Errorf("session response missing access token")
	}

	s := &Session{
		AccessToken:  sr.AccessToken,
		RefreshToken: sr.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(sr.ExpiresIn) * time.Second),
	}

	// Prefer the token claims; fall back to the response user object.
	if id, err := ParseIdentity(sr.AccessToken); err == nil {
		s.Identity = *id
	} else {
		logrus.WithError(err).Debug("auth: opaque access token")
		s.Identity = Identity{UserID: sr.User.ID, Email: sr.User.Email}
	}
	if s.Identity.UserID == "" {
		s.Identity.UserID = sr.User.ID
	}
	if s.Identity.Email == "" {
		s.Identity.Email = sr.User.Email
	}
	return s, nil
}

func apiError(resp *http.Response) error {
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	msg := payload.Msg
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		return fmt.Errorf("auth endpoint returned %s", resp.Status)
	}
	return fmt.Errorf("auth endpoint returned %s: %s", resp.Status, msg)
}

var _ Provider = (*Client)(nil)
