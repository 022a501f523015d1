package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, sub, email string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseIdentity(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, "user-9", "a@b.cc", exp)

	id, err := ParseIdentity(token)
	if err != nil {
		t.Fatalf("ParseIdentity failed: %v", err)
	}
	if id.UserID != "user-9" {
		t.Errorf("UserID = %q, want user-9", id.UserID)
	}
	if id.Email != "a@b.cc" {
		t.Errorf("Email = %q, want a@b.cc", id.Email)
	}
	if !id.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", id.ExpiresAt, exp)
	}
	if !id.Valid() {
		t.Error("identity with future expiry not valid")
	}
}

func TestParseIdentity_Garbage(t *testing.T) {
	if _, err := ParseIdentity("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestIdentityValid(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want bool
	}{
		{"empty", Identity{}, false},
		{"no expiry", Identity{UserID: "u"}, true},
		{"future expiry", Identity{UserID: "u", ExpiresAt: time.Now().Add(time.Hour)}, true},
		{"expired", Identity{UserID: "u", ExpiresAt: time.Now().Add(-time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientRequestOTP(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")
	if err := c.RequestOTP(context.Background(), "student@example.com"); err != nil {
		t.Fatalf("RequestOTP failed: %v", err)
	}

	if gotPath != "/otp" {
		t.Errorf("path = %q, want /otp", gotPath)
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("apikey header = %q, want anon-key", gotAPIKey)
	}
	if gotBody["email"] != "student@example.com" {
		t.Errorf("body email = %v", gotBody["email"])
	}
}

func TestClientVerifyOTP(t *testing.T) {
	token := signedToken(t, "user-1", "student@example.com", time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/verify" {
			t.Errorf("path = %q, want /verify", r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["token"] != "123456" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  token,
			"refresh_token": "refresh-1",
			"expires_in":    3600,
			"user":          map[string]string{"id": "user-1", "email": "student@example.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key")

	// Wrong code maps to ErrInvalidCode.
	if _, err := c.VerifyOTP(context.Background(), "student@example.com", "000000"); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("wrong code error = %v, want ErrInvalidCode", err)
	}

	s, err := c.VerifyOTP(context.Background(), "student@example.com", "123456")
	if err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	if s.AccessToken != token {
		t.Error("access token not carried into session")
	}
	if s.RefreshToken != "refresh-1" {
		t.Errorf("refresh token = %q", s.RefreshToken)
	}
	if s.Identity.UserID != "user-1" || s.Identity.Email != "student@example.com" {
		t.Errorf("identity = %+v", s.Identity)
	}
	if time.Until(s.ExpiresAt) < 59*time.Minute {
		t.Errorf("ExpiresAt = %v, want ~1h out", s.ExpiresAt)
	}
}

func TestClientVerifyOTP_OpaqueToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "opaque-token",
			"expires_in":   600,
			"user":         map[string]string{"id": "user-2", "email": "x@y.zz"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	s, err := c.VerifyOTP(context.Background(), "x@y.zz", "111111")
	if err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	// Identity falls back to the response user object.
	if s.Identity.UserID != "user-2" || s.Identity.Email != "x@y.zz" {
		t.Errorf("identity = %+v, want fallback from user object", s.Identity)
	}
}

func TestClientRefresh(t *testing.T) {
	token := signedToken(t, "user-1", "a@b.cc", time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grant_type") != "refresh_token" {
			t.Errorf("grant_type = %q", r.URL.Query().Get("grant_type"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  token,
			"refresh_token": "refresh-2",
			"expires_in":    3600,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	s, err := c.Refresh(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if s.RefreshToken != "refresh-2" {
		t.Errorf("refresh token = %q, want rotated refresh-2", s.RefreshToken)
	}
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "database down"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	err := c.RequestOTP(context.Background(), "a@b.cc")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
