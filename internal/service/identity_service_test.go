package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/localwork/marketplace/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, userinfo string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userinfo))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func authConfigFor(srv *httptest.Server) *config.AuthConfig {
	return &config.AuthConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		AuthURL:      srv.URL + "/authorize",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  srv.URL + "/userinfo",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scopes:       []string{"openid", "profile"},
	}
}

func TestOAuthExchangeReadsProfile(t *testing.T) {
	srv := newProvider(t, `{
		"sub": "member-7",
		"nickname": "jo",
		"given_name": "Joanna",
		"picture": "https://img.example/jo.png",
		"email": "jo@example.com",
		"created_at": "2024-02-10T08:00:00Z"
	}`)
	svc, err := NewOAuthIdentityService(authConfigFor(srv))
	require.NoError(t, err)

	m, err := svc.Exchange(context.Background(), "code-abc")
	require.NoError(t, err)
	assert.Equal(t, "member-7", m.ID)
	assert.Equal(t, "jo", m.Nickname)
	assert.Equal(t, "Joanna", m.FirstName)
	assert.Equal(t, "https://img.example/jo.png", m.PhotoURL)
	assert.Equal(t, "jo@example.com", m.LoginEmail)
	assert.Equal(t, time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC), m.CreatedDate)
}

func TestOAuthExchangeRequiresSubject(t *testing.T) {
	srv := newProvider(t, `{"email": "nobody@example.com"}`)
	svc, err := NewOAuthIdentityService(authConfigFor(srv))
	require.NoError(t, err)

	_, err = svc.Exchange(context.Background(), "code-abc")
	assert.Error(t, err)
}

func TestOAuthLoginURLCarriesState(t *testing.T) {
	srv := newProvider(t, `{}`)
	svc, err := NewOAuthIdentityService(authConfigFor(srv))
	require.NoError(t, err)

	u, err := url.Parse(svc.LoginURL("state-xyz"))
	require.NoError(t, err)
	assert.Equal(t, "state-xyz", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
}

func TestNewOAuthIdentityServiceRequiresConfig(t *testing.T) {
	_, err := NewOAuthIdentityService(&config.AuthConfig{})
	assert.Error(t, err)
}

func TestParseUserInfoFallbacks(t *testing.T) {
	m, err := parseUserInfo(`{"id": 99, "name": "Pat", "avatar_url": "a.png", "created_at": 1700000000}`)
	require.NoError(t, err)
	assert.Equal(t, "99", m.ID)
	assert.Equal(t, "Pat", m.Nickname)
	assert.Equal(t, "a.png", m.PhotoURL)
	assert.Equal(t, int64(1700000000), m.CreatedDate.Unix())
}

func TestDevIdentityService(t *testing.T) {
	svc := NewDevIdentityService()
	assert.Contains(t, svc.LoginURL("s 1"), "state=s+1")

	m, err := svc.Exchange(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, "dev-member", m.ID)

	_, err = svc.Exchange(context.Background(), "")
	assert.Error(t, err)
}
