package config

import (
	"os"
	"strings"
	"sync"
)

type AuthConfig struct {
	ClientID      string
	ClientSecret  string
	AuthURL       string
	TokenURL      string
	UserInfoURL   string
	RedirectURL   string
	Scopes        []string
	SecureCookies bool
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		redirect := os.Getenv("OAUTH_REDIRECT_URL")
		if redirect == "" {
			redirect = strings.TrimRight(LoadAppConfig().BaseURL, "/") + "/auth/callback"
		}
		authConfig = &AuthConfig{
			ClientID:      os.Getenv("OAUTH_CLIENT_ID"),
			ClientSecret:  os.Getenv("OAUTH_CLIENT_SECRET"),
			AuthURL:       os.Getenv("OAUTH_AUTH_URL"),
			TokenURL:      os.Getenv("OAUTH_TOKEN_URL"),
			UserInfoURL:   os.Getenv("OAUTH_USERINFO_URL"),
			RedirectURL:   redirect,
			Scopes:        strings.Fields(getenvDefault("OAUTH_SCOPES", "openid profile email")),
			SecureCookies: os.Getenv("SESSION_SECURE") == "true",
		}
	})
	return authConfig
}

// Enabled reports whether a real OAuth provider is configured.
func (c *AuthConfig) Enabled() bool {
	return c.ClientID != "" && c.AuthURL != "" && c.TokenURL != "" && c.UserInfoURL != ""
}
