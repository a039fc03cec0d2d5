package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/localwork/marketplace/internal/config"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

type IdentityServiceInterface interface {
	LoginURL(state string) string
	Exchange(ctx context.Context, code string) (*identity.Member, error)
}

// OAuthIdentityService signs members in with the authorization-code flow and reads
// their profile from the provider's userinfo endpoint.
type OAuthIdentityService struct {
	OAuth       *oauth2.Config
	UserInfoURL string
	client      *resty.Client
}

func NewOAuthIdentityService(cfg *config.AuthConfig) (*OAuthIdentityService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("OAUTH_CLIENT_ID, OAUTH_AUTH_URL, OAUTH_TOKEN_URL and OAUTH_USERINFO_URL must be set")
	}
	return &OAuthIdentityService{
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		UserInfoURL: cfg.UserInfoURL,
		client:      resty.New().SetTimeout(15 * time.Second),
	}, nil
}

func (s *OAuthIdentityService) LoginURL(state string) string {
	return s.OAuth.AuthCodeURL(state)
}

func (s *OAuthIdentityService) Exchange(ctx context.Context, code string) (*identity.Member, error) {
	tok, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		SetHeader("Accept", "application/json").
		Get(s.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch userinfo: status %d", resp.StatusCode())
	}

	return parseUserInfo(resp.String())
}

func parseUserInfo(body string) (*identity.Member, error) {
	id := firstString(body, "sub", "id", "user_id")
	if id == "" {
		return nil, fmt.Errorf("userinfo response has no subject")
	}
	m := &identity.Member{
		ID:         id,
		Nickname:   firstString(body, "nickname", "preferred_username", "name"),
		PhotoURL:   firstString(body, "picture", "avatar_url"),
		FirstName:  firstString(body, "given_name", "first_name"),
		LoginEmail: firstString(body, "email"),
	}

	created := gjson.Get(body, "created_at")
	switch created.Type {
	case gjson.Number:
		m.CreatedDate = time.Unix(created.Int(), 0).UTC()
	case gjson.String:
		if t, err := time.Parse(time.RFC3339, created.String()); err == nil {
			m.CreatedDate = t
		}
	}
	return m, nil
}

func firstString(body string, paths ...string) string {
	for _, p := range paths {
		if v := gjson.Get(body, p).String(); v != "" {
			return v
		}
	}
	return ""
}

// DevIdentityService signs everyone in as one demo member without leaving the site.
// Only wired outside production when no OAuth provider is configured.
type DevIdentityService struct {
	Member identity.Member
}

func NewDevIdentityService() *DevIdentityService {
	return &DevIdentityService{
		Member: identity.Member{
			ID:          "dev-member",
			Nickname:    "Demo User",
			FirstName:   "Demo",
			LoginEmail:  "demo@localwork.com",
			CreatedDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (s *DevIdentityService) LoginURL(state string) string {
	return "/auth/callback?code=dev&state=" + url.QueryEscape(state)
}

func (s *DevIdentityService) Exchange(ctx context.Context, code string) (*identity.Member, error) {
	if code == "" {
		return nil, fmt.Errorf("missing authorization code")
	}
	m := s.Member
	return &m, nil
}
