package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rohits-web03/myspace/internal/config"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth runs the authorization code flow against Google.
type GoogleOAuth struct {
	conf        *oauth2.Config
	userInfoURL string
}

func NewGoogleOAuth(cfg config.GoogleConfig) *GoogleOAuth {
	return &GoogleOAuth{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

// Profile exchanges the authorization code and fetches the user's profile.
func (g *GoogleOAuth) Profile(ctx context.Context, code string) (GoogleProfile, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return GoogleProfile{}, err
	}
	resp, err := g.conf.Client(ctx, token).Do(req)
	if err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleProfile{}, fmt.Errorf("user info returned %s", resp.Status)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return GoogleProfile{}, fmt.Errorf("failed to parse user info: %w", err)
	}
	return profile, nil
}
