package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/rohits-web03/myspace/internal/config"
)

func fakeGoogle(t *testing.T, userInfoStatus int) *GoogleOAuth {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		w.WriteHeader(userInfoStatus)
		_, _ = w.Write([]byte(`{"id":"g-42","email":"ann@example.com","name":"Ann","picture":"ignored"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	g := NewGoogleOAuth(config.GoogleConfig{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/cb"})
	g.conf.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	g.userInfoURL = srv.URL + "/userinfo"
	return g
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g := NewGoogleOAuth(config.GoogleConfig{ClientID: "client", RedirectURL: "http://localhost/cb"})

	u, err := url.Parse(g.AuthCodeURL("state-1"))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "http://localhost/cb", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "userinfo.email")
}

func TestGoogleOAuth_Profile(t *testing.T) {
	g := fakeGoogle(t, http.StatusOK)

	profile, err := g.Profile(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, GoogleProfile{ID: "g-42", Email: "ann@example.com", Name: "Ann"}, profile)
}

func TestGoogleOAuth_ProfileRejectedUserInfo(t *testing.T) {
	g := fakeGoogle(t, http.StatusUnauthorized)

	_, err := g.Profile(context.Background(), "the-code")
	assert.ErrorContains(t, err, "401")
}
