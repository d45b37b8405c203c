package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/logging"
	"github.com/rohits-web03/myspace/internal/repositories/memory"
)

func TestState_RoundTrip(t *testing.T) {
	state, nonce, err := newState(flowRegister)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(state, nonce+"."))

	gotNonce, flow, err := parseState(state)
	require.NoError(t, err)
	assert.Equal(t, nonce, gotNonce)
	assert.Equal(t, flowRegister, flow)

	other, _, err := newState(flowRegister)
	require.NoError(t, err)
	assert.NotEqual(t, state, other)
}

func TestParseState_Invalid(t *testing.T) {
	for _, state := range []string{"", "nodot", ".payload", "a.b.c", "nonce.!!!", "nonce.bm90LWpzb24"} {
		_, _, err := parseState(state)
		assert.Error(t, err, state)
	}
}

type stubProvider struct {
	profile services.GoogleProfile
	err     error
}

func (p stubProvider) AuthCodeURL(state string) string {
	return "https://google.test/auth?state=" + url.QueryEscape(state)
}

func (p stubProvider) Profile(context.Context, string) (services.GoogleProfile, error) {
	return p.profile, p.err
}

func callback(t *testing.T, h *GoogleHandler, query string) *httptest.ResponseRecorder {
	t.Helper()

	login := httptest.NewRecorder()
	h.Login(login, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
	require.Equal(t, http.StatusTemporaryRedirect, login.Code)
	loc, err := url.Parse(login.Header().Get("Location"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet,
		"/auth/google/callback?state="+url.QueryEscape(loc.Query().Get("state"))+"&"+query, nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.Callback(rec, req)
	return rec
}

func newGoogleHandler(p GoogleProvider) *GoogleHandler {
	store := memory.New()
	authSvc := services.NewAuthService(store.Users, auth.NewTokenManager("secret", time.Hour))
	return NewGoogleHandler(p, authSvc, "http://front.test", false, logging.Discard())
}

func TestGoogleCallback_ProviderFailureRedirectsToLogin(t *testing.T) {
	h := newGoogleHandler(stubProvider{err: errors.New("exchange failed")})

	rec := callback(t, h, "code=c")
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	target, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/login", target.Path)
	assert.Equal(t, "google_auth_failed", target.Query().Get("error"))
	assert.Empty(t, target.Fragment)
}

func TestGoogleCallback_ConsentDenied(t *testing.T) {
	h := newGoogleHandler(stubProvider{})

	rec := callback(t, h, "error=access_denied")
	target, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "access_denied", target.Query().Get("error"))
}

func TestGoogleCallback_Success(t *testing.T) {
	h := newGoogleHandler(stubProvider{profile: services.GoogleProfile{ID: "g", Email: "g@x.com"}})

	rec := callback(t, h, "code=c")
	target, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "success_login", target.Query().Get("status"))
	assert.Contains(t, target.Fragment, "token=")

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == stateCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	h := newGoogleHandler(stubProvider{})

	state, _, err := newState(flowLogin)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=c&state="+url.QueryEscape(state), nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "someone-else"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
