package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/rohits-web03/myspace/internal/api/services"
)

const (
	stateCookie    = "oauth_state"
	stateCookieTTL = 10 * time.Minute
)

// GoogleProvider is the OAuth side of Google sign-in.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	Profile(ctx context.Context, code string) (services.GoogleProfile, error)
}

type GoogleHandler struct {
	provider    GoogleProvider
	auth        *services.AuthService
	frontendURL string
	secure      bool
	log         *slog.Logger
}

func NewGoogleHandler(provider GoogleProvider, auth *services.AuthService, frontendURL string, secure bool, log *slog.Logger) *GoogleHandler {
	return &GoogleHandler{provider: provider, auth: auth, frontendURL: frontendURL, secure: secure, log: log}
}

// Login godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Param redirect query string false "login or register"
// @Success 307
// @Router /auth/google/login [get]
func (h *GoogleHandler) Login(w http.ResponseWriter, r *http.Request) {
	flow := r.URL.Query().Get("redirect")
	if flow != flowRegister {
		flow = flowLogin
	}

	state, nonce, err := newState(flow)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate oauth state", "error", err)
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    nonce,
		Path:     "/auth/google",
		MaxAge:   int(stateCookieTTL.Seconds()),
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// Callback godoc
// @Summary Finish Google sign-in
// @Description Redirects to the frontend with the session token in the URL fragment.
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Router /auth/google/callback [get]
func (h *GoogleHandler) Callback(w http.ResponseWriter, r *http.Request) {
	nonce, flow, err := parseState(r.FormValue("state"))
	if err != nil || !h.nonceMatches(r, nonce) {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	h.clearStateCookie(w)

	if reason := r.FormValue("error"); reason != "" {
		h.redirect(w, r, "/login", url.Values{"error": {reason}}, "")
		return
	}

	profile, err := h.provider.Profile(r.Context(), r.FormValue("code"))
	if err != nil {
		h.log.WarnContext(r.Context(), "google sign-in failed", "error", err)
		h.redirect(w, r, "/login", url.Values{"error": {"google_auth_failed"}}, "")
		return
	}

	session, err := h.auth.GoogleSignIn(r.Context(), profile)
	if err != nil {
		h.log.WarnContext(r.Context(), "google account rejected", "error", err)
		h.redirect(w, r, "/login", url.Values{"error": {"google_auth_failed"}}, "")
		return
	}

	h.redirect(w, r, "/", url.Values{"status": {"success_" + flow}}, session.Token)
}

func (h *GoogleHandler) nonceMatches(r *http.Request, nonce string) bool {
	c, err := r.Cookie(stateCookie)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Value), []byte(nonce)) == 1
}

func (h *GoogleHandler) clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirect sends the browser to the frontend. The token travels in the
// fragment so it never reaches server logs.
func (h *GoogleHandler) redirect(w http.ResponseWriter, r *http.Request, path string, query url.Values, token string) {
	target := h.frontendURL + path + "?" + query.Encode()
	if token != "" {
		target += "#" + url.Values{"token": {token}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
