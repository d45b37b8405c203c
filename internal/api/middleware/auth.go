package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/utils"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the caller asserted by a verified session token.
type Identity struct {
	UserID string
	Name   string
}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the caller set by RequireAuth.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// TokenValidator verifies a bearer token.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token before the
// wrapped handler runs.
func RequireAuth(tokens TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := bearerToken(r)
			if err != nil {
				utils.Error(w, r, log, apperr.Unauthorized("Access denied. No token provided"))
				return
			}

			claims, err := tokens.Validate(raw)
			if err != nil {
				utils.Error(w, r, log, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			if info := requestInfoFrom(r.Context()); info != nil {
				info.UserID = claims.UserID
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID, Name: claims.Name})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", auth.ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

var errNoIdentity = errors.New("no identity in request context")

// MustIdentity is for handlers mounted behind RequireAuth.
func MustIdentity(r *http.Request) (Identity, error) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		return Identity{}, apperr.Unexpected(errNoIdentity)
	}
	return id, nil
}
