package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/logging"
)

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestRequireAuth(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	valid, err := tm.Generate("user-1", "Alice")
	require.NoError(t, err)
	expired, err := auth.NewTokenManager("secret", -time.Minute).Generate("user-1", "Alice")
	require.NoError(t, err)

	var seen Identity
	protected := RequireAuth(tm, logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"missing", "", http.StatusUnauthorized, "Access denied. No token provided"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Access denied. No token provided"},
		{"garbage", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Invalid or expired token"},
		{"valid", "Bearer " + valid, http.StatusNoContent, ""},
		{"lowercase scheme", "bearer " + valid, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = Identity{}
			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeMessage(t, rec))
				assert.Empty(t, seen.UserID)
				return
			}
			assert.Equal(t, Identity{UserID: "user-1", Name: "Alice"}, seen)
		})
	}
}

func TestRequireAuth_PassesPreflight(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	h := RequireAuth(tm, logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/notes", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMustIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := MustIdentity(req)
	assert.Error(t, err)

	req = req.WithContext(WithIdentity(req.Context(), Identity{UserID: "u"}))
	id, err := MustIdentity(req)
	require.NoError(t, err)
	assert.Equal(t, "u", id.UserID)
}

func TestLoggerAndMetrics_ReportRouteAndUser(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, 0, true)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	tm := auth.NewTokenManager("secret", time.Hour)
	token, err := tm.Generate("user-9", "Zed")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("GET /notes/{id}", RequireAuth(tm, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	h := Logger(log)(metrics.Middleware(CapturePattern(mux)))

	req := httptest.NewRequest(http.MethodGet, "/notes/123", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, "GET /notes/{id}", line["route"])
	assert.Equal(t, "user-9", line["user_id"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])

	count := testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "GET /notes/{id}", "418"))
	assert.Equal(t, 1.0, count)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	h := Recover(logging.New(&buf, 0, true))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "kaboom")
	assert.True(t, strings.Contains(buf.String(), "kaboom"))
}
