package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

const requestInfoKey contextKey = "requestInfo"

// RequestInfo is filled in while the request travels inward so the outer
// middlewares can report the matched route and the caller.
type RequestInfo struct {
	Route  string
	UserID string
}

func requestInfoFrom(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey).(*RequestInfo)
	return info
}

// withRequestInfo reuses the slot when an outer middleware already set one.
func withRequestInfo(r *http.Request) (*http.Request, *RequestInfo) {
	if info := requestInfoFrom(r.Context()); info != nil {
		return r, info
	}
	info := &RequestInfo{}
	return r.WithContext(context.WithValue(r.Context(), requestInfoKey, info)), info
}

// CapturePattern records the ServeMux pattern that served the request.
func CapturePattern(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r)
		if info := requestInfoFrom(r.Context()); info != nil {
			info.Route = r.Pattern
		}
	})
}

// Logger writes one line per completed request.
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			r, info := withRequestInfo(r)

			rec := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.Log(r.Context(), level, "request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"route", info.Route,
				"status", rec.status,
				"duration", time.Since(start),
				"user_id", info.UserID,
			)
		})
	}
}
