package utils

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rohits-web03/myspace/internal/apperr"
)

// MessageBody is the {message} envelope used by deletes and most errors.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody carries field errors next to the summary message.
type ErrorBody struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

// JSONResponse sends v as JSON with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message sends {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSONResponse(w, status, MessageBody{Message: msg})
}

// Error maps err onto its taxonomy status. Causes of 5xx responses are
// logged and never sent to the client.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := apperr.HTTPStatus(err)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Unexpected(err)
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"kind", appErr.Kind.String(),
			"error", err,
		)
	}

	JSONResponse(w, status, ErrorBody{Message: appErr.Message, Errors: appErr.Fields})
}
