// Package services implements the resource managers behind the HTTP
// handlers: authentication, users, notes, contacts and posts. Services
// validate input, enforce ownership and translate storage errors into
// apperr kinds.
package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/repositories"
)

// Caller is the authenticated identity making a request.
type Caller struct {
	ID   uuid.UUID
	Name string
}

// NewCaller parses the user id carried by a session token.
func NewCaller(userID, name string) (Caller, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return Caller{}, apperr.Unauthorized("Invalid or expired token")
	}
	return Caller{ID: id, Name: name}, nil
}

// parseID treats a malformed path id like an absent resource.
func parseID(raw, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NotFound(notFound)
	}
	return id, nil
}

// storeErr maps repository errors; anything unrecognized is unexpected.
func storeErr(err error, notFound, duplicate string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperr.Conflict(duplicate)
	default:
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return err
		}
		return apperr.Unexpected(err)
	}
}
