// Package handlers adapts HTTP requests to the services: decode the body,
// resolve the caller, call the service and write the JSON response.
package handlers

import (
	"net/http"

	"github.com/rohits-web03/myspace/internal/api/middleware"
	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/validation"
)

// UserResponse wraps a user with a status message.
type UserResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// SignInResponse is returned by a successful sign-in.
type SignInResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    services.SessionUser `json:"user"`
}

func caller(r *http.Request) (services.Caller, error) {
	id, err := middleware.MustIdentity(r)
	if err != nil {
		return services.Caller{}, err
	}
	return services.NewCaller(id.UserID, id.Name)
}

// decode reads a JSON body into dst. Validation happens in the services.
func decode(r *http.Request, dst any) error {
	return validation.Decode(r.Body, dst)
}
