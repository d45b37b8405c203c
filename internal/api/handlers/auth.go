package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/utils"
	"github.com/rohits-web03/myspace/internal/validation"
)

type AuthHandler struct {
	auth *services.AuthService
	log  *slog.Logger
}

func NewAuthHandler(auth *services.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// SignUp godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.SignUpInput true "Account details"
// @Success 201 {object} handlers.UserResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.MessageBody
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input validation.SignUpInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	user, err := h.auth.Register(r.Context(), input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, UserResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.SignInInput true "Credentials"
// @Success 200 {object} handlers.SignInResponse
// @Failure 401 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input validation.SignInInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	session, err := h.auth.Authenticate(r.Context(), input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, SignInResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    session.User,
	})
}
