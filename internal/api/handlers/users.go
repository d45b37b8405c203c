package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/utils"
	"github.com/rohits-web03/myspace/internal/validation"
)

type UserHandler struct {
	users *services.UserService
	log   *slog.Logger
}

func NewUserHandler(users *services.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Details godoc
// @Summary Get the caller's profile and posts
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} services.UserDetails
// @Failure 403 {object} utils.MessageBody
// @Router /auth/{id}/details [get]
func (h *UserHandler) Details(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	details, err := h.users.Details(r.Context(), c, r.PathValue("id"))
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, details)
}

// Update godoc
// @Summary Replace the caller's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body validation.UserUpdateInput true "Profile"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.MessageBody
// @Failure 409 {object} utils.MessageBody
// @Router /auth/{id}/update [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.UserUpdateInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	user, err := h.users.Update(r.Context(), c, r.PathValue("id"), input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, UserResponse{Message: "User updated successfully", User: user})
}

// Delete godoc
// @Summary Delete the caller's account and everything it owns
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} utils.MessageBody
// @Failure 403 {object} utils.MessageBody
// @Router /auth/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	if err := h.users.Delete(r.Context(), c, r.PathValue("id")); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.Message(w, http.StatusOK, "User deleted successfully")
}
