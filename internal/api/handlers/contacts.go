package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/utils"
	"github.com/rohits-web03/myspace/internal/validation"
)

type ContactHandler struct {
	contacts *services.ContactService
	log      *slog.Logger
}

func NewContactHandler(contacts *services.ContactService, log *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

// List godoc
// @Summary List the caller's contacts ordered by name
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Contact
// @Router /contacts [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	contacts, err := h.contacts.List(r.Context(), c)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, contacts)
}

// Create godoc
// @Summary Add a contact
// @Description Contact names are unique per owner.
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body validation.ContactInput true "Contact"
// @Success 201 {object} models.Contact
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.MessageBody
// @Router /contacts/add [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.ContactInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	contact, err := h.contacts.Create(r.Context(), c, input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, contact)
}

// Get godoc
// @Summary Get one of the caller's contacts
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	contact, err := h.contacts.Get(r.Context(), c, r.PathValue("id"))
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, contact)
}

// Update godoc
// @Summary Replace a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param body body validation.ContactInput true "Contact"
// @Success 200 {object} models.Contact
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.MessageBody
// @Failure 409 {object} utils.MessageBody
// @Router /contacts/{id} [put]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	id := r.PathValue("id")
	// A non-owner is refused before the body is read.
	if _, err := h.contacts.Get(r.Context(), c, id); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.ContactInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	contact, err := h.contacts.Update(r.Context(), c, id, input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, contact)
}

// Delete godoc
// @Summary Delete a contact
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} utils.MessageBody
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	if err := h.contacts.Delete(r.Context(), c, r.PathValue("id")); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.Message(w, http.StatusOK, "Contact deleted successfully")
}
