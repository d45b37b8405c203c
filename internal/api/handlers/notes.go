package handlers

import (
	"log/slog"
	"net/http"

	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/utils"
	"github.com/rohits-web03/myspace/internal/validation"
)

type NoteHandler struct {
	notes *services.NoteService
	log   *slog.Logger
}

func NewNoteHandler(notes *services.NoteService, log *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, log: log}
}

// List godoc
// @Summary List the caller's notes
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Note
// @Router /notes [get]
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	notes, err := h.notes.List(r.Context(), c)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, notes)
}

// Create godoc
// @Summary Add a note
// @Description An empty title is stored as "Untitled".
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body validation.NoteInput true "Note"
// @Success 201 {object} models.Note
// @Failure 400 {object} utils.ErrorBody
// @Router /notes/add [post]
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.NoteInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	note, err := h.notes.Create(r.Context(), c, input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, note)
}

// Get godoc
// @Summary Get one of the caller's notes
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} models.Note
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	note, err := h.notes.Get(r.Context(), c, r.PathValue("id"))
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// Update godoc
// @Summary Replace a note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param body body validation.NoteInput true "Note"
// @Success 200 {object} models.Note
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	id := r.PathValue("id")
	// A non-owner is refused before the body is read.
	if _, err := h.notes.Get(r.Context(), c, id); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.NoteInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	note, err := h.notes.Update(r.Context(), c, id, input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} utils.MessageBody
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	if err := h.notes.Delete(r.Context(), c, r.PathValue("id")); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.Message(w, http.StatusOK, "Note deleted successfully")
}
