package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rohits-web03/myspace/internal/api/services"
	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/utils"
	"github.com/rohits-web03/myspace/internal/validation"
)

// multipartMemory is how much of a multipart form is kept in memory
// before parts spill to temporary files.
const multipartMemory = 8 << 20

type PostHandler struct {
	posts          *services.PostService
	maxUploadBytes int64
	log            *slog.Logger
}

func NewPostHandler(posts *services.PostService, maxUploadBytes int64, log *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, maxUploadBytes: maxUploadBytes, log: log}
}

// List godoc
// @Summary List posts, newest first
// @Tags Posts
// @Produce json
// @Param userId query string false "Only posts by this user"
// @Success 200 {array} models.Post
// @Router /posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, posts)
}

// Get godoc
// @Summary Get a post with its comments
// @Tags Posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} utils.MessageBody
// @Router /posts/{id} [get]
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, post)
}

// Create godoc
// @Summary Upload an image and create a post
// @Tags Posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Param caption formData string false "Caption"
// @Success 201 {object} models.Post
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.MessageBody
// @Router /posts/add [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	image, err := h.readImage(w, r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	post, err := h.posts.Create(r.Context(), c, image, validation.CaptionInput{Caption: r.FormValue("caption")})
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, post)
}

// readImage returns the "file" part of the upload form, or nil when the
// form has no such part.
func (h *PostHandler) readImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.Validation(apperr.FieldError{
				Field:   "file",
				Message: fmt.Sprintf("file must be at most %d bytes", h.maxUploadBytes),
			})
		}
		return nil, apperr.Validation(apperr.FieldError{Field: "body", Message: "Invalid file upload form"})
	}

	file, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Validation(apperr.FieldError{Field: "file", Message: "Invalid file upload form"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return data, nil
}

// Replace godoc
// @Summary Replace a post's picture URL and caption
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body validation.PostInput true "Post"
// @Success 200 {object} models.Post
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /posts/{id} [put]
func (h *PostHandler) Replace(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	id := r.PathValue("id")
	// A non-owner is refused before the body is read.
	if _, err := h.posts.Owned(r.Context(), c, id); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.PostInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	post, err := h.posts.Replace(r.Context(), c, id, input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, post)
}

// Patch godoc
// @Summary Change some of a post's fields
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body validation.PostPatch true "Fields to change"
// @Success 200 {object} models.Post
// @Failure 400 {object} utils.ErrorBody
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Router /posts/{id} [patch]
func (h *PostHandler) Patch(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	id := r.PathValue("id")
	// A non-owner is refused before the body is read.
	if _, err := h.posts.Owned(r.Context(), c, id); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.PostPatch
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	post, err := h.posts.Patch(r.Context(), c, id, input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post and its hosted image
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} utils.MessageBody
// @Failure 403 {object} utils.MessageBody
// @Failure 404 {object} utils.MessageBody
// @Failure 500 {object} utils.MessageBody
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	if err := h.posts.Delete(r.Context(), c, r.PathValue("id")); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.Message(w, http.StatusOK, "Post and associated image deleted")
}

// Like godoc
// @Summary Like a post, or remove the caller's like
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} utils.MessageBody
// @Router /posts/{id}/like [patch]
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	post, err := h.posts.ToggleLike(r.Context(), c, r.PathValue("id"))
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, post)
}

// Comment godoc
// @Summary Comment on a post
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param body body validation.CommentInput true "Comment"
// @Success 200 {object} models.Post
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.MessageBody
// @Router /posts/{id}/comment [patch]
func (h *PostHandler) Comment(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	var input validation.CommentInput
	if err := decode(r, &input); err != nil {
		utils.Error(w, r, h.log, err)
		return
	}

	post, err := h.posts.Comment(r.Context(), c, r.PathValue("id"), input)
	if err != nil {
		utils.Error(w, r, h.log, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, post)
}
