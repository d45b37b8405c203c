package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/media"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/validation"
)

const (
	msgPostNotFound  = "Post not found"
	msgPostForbidden = "Forbidden"
)

type PostService struct {
	posts  repositories.PostRepository
	images media.Store
	log    *slog.Logger
}

func NewPostService(posts repositories.PostRepository, images media.Store, log *slog.Logger) *PostService {
	return &PostService{posts: posts, images: images, log: log}
}

// List returns every post, or only rawOwner's when it is set. An owner id
// that cannot exist yields an empty list.
func (s *PostService) List(ctx context.Context, rawOwner string) ([]models.Post, error) {
	var owner *uuid.UUID
	if rawOwner != "" {
		id, err := uuid.Parse(rawOwner)
		if err != nil {
			return []models.Post{}, nil
		}
		owner = &id
	}

	posts, err := s.posts.List(ctx, owner)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, rawID string) (*models.Post, error) {
	id, err := parseID(rawID, msgPostNotFound)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, msgPostNotFound, "")
	}
	return post, nil
}

// Owned loads a post and fails with 403 unless caller owns it.
func (s *PostService) Owned(ctx context.Context, caller Caller, rawID string) (*models.Post, error) {
	post, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if post.UserID != caller.ID {
		return nil, apperr.Forbidden(msgPostForbidden)
	}
	return post, nil
}

// Create uploads the image and then stores the post. Nothing is stored when
// the upload fails; the image is removed again when storing fails.
func (s *PostService) Create(ctx context.Context, caller Caller, image []byte, in validation.CaptionInput) (*models.Post, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, apperr.Validation(apperr.FieldError{Field: "file", Message: "file is required"})
	}
	img, err := media.DetectImage(image)
	if err != nil {
		return nil, apperr.Validation(apperr.FieldError{Field: "file", Message: "file must be an image"})
	}

	up, err := s.images.Upload(ctx, image, img.ContentType)
	if err != nil {
		return nil, apperr.External("Image upload failed", err)
	}

	post := &models.Post{
		UserID:  caller.ID,
		Pic:     up.URL,
		ImageID: up.ID,
		Caption: in.Caption,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if delErr := s.images.Delete(context.WithoutCancel(ctx), up.ID); delErr != nil {
			s.log.ErrorContext(ctx, "failed to remove orphaned image", "image_id", up.ID, "error", delErr)
		}
		return nil, storeErr(err, msgUserNotFound, "")
	}
	return post, nil
}

// Replace is the full update: pic and caption both come from in.
func (s *PostService) Replace(ctx context.Context, caller Caller, rawID string, in validation.PostInput) (*models.Post, error) {
	post, err := s.Owned(ctx, caller, rawID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	post.Pic = in.Pic
	post.Caption = in.Caption
	return s.save(ctx, post)
}

// Patch changes only the fields present in in.
func (s *PostService) Patch(ctx context.Context, caller Caller, rawID string, in validation.PostPatch) (*models.Post, error) {
	post, err := s.Owned(ctx, caller, rawID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if in.Pic != nil {
		post.Pic = *in.Pic
	}
	if in.Caption != nil {
		post.Caption = *in.Caption
	}
	return s.save(ctx, post)
}

func (s *PostService) save(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, storeErr(err, msgPostNotFound, "")
	}
	return post, nil
}

// Delete removes the hosted image first. If the host refuses, the post is
// kept so the deletion can be retried.
func (s *PostService) Delete(ctx context.Context, caller Caller, rawID string) error {
	post, err := s.Owned(ctx, caller, rawID)
	if err != nil {
		return err
	}

	if err := s.images.Delete(ctx, post.ImageID); err != nil {
		return apperr.External("Failed to delete image", err)
	}
	if err := s.posts.Delete(ctx, post); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return apperr.Unexpected(err)
	}
	return nil
}

// ToggleLike likes the post for the caller, or removes the like when the
// caller already liked it.
func (s *PostService) ToggleLike(ctx context.Context, caller Caller, rawID string) (*models.Post, error) {
	id, err := parseID(rawID, msgPostNotFound)
	if err != nil {
		return nil, err
	}
	post, err := s.posts.ToggleLike(ctx, id, caller.ID.String())
	if err != nil {
		return nil, storeErr(err, msgPostNotFound, "")
	}
	return post, nil
}

// Comment appends a comment by the caller. Comments cannot be edited or
// removed individually.
func (s *PostService) Comment(ctx context.Context, caller Caller, rawID string, in validation.CommentInput) (*models.Post, error) {
	id, err := parseID(rawID, msgPostNotFound)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	post, err := s.posts.AddComment(ctx, &models.Comment{
		PostID:   id,
		UserID:   caller.ID,
		UserName: caller.Name,
		Text:     in.Text,
	})
	if err != nil {
		return nil, storeErr(err, msgPostNotFound, "")
	}
	return post, nil
}
