package services

import (
	"context"
	"log/slog"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/validation"
)

const (
	msgUserNotFound  = "User not found"
	msgUserForbidden = "Forbidden"
)

// Cascader removes what a deleted user owned.
type Cascader interface {
	Run(ctx context.Context, job models.CleanupJob) error
}

// UserDetails is a profile together with the user's posts.
type UserDetails struct {
	User  models.PublicUser `json:"user"`
	Posts []models.Post     `json:"posts"`
}

type UserService struct {
	users   repositories.UserRepository
	posts   repositories.PostRepository
	cascade Cascader
	log     *slog.Logger
}

func NewUserService(users repositories.UserRepository, posts repositories.PostRepository, cascade Cascader, log *slog.Logger) *UserService {
	return &UserService{users: users, posts: posts, cascade: cascade, log: log}
}

// self allows a caller to act only on their own account.
func (s *UserService) self(caller Caller, rawID string) error {
	if rawID != caller.ID.String() {
		return apperr.Forbidden(msgUserForbidden)
	}
	return nil
}

func (s *UserService) Details(ctx context.Context, caller Caller, rawID string) (*UserDetails, error) {
	if err := s.self(caller, rawID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, storeErr(err, msgUserNotFound, "")
	}
	posts, err := s.posts.List(ctx, &user.ID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return &UserDetails{User: user.Public(), Posts: posts}, nil
}

// Update replaces the profile. A non-empty password is rehashed.
func (s *UserService) Update(ctx context.Context, caller Caller, rawID string, in validation.UserUpdateInput) (models.PublicUser, error) {
	if err := s.self(caller, rawID); err != nil {
		return models.PublicUser{}, err
	}
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return models.PublicUser{}, storeErr(err, msgUserNotFound, "")
	}
	if err := validation.Struct(&in); err != nil {
		return models.PublicUser{}, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.DOB = validation.ParseDate(in.DOB)
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.PublicUser{}, apperr.Unexpected(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return models.PublicUser{}, storeErr(err, msgUserNotFound, msgUserExists)
	}
	return user.Public(), nil
}

// Delete removes the account. The resources it owned are cleaned up
// right after; a failed cleanup is retried in the background and never
// fails the request.
func (s *UserService) Delete(ctx context.Context, caller Caller, rawID string) error {
	if err := s.self(caller, rawID); err != nil {
		return err
	}

	job, err := s.users.Delete(ctx, caller.ID)
	if err != nil {
		return storeErr(err, msgUserNotFound, "")
	}

	if err := s.cascade.Run(context.WithoutCancel(ctx), *job); err != nil {
		s.log.WarnContext(ctx, "cleanup deferred to background sweep",
			"user_id", caller.ID, "job_id", job.ID, "error", err)
	}
	return nil
}
