package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/auth"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/validation"
)

const (
	msgUserExists         = "User already exists with this email"
	msgUserDoesNotExist   = "User does not exist"
	msgInvalidCredentials = "Invalid credentials"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Generate(userID, name string) (string, error)
}

// SessionUser is the user summary returned at sign-in.
type SessionUser struct {
	ID    uuid.UUID `json:"_id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type Session struct {
	Token string
	User  SessionUser
}

// GoogleProfile is the subset of the Google userinfo response we keep.
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthService struct {
	users  repositories.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users repositories.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account. The stored hash never leaves this method.
func (s *AuthService) Register(ctx context.Context, in validation.SignUpInput) (models.PublicUser, error) {
	if err := validation.Struct(&in); err != nil {
		return models.PublicUser{}, err
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return models.PublicUser{}, apperr.Conflict(msgUserExists)
	case !errors.Is(err, repositories.ErrNotFound):
		return models.PublicUser{}, apperr.Unexpected(err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.PublicUser{}, apperr.Unexpected(err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		DOB:          validation.ParseDate(in.DOB),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return models.PublicUser{}, storeErr(err, msgUserDoesNotExist, msgUserExists)
	}
	return user.Public(), nil
}

// Authenticate fails with NotFound for an unknown email and Unauthorized
// for a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, in validation.SignInInput) (*Session, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, storeErr(err, msgUserDoesNotExist, "")
	}
	if err := auth.CheckPassword(user.PasswordHash, in.Password); err != nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	return s.session(user)
}

// GoogleSignIn finds the account linked to the Google profile, links an
// existing account with the same email, or creates a password-less one.
func (s *AuthService) GoogleSignIn(ctx context.Context, profile GoogleProfile) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if profile.ID == "" || email == "" {
		return nil, apperr.Unauthorized("Google account has no verified email")
	}

	user, err := s.users.GetByGoogleID(ctx, profile.ID)
	if err == nil {
		return s.session(user)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.Unexpected(err)
	}

	user, err = s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		user.GoogleID = profile.ID
		if err := s.users.Update(ctx, user); err != nil {
			return nil, storeErr(err, msgUserDoesNotExist, msgUserExists)
		}
	case errors.Is(err, repositories.ErrNotFound):
		name := strings.TrimSpace(profile.Name)
		if name == "" {
			name, _, _ = strings.Cut(email, "@")
		}
		user = &models.User{Name: name, Email: email, GoogleID: profile.ID}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, storeErr(err, msgUserDoesNotExist, msgUserExists)
		}
	default:
		return nil, apperr.Unexpected(err)
	}
	return s.session(user)
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := s.tokens.Generate(user.ID.String(), user.Name)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return &Session{
		Token: token,
		User:  SessionUser{ID: user.ID, Email: user.Email, Name: user.Name},
	}, nil
}
