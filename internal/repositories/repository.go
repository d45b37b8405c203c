// Package repositories persists users and the resources they own.
//
// Every write that touches an owned resource also maintains the owner's
// reverse-reference set (users.notes, users.contacts, users.posts) in the
// same unit of work.
package repositories

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/rohits-web03/myspace/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	// Update writes the profile columns and the password hash.
	Update(ctx context.Context, u *models.User) error
	// Delete removes the user and enqueues the cleanup job for everything it
	// owned, atomically.
	Delete(ctx context.Context, id uuid.UUID) (*models.CleanupJob, error)
	// ListIDs returns every user id, oldest account first.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	// SetRefs overwrites the reverse-reference sets.
	SetRefs(ctx context.Context, id uuid.UUID, notes, contacts, posts []string) error
}

type NoteRepository interface {
	Create(ctx context.Context, n *models.Note) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	Update(ctx context.Context, n *models.Note) error
	Delete(ctx context.Context, n *models.Note) error
	DeleteByOwner(ctx context.Context, owner uuid.UUID, ids []string) (int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	// ListByOwner returns contacts sorted by name.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	GetByName(ctx context.Context, owner uuid.UUID, name string) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) error
	Delete(ctx context.Context, c *models.Contact) error
	DeleteByOwner(ctx context.Context, owner uuid.UUID, ids []string) (int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	// List returns posts newest first, optionally only those of owner.
	List(ctx context.Context, owner *uuid.UUID) ([]models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	// Update writes pic and caption.
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, p *models.Post) error
	// ToggleLike adds userID to the likes set, or removes it when present,
	// in one atomic step and returns the resulting post.
	ToggleLike(ctx context.Context, id uuid.UUID, userID string) (*models.Post, error)
	AddComment(ctx context.Context, c *models.Comment) (*models.Post, error)
	// ListOwned returns posts owned by owner or listed in ids.
	ListOwned(ctx context.Context, owner uuid.UUID, ids []string) ([]models.Post, error)
	DeleteByOwner(ctx context.Context, owner uuid.UUID, ids []string) (int64, error)
}

type CleanupRepository interface {
	// Pending returns queued jobs, oldest first.
	Pending(ctx context.Context, limit int) ([]models.CleanupJob, error)
	RecordFailure(ctx context.Context, id uuid.UUID, cause string) error
	Complete(ctx context.Context, id uuid.UUID) error
}

// Store bundles the repositories of one backend.
type Store struct {
	Users    UserRepository
	Notes    NoteRepository
	Contacts ContactRepository
	Posts    PostRepository
	Cleanup  CleanupRepository

	closer io.Closer
}

// NewStore assembles a Store; closer may be nil.
func NewStore(users UserRepository, notes NoteRepository, contacts ContactRepository,
	posts PostRepository, cleanup CleanupRepository, closer io.Closer) *Store {
	return &Store{
		Users:    users,
		Notes:    notes,
		Contacts: contacts,
		Posts:    posts,
		Cleanup:  cleanup,
		closer:   closer,
	}
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
