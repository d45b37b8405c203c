package services

import (
	"cmp"
	"context"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/validation"
)

const (
	msgNoteNotFound  = "Note not found"
	msgNoteForbidden = "Forbidden: You do not own this note"
)

type NoteService struct {
	notes repositories.NoteRepository
}

func NewNoteService(notes repositories.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) Create(ctx context.Context, caller Caller, in validation.NoteInput) (*models.Note, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	note := &models.Note{
		UserID:      caller.ID,
		Title:       cmp.Or(in.Title, models.DefaultNoteTitle),
		Description: in.Description,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, storeErr(err, "User not found", msgNoteNotFound)
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, caller Caller) ([]models.Note, error) {
	notes, err := s.notes.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, caller Caller, rawID string) (*models.Note, error) {
	id, err := parseID(rawID, msgNoteNotFound)
	if err != nil {
		return nil, err
	}
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, msgNoteNotFound, "")
	}
	if note.UserID != caller.ID {
		return nil, apperr.Forbidden(msgNoteForbidden)
	}
	return note, nil
}

// Update replaces title and description after the ownership check.
func (s *NoteService) Update(ctx context.Context, caller Caller, rawID string, in validation.NoteInput) (*models.Note, error) {
	note, err := s.Get(ctx, caller, rawID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	note.Title = cmp.Or(in.Title, models.DefaultNoteTitle)
	note.Description = in.Description
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, storeErr(err, msgNoteNotFound, "")
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, caller Caller, rawID string) error {
	note, err := s.Get(ctx, caller, rawID)
	if err != nil {
		return err
	}
	return storeErr(s.notes.Delete(ctx, note), msgNoteNotFound, "")
}
