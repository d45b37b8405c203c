package services

import (
	"context"
	"errors"

	"github.com/rohits-web03/myspace/internal/apperr"
	"github.com/rohits-web03/myspace/internal/models"
	"github.com/rohits-web03/myspace/internal/repositories"
	"github.com/rohits-web03/myspace/internal/validation"
)

const (
	msgContactNotFound  = "Contact not found"
	msgContactForbidden = "Forbidden: You do not own this contact"
	msgContactExists    = "Contact with this name already exists"
)

type ContactService struct {
	contacts repositories.ContactRepository
}

func NewContactService(contacts repositories.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create fails with Conflict when the caller already has a contact of the
// same name. The unique index backs up the pre-check under concurrency.
func (s *ContactService) Create(ctx context.Context, caller Caller, in validation.ContactInput) (*models.Contact, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, caller, in.Name, nil); err != nil {
		return nil, err
	}

	contact := &models.Contact{UserID: caller.ID}
	apply(contact, in)
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, storeErr(err, "User not found", msgContactExists)
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context, caller Caller) ([]models.Contact, error) {
	contacts, err := s.contacts.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, caller Caller, rawID string) (*models.Contact, error) {
	id, err := parseID(rawID, msgContactNotFound)
	if err != nil {
		return nil, err
	}
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, msgContactNotFound, "")
	}
	if contact.UserID != caller.ID {
		return nil, apperr.Forbidden(msgContactForbidden)
	}
	return contact, nil
}

// Update replaces every field with what the client sent; omitted fields
// are cleared.
func (s *ContactService) Update(ctx context.Context, caller Caller, rawID string, in validation.ContactInput) (*models.Contact, error) {
	contact, err := s.Get(ctx, caller, rawID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if in.Name != contact.Name {
		if err := s.ensureNameFree(ctx, caller, in.Name, contact); err != nil {
			return nil, err
		}
	}

	apply(contact, in)
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, storeErr(err, msgContactNotFound, msgContactExists)
	}
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, caller Caller, rawID string) error {
	contact, err := s.Get(ctx, caller, rawID)
	if err != nil {
		return err
	}
	return storeErr(s.contacts.Delete(ctx, contact), msgContactNotFound, "")
}

func (s *ContactService) ensureNameFree(ctx context.Context, caller Caller, name string, self *models.Contact) error {
	existing, err := s.contacts.GetByName(ctx, caller.ID, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	case err != nil:
		return apperr.Unexpected(err)
	case self != nil && existing.ID == self.ID:
		return nil
	default:
		return apperr.Conflict(msgContactExists)
	}
}

func apply(c *models.Contact, in validation.ContactInput) {
	c.Name = in.Name
	c.Email = models.ContactEmail{}
	if in.Email != nil {
		c.Email = models.ContactEmail{Personal: in.Email.Personal, Work: in.Email.Work}
	}
	c.Phone = models.ContactPhone{}
	if in.Phone != nil {
		c.Phone = models.ContactPhone{Personal: in.Phone.Personal, Work: in.Phone.Work}
	}
	c.Address = in.Address
	c.DOB = validation.ParseDate(in.DOB)
}
