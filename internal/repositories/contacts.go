package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/myspace/internal/models"
)

type contactRepo struct {
	db *gorm.DB
}

func (r *contactRepo) Create(ctx context.Context, c *models.Contact) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return translate(err)
		}
		return appendRef(tx, refContacts, c.UserID, c.ID)
	})
}

func (r *contactRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("name ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var c models.Contact
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *contactRepo) GetByName(ctx context.Context, owner uuid.UUID, name string) (*models.Contact, error) {
	var c models.Contact
	if err := r.db.WithContext(ctx).First(&c, "user_id = ? AND name = ?", owner, name).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *contactRepo) Update(ctx context.Context, c *models.Contact) error {
	res := r.db.WithContext(ctx).Model(c).
		Select("name", "email_personal", "email_work", "phone_personal", "phone_work",
			"address", "dob", "updated_at").
		Updates(c)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, c *models.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Contact{}, "id = ?", c.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return removeRef(tx, refContacts, c.UserID, c.ID)
	})
}

func (r *contactRepo) DeleteByOwner(ctx context.Context, owner uuid.UUID, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Or("id IN ?", ownedIDs(ids)).
		Delete(&models.Contact{})
	return res.RowsAffected, res.Error
}
