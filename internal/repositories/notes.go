package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/myspace/internal/models"
)

type noteRepo struct {
	db *gorm.DB
}

func (r *noteRepo) Create(ctx context.Context, n *models.Note) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return translate(err)
		}
		return appendRef(tx, refNotes, n.UserID, n.ID)
	})
}

func (r *noteRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]models.Note, error) {
	notes := []models.Note{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", owner).Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var n models.Note
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *noteRepo) Update(ctx context.Context, n *models.Note) error {
	res := r.db.WithContext(ctx).Model(n).
		Select("title", "description", "updated_at").
		Updates(n)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, n *models.Note) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Note{}, "id = ?", n.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return removeRef(tx, refNotes, n.UserID, n.ID)
	})
}

func (r *noteRepo) DeleteByOwner(ctx context.Context, owner uuid.UUID, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Or("id IN ?", ownedIDs(ids)).
		Delete(&models.Note{})
	return res.RowsAffected, res.Error
}

// ownedIDs drops entries that are not UUIDs so a corrupted reference set
// cannot break the IN clause.
func ownedIDs(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, s := range ids {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}
