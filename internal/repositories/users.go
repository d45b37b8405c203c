package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rohits-web03/myspace/internal/models"
)

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "google_id = ?", googleID).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	res := r.db.WithContext(ctx).Model(u).
		Select("name", "email", "phone", "dob", "password", "google_id", "updated_at").
		Updates(u)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) (*models.CleanupJob, error) {
	var job *models.CleanupJob
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", id).Error; err != nil {
			return err
		}

		job = &models.CleanupJob{
			ID:         uuid.New(),
			UserID:     u.ID,
			NoteIDs:    u.Notes,
			ContactIDs: u.Contacts,
			PostIDs:    u.Posts,
		}
		return tx.Create(job).Error
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *userRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.User{}).Order("created_at").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *userRepo) SetRefs(ctx context.Context, id uuid.UUID, notes, contacts, posts []string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			refNotes:    stringArray(notes),
			refContacts: stringArray(contacts),
			refPosts:    stringArray(posts),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// stringArray keeps nil slices from being written as NULL.
func stringArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}
