package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/myspace/internal/models"
)

type postRepo struct {
	db *gorm.DB
}

// withComments preloads comments in the order they were written.
func withComments(db *gorm.DB) *gorm.DB {
	return db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

func (r *postRepo) Create(ctx context.Context, p *models.Post) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Comments").Create(p).Error; err != nil {
			return translate(err)
		}
		return appendRef(tx, refPosts, p.UserID, p.ID)
	})
}

func (r *postRepo) List(ctx context.Context, owner *uuid.UUID) ([]models.Post, error) {
	q := withComments(r.db.WithContext(ctx)).Order("created_at DESC")
	if owner != nil {
		q = q.Where("user_id = ?", *owner)
	}

	posts := []models.Post{}
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *postRepo) get(db *gorm.DB, id uuid.UUID) (*models.Post, error) {
	var p models.Post
	if err := withComments(db).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *postRepo) Update(ctx context.Context, p *models.Post) error {
	res := r.db.WithContext(ctx).Model(p).
		Select("pic", "caption", "updated_at").
		Updates(p)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete relies on the comments foreign key cascading.
func (r *postRepo) Delete(ctx context.Context, p *models.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Post{}, "id = ?", p.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return removeRef(tx, refPosts, p.UserID, p.ID)
	})
}

func (r *postRepo) ToggleLike(ctx context.Context, id uuid.UUID, userID string) (*models.Post, error) {
	var out *models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", id).
			Update("likes", gorm.Expr(
				"CASE WHEN ? = ANY(likes) THEN array_remove(likes, ?) ELSE array_append(likes, ?) END",
				userID, userID, userID,
			))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		p, err := r.get(tx, id)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (r *postRepo) AddComment(ctx context.Context, c *models.Comment) (*models.Post, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	var out *models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Post{}).Where("id = ?", c.PostID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
		if err := tx.Create(c).Error; err != nil {
			return translate(err)
		}

		p, err := r.get(tx, c.PostID)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (r *postRepo) ListOwned(ctx context.Context, owner uuid.UUID, ids []string) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Or("id IN ?", ownedIDs(ids)).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) DeleteByOwner(ctx context.Context, owner uuid.UUID, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Or("id IN ?", ownedIDs(ids)).
		Delete(&models.Post{})
	return res.RowsAffected, res.Error
}
