package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/myspace/internal/models"
)

type cleanupRepo struct {
	db *gorm.DB
}

func (r *cleanupRepo) Pending(ctx context.Context, limit int) ([]models.CleanupJob, error) {
	jobs := []models.CleanupJob{}
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *cleanupRepo) RecordFailure(ctx context.Context, id uuid.UUID, cause string) error {
	return r.db.WithContext(ctx).Model(&models.CleanupJob{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": cause,
		}).Error
}

// Complete is idempotent.
func (r *cleanupRepo) Complete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.CleanupJob{}, "id = ?", id).Error
}
