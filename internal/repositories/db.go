package repositories

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/myspace/internal/models"
)

// Open connects to Postgres, runs migrations and returns the gorm-backed
// store.
func Open(dsn string, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.Contact{},
		&models.Post{},
		&models.Comment{},
		&models.CleanupJob{},
	)
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	log.Info("Successfully connected to database")
	return NewStore(
		&userRepo{db: db},
		&noteRepo{db: db},
		&contactRepo{db: db},
		&postRepo{db: db},
		&cleanupRepo{db: db},
		sqlDB,
	), nil
}

// NewGormStore wraps an already opened connection without migrating it.
func NewGormStore(db *gorm.DB) *Store {
	return NewStore(&userRepo{db: db}, &noteRepo{db: db}, &contactRepo{db: db},
		&postRepo{db: db}, &cleanupRepo{db: db}, nil)
}

// translate maps gorm errors onto the package sentinels. Duplicate keys are
// only recognized when the connection was opened with TranslateError.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// Reverse-reference columns on users.
const (
	refNotes    = "notes"
	refContacts = "contacts"
	refPosts    = "posts"
)

func appendRef(tx *gorm.DB, column string, owner, id uuid.UUID) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", owner).
		Update(column, gorm.Expr("array_append("+column+", ?)", id.String()))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// removeRef tolerates a missing owner; the resource row is what matters.
func removeRef(tx *gorm.DB, column string, owner, id uuid.UUID) error {
	return tx.Model(&models.User{}).
		Where("id = ?", owner).
		Update(column, gorm.Expr("array_remove("+column+", ?)", id.String())).Error
}
