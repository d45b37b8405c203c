package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNoteTitle is stored when a note is saved without a title.
const DefaultNoteTitle = "Untitled"

type Note struct {
	ID          uuid.UUID `json:"_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
