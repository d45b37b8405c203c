package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CleanupJob records the resources still owned by a deleted user. It is
// written in the same transaction that removes the user row and deleted once
// every listed resource and hosted image is gone.
type CleanupJob struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	NoteIDs    pq.StringArray `json:"noteIds" gorm:"type:text[];not null;default:'{}'"`
	ContactIDs pq.StringArray `json:"contactIds" gorm:"type:text[];not null;default:'{}'"`
	PostIDs    pq.StringArray `json:"postIds" gorm:"type:text[];not null;default:'{}'"`
	Attempts   int            `json:"attempts" gorm:"not null;default:0"`
	LastError  string         `json:"lastError,omitempty"`
	CreatedAt  time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}
