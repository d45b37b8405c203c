package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactEmail and ContactPhone are stored inline on the contacts table
// (email_personal, email_work, phone_personal, phone_work).
type ContactEmail struct {
	Personal string `json:"personal,omitempty"`
	Work     string `json:"work,omitempty"`
}

type ContactPhone struct {
	Personal string `json:"personal,omitempty"`
	Work     string `json:"work,omitempty"`
}

type Contact struct {
	ID        uuid.UUID    `json:"_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_contacts_owner_name"`
	Name      string       `json:"name" gorm:"not null;uniqueIndex:idx_contacts_owner_name"`
	Email     ContactEmail `json:"email" gorm:"embedded;embeddedPrefix:email_"`
	Phone     ContactPhone `json:"phone" gorm:"embedded;embeddedPrefix:phone_"`
	Address   string       `json:"address,omitempty"`
	DOB       *time.Time   `json:"dob,omitempty"`
	CreatedAt time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}
