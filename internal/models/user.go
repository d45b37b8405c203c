package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string         `json:"phone,omitempty"`
	PasswordHash string         `json:"-" gorm:"column:password"`
	GoogleID     string         `json:"-" gorm:"index"`
	DOB          *time.Time     `json:"dob,omitempty"`
	Notes        pq.StringArray `json:"notes" gorm:"type:text[];not null;default:'{}'"`
	Contacts     pq.StringArray `json:"contacts" gorm:"type:text[];not null;default:'{}'"`
	Posts        pq.StringArray `json:"posts" gorm:"type:text[];not null;default:'{}'"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// PublicUser is the only shape of a user that leaves the API.
type PublicUser struct {
	ID        uuid.UUID  `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	DOB       *time.Time `json:"dob,omitempty"`
	Notes     []string   `json:"notes"`
	Contacts  []string   `json:"contacts"`
	Posts     []string   `json:"posts"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		DOB:       u.DOB,
		Notes:     nonNil(u.Notes),
		Contacts:  nonNil(u.Contacts),
		Posts:     nonNil(u.Posts),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}
