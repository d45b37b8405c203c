package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Post struct {
	ID        uuid.UUID      `json:"_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Pic       string         `json:"pic" gorm:"not null"`
	ImageID   string         `json:"-"` // deletion handle at the image host
	Caption   string         `json:"caption"`
	Likes     pq.StringArray `json:"likes" gorm:"type:text[];not null;default:'{}'"`
	Comments  []Comment      `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Comment struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID `json:"user" gorm:"type:uuid;not null"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy reports whether userID is in the post's likes set.
func (p *Post) LikedBy(userID string) bool {
	return slices.Contains(p.Likes, userID)
}
