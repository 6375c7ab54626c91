package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post represents a single blog post. Comments belong exclusively to
// their post and are removed with it; tags are shared across posts
// through the post_tags join table.
type Post struct {
	ID        uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string         `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string         `json:"content" db:"content" gorm:"type:text;not null"`
	Date      datatypes.Date `json:"date" db:"date" gorm:"not null;index:idx_posts_date"`
	ViewCount int            `json:"viewCount" db:"view_count" gorm:"type:integer;not null;default:0"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags;"`
}

// BeforeCreate assigns an ID when the caller did not. Keeps sqlite
// deployments working without a server-side uuid default.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
