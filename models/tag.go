package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag labels a topic across posts. A tag that loses its last post link
// is deleted by the orphan sweep rather than by a database constraint,
// so a zero-link tag may exist transiently inside a transaction.
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:uq_tags_name"`
	ViewCount int       `json:"viewCount" db:"view_count" gorm:"type:integer;not null;default:0"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags;"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
