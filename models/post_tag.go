package models

import "github.com/google/uuid"

// PostTag is the post↔tag many-to-many edge. The composite primary key
// guarantees the pair is unique; both columns reference existing rows.
type PostTag struct {
	PostID uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;primaryKey;not null"`
	TagID  uuid.UUID `json:"tagId" db:"tag_id" gorm:"type:uuid;primaryKey;not null"`
}

// TableName pins the join table shared with the many2many relations on
// Post and Tag.
func (PostTag) TableName() string {
	return "post_tags"
}
