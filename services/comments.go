package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// AddComment attaches a comment to an existing post. Anyone who can
// view a post may comment; no actor is required.
func (e *Engine) AddComment(postID uuid.UUID, title, content string) (*models.Comment, error) {
	if title == "" {
		return nil, errs.NewValidationError("title", "comment title is required")
	}
	if content == "" {
		return nil, errs.NewValidationError("content", "comment content is required")
	}

	comment := &models.Comment{
		PostID:  postID,
		Title:   title,
		Content: content,
	}

	err := e.transaction(func(tx *gorm.DB) error {
		post, err := e.db.PostRepo().WithTx(tx).FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}
		if post == nil {
			return errs.NewNotFound("post")
		}
		if err := e.db.CommentRepo().WithTx(tx).Add(comment); err != nil {
			return errs.NewDatabaseError("create", "comment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}
