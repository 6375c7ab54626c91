package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

func (r *CommentRepo) WithTx(tx *gorm.DB) *CommentRepo {
	return &CommentRepo{tx}
}

// FindByID returns a comment by id, or nil when it does not exist.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPost returns a post's comments, oldest first.
func (r *CommentRepo) FindByPost(postID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment row by id.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

// DeleteByPost removes every comment owned by the post.
func (r *CommentRepo) DeleteByPost(postID uuid.UUID) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}

// Count returns the site-wide number of comment rows.
func (r *CommentRepo) Count() (int, error) {
	var n int64
	err := r.db.Model(&models.Comment{}).Count(&n).Error
	return int(n), err
}
