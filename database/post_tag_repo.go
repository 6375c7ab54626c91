package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/models"
)

type PostTagRepo struct {
	db *gorm.DB
}

func NewPostTagRepo(db *gorm.DB) *PostTagRepo {
	return &PostTagRepo{db}
}

func (r *PostTagRepo) WithTx(tx *gorm.DB) *PostTagRepo {
	return &PostTagRepo{tx}
}

// TagIDsForPost returns the ids of every tag currently linked to the post.
func (r *PostTagRepo) TagIDsForPost(postID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.PostTag{}).Where("post_id = ?", postID).Pluck("tag_id", &ids).Error
	return ids, err
}

// Add inserts one post↔tag edge.
func (r *PostTagRepo) Add(link *models.PostTag) error {
	return r.db.Create(link).Error
}

// DeleteLink removes a single edge.
func (r *PostTagRepo) DeleteLink(postID, tagID uuid.UUID) error {
	return r.db.Where("post_id = ? AND tag_id = ?", postID, tagID).Delete(&models.PostTag{}).Error
}

// DeleteByPost removes every edge referencing the post.
func (r *PostTagRepo) DeleteByPost(postID uuid.UUID) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error
}

// DeleteByTag removes every edge referencing the tag.
func (r *PostTagRepo) DeleteByTag(tagID uuid.UUID) error {
	return r.db.Where("tag_id = ?", tagID).Delete(&models.PostTag{}).Error
}

// CountForTag returns how many posts currently link the tag.
func (r *PostTagRepo) CountForTag(tagID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.PostTag{}).Where("tag_id = ?", tagID).Count(&n).Error
	return n, err
}
