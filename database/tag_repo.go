package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

func (r *TagRepo) WithTx(tx *gorm.DB) *TagRepo {
	return &TagRepo{tx}
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByID returns a tag by id, or nil when it does not exist.
func (r *TagRepo) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName returns a tag by its unique name, or nil when absent.
func (r *TagRepo) FindByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ExistingIDs filters the given ids down to those that reference a tag
// row. Used for eager link validation.
func (r *TagRepo) ExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uuid.UUID
	err := r.db.Model(&models.Tag{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Omit("Posts").Create(tag).Error
}

// Delete removes a tag row by id.
func (r *TagRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tag{}, "id = ?", id).Error
}

// DeleteOrphans removes every tag with no remaining post link and
// returns how many were swept.
func (r *TagRepo) DeleteOrphans() (int64, error) {
	res := r.db.
		Where("NOT EXISTS (SELECT 1 FROM post_tags WHERE post_tags.tag_id = tags.id)").
		Delete(&models.Tag{})
	return res.RowsAffected, res.Error
}

// IncrementViewsForPost bumps view_count for every tag linked to the
// post, fan-out in one UPDATE.
func (r *TagRepo) IncrementViewsForPost(postID uuid.UUID) error {
	return r.db.Model(&models.Tag{}).
		Where("id IN (?)", r.db.Model(&models.PostTag{}).Select("tag_id").Where("post_id = ?", postID)).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// TopByViews returns the most viewed tags, best first.
func (r *TagRepo) TopByViews(limit int) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("view_count DESC").Limit(limit).Find(&tags).Error
	return tags, err
}
