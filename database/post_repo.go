package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// WithTx returns a repo bound to an open transaction.
func (r *PostRepo) WithTx(tx *gorm.DB) *PostRepo {
	return &PostRepo{tx}
}

// FindAll returns all posts ordered by date, newest first.
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Tags").Order("date DESC").Find(&posts).Error
	return posts, err
}

// FindByTagIDs returns posts linked to any of the given tags, ordered
// by date descending. A post matching several of the requested tags
// appears once.
func (r *PostRepo) FindByTagIDs(tagIDs []uuid.UUID) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.
		Distinct("posts.*").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ?", tagIDs).
		Order("date DESC").
		Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID with tags preloaded, or nil when
// no such post exists.
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Omit("Tags", "Comments").Create(post).Error
}

// Update updates the editable columns of an existing post. Tag links
// are reconciled separately so view_count never regresses here.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
			"date":    post.Date,
		}).Error
}

// Delete removes a post row by id.
func (r *PostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}

// IncrementViews bumps view_count atomically in a single UPDATE so
// concurrent readers cannot lose an increment.
func (r *PostRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// TotalViews returns the site-wide cumulative view count.
func (r *PostRepo) TotalViews() (int, error) {
	var total *int
	err := r.db.Model(&models.Post{}).Select("SUM(view_count)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// TopByViews returns the most viewed posts, best first.
func (r *PostRepo) TopByViews(limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Order("view_count DESC").Limit(limit).Find(&posts).Error
	return posts, err
}
