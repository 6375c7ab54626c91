package services

import (
	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// CreateTag adds a new topic tag. Names are unique; recreating an
// existing one fails with an already-exists error.
func (e *Engine) CreateTag(actor models.Actor, name string) (*models.Tag, error) {
	if err := requireAdmin(actor, "create tag"); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValidationError("name", "tag name is required")
	}

	existing, err := e.db.TagRepo().FindByName(name)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("tag")
	}

	tag := &models.Tag{Name: name}
	if err := e.db.TagRepo().Add(tag); err != nil {
		return nil, errs.NewDatabaseError("create", "tag", err)
	}

	e.logger.Info().Str("tagID", tag.ID.String()).Str("name", name).Msg("tag created")
	return tag, nil
}

// ListTags returns every tag, name order.
func (e *Engine) ListTags() ([]*models.Tag, error) {
	tags, err := e.db.TagRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("list", "tags", err)
	}
	return tags, nil
}
