package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/database"
	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// validateTagIDs fails with a reference error when any of the given
// ids does not name an existing tag. Nothing is written on failure, so
// an edit can never leave a dangling link behind.
func validateTagIDs(tx *gorm.DB, tagRepo *database.TagRepo, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := tagRepo.WithTx(tx).ExistingIDs(ids)
	if err != nil {
		return errs.NewDatabaseError("validate", "tags", err)
	}
	existing := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return errs.NewInvalidReference("tag " + id.String())
		}
	}
	return nil
}

// setPostTagsTx reconciles the post's link set against desired inside
// an open transaction. Links not in desired are removed, missing ones
// are added, and the intersection is left untouched, so applying the
// same desired set twice is a no-op the second time. Orphaned tags are
// deliberately not swept here: editing never deletes tags.
func (e *Engine) setPostTagsTx(tx *gorm.DB, postID uuid.UUID, desired []uuid.UUID) error {
	desired = dedupeIDs(desired)

	if err := validateTagIDs(tx, e.db.TagRepo(), desired); err != nil {
		return err
	}

	linkRepo := e.db.PostTagRepo().WithTx(tx)
	current, err := linkRepo.TagIDsForPost(postID)
	if err != nil {
		return errs.NewDatabaseError("load links for", "post", err)
	}

	wanted := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		wanted[id] = struct{}{}
	}
	have := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}

	for _, id := range current {
		if _, ok := wanted[id]; !ok {
			if err := linkRepo.DeleteLink(postID, id); err != nil {
				return errs.NewDatabaseError("unlink", "post_tag", err)
			}
		}
	}
	for _, id := range desired {
		if _, ok := have[id]; !ok {
			if err := linkRepo.Add(&models.PostTag{PostID: postID, TagID: id}); err != nil {
				return errs.NewDatabaseError("link", "post_tag", err)
			}
		}
	}
	return nil
}

// linkNewPostTx attaches tags to a freshly created post. The post has
// no links yet, so this is pure insertion after eager validation.
func (e *Engine) linkNewPostTx(tx *gorm.DB, postID uuid.UUID, tagIDs []uuid.UUID) error {
	tagIDs = dedupeIDs(tagIDs)

	if err := validateTagIDs(tx, e.db.TagRepo(), tagIDs); err != nil {
		return err
	}

	linkRepo := e.db.PostTagRepo().WithTx(tx)
	for _, id := range tagIDs {
		if err := linkRepo.Add(&models.PostTag{PostID: postID, TagID: id}); err != nil {
			return errs.NewDatabaseError("link", "post_tag", err)
		}
	}
	return nil
}

// SetPostTags reconciles a post's tag associations as a standalone
// operation. EditPost uses the same reconciliation within its own
// transaction.
func (e *Engine) SetPostTags(actor models.Actor, postID uuid.UUID, desired []uuid.UUID) error {
	if err := requireAdmin(actor, "set post tags"); err != nil {
		return err
	}

	return e.transaction(func(tx *gorm.DB) error {
		post, err := e.db.PostRepo().WithTx(tx).FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}
		if post == nil {
			return errs.NewNotFound("post")
		}
		return e.setPostTagsTx(tx, postID, desired)
	})
}
