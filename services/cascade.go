package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// DeletePost removes a post, its comments and its tag links, then
// sweeps any tag left without a single post link. Deletion order
// matters: dependents first, then the post, then the orphan sweep, all
// inside one transaction so a failure leaves everything in place.
func (e *Engine) DeletePost(actor models.Actor, postID uuid.UUID) error {
	if err := requireAdmin(actor, "delete post"); err != nil {
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

		if err := e.db.CommentRepo().WithTx(tx).DeleteByPost(postID); err != nil {
			return errs.NewDatabaseError("delete comments of", "post", err)
		}
		if err := e.db.PostTagRepo().WithTx(tx).DeleteByPost(postID); err != nil {
			return errs.NewDatabaseError("unlink tags of", "post", err)
		}
		if err := e.db.PostRepo().WithTx(tx).Delete(postID); err != nil {
			return errs.NewDatabaseError("delete", "post", err)
		}

		swept, err := e.db.TagRepo().WithTx(tx).DeleteOrphans()
		if err != nil {
			return errs.NewDatabaseError("sweep orphan", "tags", err)
		}
		if swept > 0 {
			e.logger.Info().Int64("tags", swept).Str("postID", postID.String()).Msg("swept orphan tags after post deletion")
		}
		return nil
	})
}

// DeleteTag removes a tag and every link referencing it. Posts are
// untouched and no orphan sweep runs; only post deletion prunes other
// tags.
func (e *Engine) DeleteTag(actor models.Actor, tagID uuid.UUID) error {
	if err := requireAdmin(actor, "delete tag"); err != nil {
		return err
	}

	return e.transaction(func(tx *gorm.DB) error {
		tag, err := e.db.TagRepo().WithTx(tx).FindByID(tagID)
		if err != nil {
			return errs.NewDatabaseError("find", "tag", err)
		}
		if tag == nil {
			return errs.NewNotFound("tag")
		}

		if err := e.db.PostTagRepo().WithTx(tx).DeleteByTag(tagID); err != nil {
			return errs.NewDatabaseError("unlink posts of", "tag", err)
		}
		if err := e.db.TagRepo().WithTx(tx).Delete(tagID); err != nil {
			return errs.NewDatabaseError("delete", "tag", err)
		}
		return nil
	})
}

// DeleteComment removes a single comment. The parent post and sibling
// comments are untouched.
func (e *Engine) DeleteComment(actor models.Actor, commentID uuid.UUID) error {
	if err := requireAdmin(actor, "delete comment"); err != nil {
		return err
	}

	return e.transaction(func(tx *gorm.DB) error {
		comment, err := e.db.CommentRepo().WithTx(tx).FindByID(commentID)
		if err != nil {
			return errs.NewDatabaseError("find", "comment", err)
		}
		if comment == nil {
			return errs.NewNotFound("comment")
		}
		if err := e.db.CommentRepo().WithTx(tx).Delete(commentID); err != nil {
			return errs.NewDatabaseError("delete", "comment", err)
		}
		return nil
	})
}
