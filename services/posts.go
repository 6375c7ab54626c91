package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// PostInput carries the writable fields of a post plus the desired tag
// set.
type PostInput struct {
	Title   string
	Content string
	Date    time.Time
	TagIDs  []uuid.UUID
}

func (in PostInput) validate() error {
	if in.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if in.Content == "" {
		return errs.NewValidationError("content", "content is required")
	}
	if in.Date.IsZero() {
		return errs.NewValidationError("date", "date is required")
	}
	return nil
}

// CreatePost stores a new post and links the requested tags. Content
// newlines are normalized to <br> so paragraphs survive rendering.
func (e *Engine) CreatePost(actor models.Actor, in PostInput) (*models.Post, error) {
	if err := requireAdmin(actor, "create post"); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: normalizeContent(in.Content),
		Date:    toDate(in.Date),
	}

	err := e.transaction(func(tx *gorm.DB) error {
		if err := e.db.PostRepo().WithTx(tx).Add(post); err != nil {
			return errs.NewDatabaseError("create", "post", err)
		}
		return e.linkNewPostTx(tx, post.ID, in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info().Str("postID", post.ID.String()).Str("title", post.Title).Msg("post created")
	return post, nil
}

// EditPost updates a post's fields and reconciles its tag set against
// the requested ids. A tag stranded with zero links by the edit
// survives; edits never delete tags.
func (e *Engine) EditPost(actor models.Actor, postID uuid.UUID, in PostInput) (*models.Post, error) {
	if err := requireAdmin(actor, "edit post"); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *models.Post
	err := e.transaction(func(tx *gorm.DB) error {
		postRepo := e.db.PostRepo().WithTx(tx)

		post, err := postRepo.FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}
		if post == nil {
			return errs.NewNotFound("post")
		}

		post.Title = in.Title
		post.Content = normalizeContent(in.Content)
		post.Date = toDate(in.Date)
		if err := postRepo.Update(post); err != nil {
			return errs.NewDatabaseError("update", "post", err)
		}

		if err := e.setPostTagsTx(tx, postID, in.TagIDs); err != nil {
			return err
		}

		updated, err = postRepo.FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("reload", "post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ViewPost returns a post with its tags and registers the view. The
// returned counters reflect this view for non-admin readers.
func (e *Engine) ViewPost(postID uuid.UUID, viewerIsAdmin bool) (*models.Post, error) {
	var post *models.Post
	err := e.transaction(func(tx *gorm.DB) error {
		postRepo := e.db.PostRepo().WithTx(tx)

		found, err := postRepo.FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}
		if found == nil {
			return errs.NewNotFound("post")
		}

		if err := e.recordViewTx(tx, postID, viewerIsAdmin); err != nil {
			return err
		}

		post, err = postRepo.FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("reload", "post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts newest first. With filter tags, only
// posts linked to at least one of them are returned, each post once.
func (e *Engine) ListPosts(filterTagIDs []uuid.UUID) ([]*models.Post, error) {
	if len(filterTagIDs) == 0 {
		posts, err := e.db.PostRepo().FindAll()
		if err != nil {
			return nil, errs.NewDatabaseError("list", "posts", err)
		}
		return posts, nil
	}
	posts, err := e.db.PostRepo().FindByTagIDs(dedupeIDs(filterTagIDs))
	if err != nil {
		return nil, errs.NewDatabaseError("filter", "posts", err)
	}
	return posts, nil
}

// PostComments returns a post's comment thread, oldest first.
func (e *Engine) PostComments(postID uuid.UUID) ([]*models.Comment, error) {
	post, err := e.db.PostRepo().FindByID(postID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return nil, errs.NewNotFound("post")
	}
	comments, err := e.db.CommentRepo().FindByPost(postID)
	if err != nil {
		return nil, errs.NewDatabaseError("list comments of", "post", err)
	}
	return comments, nil
}
