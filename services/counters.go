package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// recordViewTx applies the view counters inside an open transaction.
// Admin views are excluded from analytics so the author browsing their
// own site does not inflate the numbers. For everyone else the post's
// counter and the counter of every linked tag each go up by one, as
// single UPDATE expressions so concurrent views never lose an
// increment.
func (e *Engine) recordViewTx(tx *gorm.DB, postID uuid.UUID, viewerIsAdmin bool) error {
	if viewerIsAdmin {
		return nil
	}
	if err := e.db.PostRepo().WithTx(tx).IncrementViews(postID); err != nil {
		return errs.NewDatabaseError("count view of", "post", err)
	}
	if err := e.db.TagRepo().WithTx(tx).IncrementViewsForPost(postID); err != nil {
		return errs.NewDatabaseError("count view of", "tags", err)
	}
	return nil
}

// RecordView registers one view of a post.
func (e *Engine) RecordView(postID uuid.UUID, viewerIsAdmin bool) error {
	return e.transaction(func(tx *gorm.DB) error {
		post, err := e.db.PostRepo().WithTx(tx).FindByID(postID)
		if err != nil {
			return errs.NewDatabaseError("find", "post", err)
		}
		if post == nil {
			return errs.NewNotFound("post")
		}
		return e.recordViewTx(tx, postID, viewerIsAdmin)
	})
}

// TrackDailyStats converts the running cumulative tallies into one
// day's engagement record. The delta is computed against the record
// for exactly the previous calendar day; when the job skipped days the
// delta resets to the full cumulative totals, the same as a first run.
// A second run for the same day fails with an already-exists error.
func (e *Engine) TrackDailyStats(day time.Time) (*models.DailyStat, error) {
	date := toDate(day)
	yesterday := toDate(day.AddDate(0, 0, -1))

	var stat *models.DailyStat
	err := e.transaction(func(tx *gorm.DB) error {
		statRepo := e.db.DailyStatRepo().WithTx(tx)

		existing, err := statRepo.FindByDate(date)
		if err != nil {
			return errs.NewDatabaseError("find", "daily stat", err)
		}
		if existing != nil {
			return errs.NewAlreadyExists("daily stat")
		}

		totalViews, err := e.db.PostRepo().WithTx(tx).TotalViews()
		if err != nil {
			return errs.NewDatabaseError("sum views of", "posts", err)
		}
		totalComments, err := e.db.CommentRepo().WithTx(tx).Count()
		if err != nil {
			return errs.NewDatabaseError("count", "comments", err)
		}

		newViews := totalViews
		newComments := totalComments
		previous, err := statRepo.FindByDate(yesterday)
		if err != nil {
			return errs.NewDatabaseError("find", "daily stat", err)
		}
		if previous != nil {
			newViews = totalViews - previous.CumulativeViews
			newComments = totalComments - previous.CumulativeComments
		}

		stat = &models.DailyStat{
			Date:               date,
			CumulativeViews:    totalViews,
			CumulativeComments: totalComments,
			Views:              newViews,
			Comments:           newComments,
		}
		if err := statRepo.Add(stat); err != nil {
			return errs.NewDatabaseError("create", "daily stat", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Int("views", stat.Views).
		Int("comments", stat.Comments).
		Msg("daily stats recorded")
	return stat, nil
}

// RunDailyStatsJob is the externally scheduled entry point; it exists
// so the job binary and the admin route share one name for the
// operation.
func (e *Engine) RunDailyStatsJob(day time.Time) (*models.DailyStat, error) {
	return e.TrackDailyStats(day)
}
