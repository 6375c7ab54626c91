package services

import (
	"golang.org/x/sync/errgroup"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

// DashboardStats is the analytics payload behind the admin dashboard:
// the five most viewed posts and tags plus the daily engagement
// series.
type DashboardStats struct {
	TopPosts   []*models.Post      `json:"topPosts"`
	TopTags    []*models.Tag       `json:"topTags"`
	DailyStats []*models.DailyStat `json:"dailyStats"`
}

const dashboardTopN = 5

// Dashboard gathers the analytics payload. The three reads are
// independent, so they run concurrently.
func (e *Engine) Dashboard(actor models.Actor) (*DashboardStats, error) {
	if err := requireAdmin(actor, "view dashboard"); err != nil {
		return nil, err
	}

	var stats DashboardStats
	var g errgroup.Group

	g.Go(func() error {
		posts, err := e.db.PostRepo().TopByViews(dashboardTopN)
		if err != nil {
			return errs.NewDatabaseError("rank", "posts", err)
		}
		stats.TopPosts = posts
		return nil
	})
	g.Go(func() error {
		tags, err := e.db.TagRepo().TopByViews(dashboardTopN)
		if err != nil {
			return errs.NewDatabaseError("rank", "tags", err)
		}
		stats.TopTags = tags
		return nil
	})
	g.Go(func() error {
		series, err := e.db.DailyStatRepo().FindAll()
		if err != nil {
			return errs.NewDatabaseError("list", "daily stats", err)
		}
		stats.DailyStats = series
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
