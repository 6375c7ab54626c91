package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-blog/backend/database"
	"github.com/inkwell-blog/backend/models"
)

var admin = models.Actor{UserID: uuid.New(), IsAdmin: true}

// newTestEngine opens a fresh in-memory database per test so tests
// never see each other's rows.
func newTestEngine(t *testing.T) (*Engine, database.Database) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Post{},
		&models.Tag{},
		&models.Comment{},
		&models.PostTag{},
		&models.DailyStat{},
	))

	store := database.New(db)
	return NewEngine(store), store
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func mustCreateTag(t *testing.T, e *Engine, name string) *models.Tag {
	t.Helper()
	tag, err := e.CreateTag(admin, name)
	require.NoError(t, err)
	return tag
}

func mustCreatePost(t *testing.T, e *Engine, title string, date time.Time, tagIDs ...uuid.UUID) *models.Post {
	t.Helper()
	post, err := e.CreatePost(admin, PostInput{
		Title:   title,
		Content: "content of " + title,
		Date:    date,
		TagIDs:  tagIDs,
	})
	require.NoError(t, err)
	return post
}

func mustAddComment(t *testing.T, e *Engine, postID uuid.UUID, title string) *models.Comment {
	t.Helper()
	comment, err := e.AddComment(postID, title, "a comment")
	require.NoError(t, err)
	return comment
}

func linkedTagIDs(t *testing.T, store database.Database, postID uuid.UUID) []uuid.UUID {
	t.Helper()
	ids, err := store.PostTagRepo().TagIDsForPost(postID)
	require.NoError(t, err)
	return ids
}
