package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkwell-blog/backend/models"
)

func setupTestDB(t *testing.T) Database {
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

	return New(db)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := setupTestDB(t)

	require.NoError(t, store.Seed("admin", "password"))
	require.NoError(t, store.Seed("admin", "password"))

	role, err := store.UserRepo().FindRoleByName("admin")
	require.NoError(t, err)
	require.NotNil(t, role)

	guest, err := store.UserRepo().FindRoleByName("guest")
	require.NoError(t, err)
	require.NotNil(t, guest)

	user, err := store.UserRepo().FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsAdmin())
}

func TestSeedWithoutPasswordSkipsAdminUser(t *testing.T) {
	store := setupTestDB(t)

	require.NoError(t, store.Seed("admin", ""))

	user, err := store.UserRepo().FindByUsername("admin")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestPostRepoTotalViewsEmpty(t *testing.T) {
	store := setupTestDB(t)

	total, err := store.PostRepo().TotalViews()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTagRepoDeleteOrphans(t *testing.T) {
	store := setupTestDB(t)

	linked := &models.Tag{Name: "linked"}
	orphan := &models.Tag{Name: "orphan"}
	require.NoError(t, store.TagRepo().Add(linked))
	require.NoError(t, store.TagRepo().Add(orphan))

	post := &models.Post{Title: "p", Content: "c"}
	require.NoError(t, store.PostRepo().Add(post))
	require.NoError(t, store.PostTagRepo().Add(&models.PostTag{PostID: post.ID, TagID: linked.ID}))

	swept, err := store.TagRepo().DeleteOrphans()
	require.NoError(t, err)
	assert.EqualValues(t, 1, swept)

	tag, err := store.TagRepo().FindByID(orphan.ID)
	require.NoError(t, err)
	assert.Nil(t, tag)

	tag, err = store.TagRepo().FindByID(linked.ID)
	require.NoError(t, err)
	assert.NotNil(t, tag)
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	store := setupTestDB(t)

	post, err := store.PostRepo().FindByID(uuid.Nil)
	require.NoError(t, err)
	assert.Nil(t, post)
}
