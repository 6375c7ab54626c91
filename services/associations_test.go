package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

func TestSetPostTagsReconciles(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "go")
	t2 := mustCreateTag(t, engine, "sql")
	t3 := mustCreateTag(t, engine, "testing")
	post := mustCreatePost(t, engine, "p1", day(2026, 1, 10), t1.ID, t2.ID)

	// Replace t2 with t3, keep t1.
	require.NoError(t, engine.SetPostTags(admin, post.ID, []uuid.UUID{t1.ID, t3.ID}))

	ids := linkedTagIDs(t, store, post.ID)
	assert.ElementsMatch(t, []uuid.UUID{t1.ID, t3.ID}, ids)

	// The stranded tag survives: edits never delete tags.
	tag, err := store.TagRepo().FindByID(t2.ID)
	require.NoError(t, err)
	assert.NotNil(t, tag)
}

func TestSetPostTagsIdempotent(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "go")
	t2 := mustCreateTag(t, engine, "sql")
	post := mustCreatePost(t, engine, "p1", day(2026, 1, 10))

	desired := []uuid.UUID{t1.ID, t2.ID}
	require.NoError(t, engine.SetPostTags(admin, post.ID, desired))
	require.NoError(t, engine.SetPostTags(admin, post.ID, desired))

	ids := linkedTagIDs(t, store, post.ID)
	assert.Len(t, ids, 2)
	assert.ElementsMatch(t, desired, ids)
}

func TestSetPostTagsUnknownTagFails(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "go")
	post := mustCreatePost(t, engine, "p1", day(2026, 1, 10), t1.ID)

	err := engine.SetPostTags(admin, post.ID, []uuid.UUID{t1.ID, uuid.New()})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidReference(err))

	// Nothing was written: the original link set is intact.
	ids := linkedTagIDs(t, store, post.ID)
	assert.ElementsMatch(t, []uuid.UUID{t1.ID}, ids)
}

func TestSetPostTagsUnknownPost(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.SetPostTags(admin, uuid.New(), nil)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestSetPostTagsRequiresAdmin(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.SetPostTags(models.Actor{}, uuid.New(), nil)
	require.Error(t, err)
	assert.True(t, errs.IsPermissionDenied(err))
}

func TestCreatePostDeduplicatesTagIDs(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "go")
	post := mustCreatePost(t, engine, "p1", day(2026, 1, 10), t1.ID, t1.ID)

	ids := linkedTagIDs(t, store, post.ID)
	assert.Len(t, ids, 1)
}

func TestCreatePostUnknownTagRollsBack(t *testing.T) {
	engine, store := newTestEngine(t)

	_, err := engine.CreatePost(admin, PostInput{
		Title:   "p1",
		Content: "c",
		Date:    day(2026, 1, 10),
		TagIDs:  []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.True(t, errs.IsInvalidReference(err))

	// The post insert rolled back with the failed link.
	posts, err := store.PostRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, posts)
}
