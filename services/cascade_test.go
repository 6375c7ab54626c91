package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

func TestDeletePostCascadesComments(t *testing.T) {
	engine, store := newTestEngine(t)

	post := mustCreatePost(t, engine, "p1", day(2026, 2, 1))
	c1 := mustAddComment(t, engine, post.ID, "first")
	c2 := mustAddComment(t, engine, post.ID, "second")

	require.NoError(t, engine.DeletePost(admin, post.ID))

	for _, id := range []uuid.UUID{c1.ID, c2.ID} {
		comment, err := store.CommentRepo().FindByID(id)
		require.NoError(t, err)
		assert.Nil(t, comment)
	}

	// Deleting either comment now reports not found.
	err := engine.DeleteComment(admin, c1.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeletePostSweepsOnlyOrphanedTags(t *testing.T) {
	engine, store := newTestEngine(t)

	shared := mustCreateTag(t, engine, "shared")
	solo := mustCreateTag(t, engine, "solo")
	p1 := mustCreatePost(t, engine, "p1", day(2026, 2, 1), shared.ID, solo.ID)
	p2 := mustCreatePost(t, engine, "p2", day(2026, 2, 2), shared.ID)

	require.NoError(t, engine.DeletePost(admin, p1.ID))

	// solo lost its only link and was swept; shared is still on p2.
	tag, err := store.TagRepo().FindByID(solo.ID)
	require.NoError(t, err)
	assert.Nil(t, tag)

	tag, err = store.TagRepo().FindByID(shared.ID)
	require.NoError(t, err)
	require.NotNil(t, tag)

	ids := linkedTagIDs(t, store, p2.ID)
	assert.ElementsMatch(t, []uuid.UUID{shared.ID}, ids)
}

func TestTagSurvivesUntilLastPostDeleted(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "t1")
	p1 := mustCreatePost(t, engine, "p1", day(2026, 2, 1), t1.ID)
	p2 := mustCreatePost(t, engine, "p2", day(2026, 2, 2), t1.ID)

	require.NoError(t, engine.DeletePost(admin, p1.ID))
	tag, err := store.TagRepo().FindByID(t1.ID)
	require.NoError(t, err)
	assert.NotNil(t, tag)

	require.NoError(t, engine.DeletePost(admin, p2.ID))
	tag, err = store.TagRepo().FindByID(t1.ID)
	require.NoError(t, err)
	assert.Nil(t, tag)
}

func TestDeletePostLeavesOtherPostsAlone(t *testing.T) {
	engine, store := newTestEngine(t)

	p1 := mustCreatePost(t, engine, "p1", day(2026, 2, 1))
	p2 := mustCreatePost(t, engine, "p2", day(2026, 2, 2))
	keep := mustAddComment(t, engine, p2.ID, "keep me")

	require.NoError(t, engine.DeletePost(admin, p1.ID))

	post, err := store.PostRepo().FindByID(p2.ID)
	require.NoError(t, err)
	require.NotNil(t, post)

	comment, err := store.CommentRepo().FindByID(keep.ID)
	require.NoError(t, err)
	assert.NotNil(t, comment)
}

func TestDeletePostNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.DeletePost(admin, uuid.New())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteTagRemovesLinksOnly(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "t1")
	t2 := mustCreateTag(t, engine, "t2")
	post := mustCreatePost(t, engine, "p1", day(2026, 2, 1), t1.ID, t2.ID)

	require.NoError(t, engine.DeleteTag(admin, t1.ID))

	// Post survives with its remaining tag; no orphan sweep runs on
	// tag deletion.
	found, err := store.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	ids := linkedTagIDs(t, store, post.ID)
	assert.ElementsMatch(t, []uuid.UUID{t2.ID}, ids)
}

func TestDeleteTagNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	err := engine.DeleteTag(admin, uuid.New())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteCommentLeavesParentAndSiblings(t *testing.T) {
	engine, store := newTestEngine(t)

	post := mustCreatePost(t, engine, "p1", day(2026, 2, 1))
	doomed := mustAddComment(t, engine, post.ID, "doomed")
	sibling := mustAddComment(t, engine, post.ID, "sibling")

	require.NoError(t, engine.DeleteComment(admin, doomed.ID))

	found, err := store.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)

	comment, err := store.CommentRepo().FindByID(sibling.ID)
	require.NoError(t, err)
	assert.NotNil(t, comment)
}

func TestCascadeOpsRequireAdmin(t *testing.T) {
	engine, _ := newTestEngine(t)
	guest := models.Actor{UserID: uuid.New(), IsAdmin: false}

	assert.True(t, errs.IsPermissionDenied(engine.DeletePost(guest, uuid.New())))
	assert.True(t, errs.IsPermissionDenied(engine.DeleteTag(guest, uuid.New())))
	assert.True(t, errs.IsPermissionDenied(engine.DeleteComment(guest, uuid.New())))
}
