package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-blog/backend/errs"
	"github.com/inkwell-blog/backend/models"
)

func TestCreatePostValidation(t *testing.T) {
	engine, _ := newTestEngine(t)

	cases := []struct {
		name  string
		input PostInput
	}{
		{"missing title", PostInput{Content: "c", Date: day(2026, 1, 1)}},
		{"missing content", PostInput{Title: "t", Date: day(2026, 1, 1)}},
		{"missing date", PostInput{Title: "t", Content: "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.CreatePost(admin, tc.input)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestCreatePostNormalizesNewlines(t *testing.T) {
	engine, store := newTestEngine(t)

	post, err := engine.CreatePost(admin, PostInput{
		Title:   "p1",
		Content: "para one\r\npara two\npara three",
		Date:    day(2026, 1, 1),
	})
	require.NoError(t, err)

	found, err := store.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "para one<br>para two<br>para three", found.Content)
}

func TestCreatePostRequiresAdmin(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.CreatePost(models.Actor{}, PostInput{
		Title: "t", Content: "c", Date: day(2026, 1, 1),
	})
	require.Error(t, err)
	assert.True(t, errs.IsPermissionDenied(err))
}

func TestEditPostNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.EditPost(admin, uuid.New(), PostInput{
		Title: "t", Content: "c", Date: day(2026, 1, 1),
	})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestEditPostUpdatesFieldsAndTags(t *testing.T) {
	engine, store := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "old")
	t2 := mustCreateTag(t, engine, "new")
	post := mustCreatePost(t, engine, "before", day(2026, 1, 1), t1.ID)

	updated, err := engine.EditPost(admin, post.ID, PostInput{
		Title:   "after",
		Content: "fresh content",
		Date:    day(2026, 1, 2),
		TagIDs:  []uuid.UUID{t2.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "fresh content", updated.Content)

	ids := linkedTagIDs(t, store, post.ID)
	assert.ElementsMatch(t, []uuid.UUID{t2.ID}, ids)

	// The unlinked tag is stranded but alive.
	tag, err := store.TagRepo().FindByID(t1.ID)
	require.NoError(t, err)
	assert.NotNil(t, tag)
}

func TestEditPostKeepsViewCount(t *testing.T) {
	engine, store := newTestEngine(t)

	post := mustCreatePost(t, engine, "p1", day(2026, 1, 1))
	require.NoError(t, engine.RecordView(post.ID, false))

	_, err := engine.EditPost(admin, post.ID, PostInput{
		Title: "edited", Content: "c", Date: day(2026, 1, 2),
	})
	require.NoError(t, err)

	found, err := store.PostRepo().FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.ViewCount)
}

func TestViewPostRecordsAndReturns(t *testing.T) {
	engine, _ := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "t1")
	post := mustCreatePost(t, engine, "p1", day(2026, 1, 1), t1.ID)

	viewed, err := engine.ViewPost(post.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.ViewCount)
	require.Len(t, viewed.Tags, 1)
	assert.Equal(t, "t1", viewed.Tags[0].Name)

	viewed, err = engine.ViewPost(post.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.ViewCount)
}

func TestViewPostNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.ViewPost(uuid.New(), false)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestListPostsNewestFirst(t *testing.T) {
	engine, _ := newTestEngine(t)

	mustCreatePost(t, engine, "oldest", day(2026, 1, 1))
	mustCreatePost(t, engine, "newest", day(2026, 1, 3))
	mustCreatePost(t, engine, "middle", day(2026, 1, 2))

	posts, err := engine.ListPosts(nil)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)
	assert.Equal(t, "oldest", posts[2].Title)
}

func TestListPostsFilterDeduplicates(t *testing.T) {
	engine, _ := newTestEngine(t)

	t1 := mustCreateTag(t, engine, "t1")
	t2 := mustCreateTag(t, engine, "t2")
	both := mustCreatePost(t, engine, "both", day(2026, 1, 2), t1.ID, t2.ID)
	only1 := mustCreatePost(t, engine, "only1", day(2026, 1, 1), t1.ID)
	mustCreatePost(t, engine, "untagged", day(2026, 1, 3))

	posts, err := engine.ListPosts([]uuid.UUID{t1.ID, t2.ID})
	require.NoError(t, err)

	// A post matching several requested tags appears once.
	require.Len(t, posts, 2)
	assert.Equal(t, both.ID, posts[0].ID)
	assert.Equal(t, only1.ID, posts[1].ID)
}

func TestAddCommentValidation(t *testing.T) {
	engine, _ := newTestEngine(t)
	post := mustCreatePost(t, engine, "p1", day(2026, 1, 1))

	_, err := engine.AddComment(post.ID, "", "content")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = engine.AddComment(post.ID, "title", "")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestAddCommentUnknownPost(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.AddComment(uuid.New(), "title", "content")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestPostCommentsOldestFirst(t *testing.T) {
	engine, _ := newTestEngine(t)

	post := mustCreatePost(t, engine, "p1", day(2026, 1, 1))
	mustAddComment(t, engine, post.ID, "first")
	mustAddComment(t, engine, post.ID, "second")

	comments, err := engine.PostComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
}
