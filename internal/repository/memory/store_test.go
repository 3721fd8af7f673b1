package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
)

func seed(t *testing.T, s *Store, kind domain.Kind, id string, created time.Time) {
	t.Helper()
	err := s.Store(context.Background(), &domain.ContentItem{
		Aggregate: domain.Aggregate{ID: id, Kind: kind, OwnerID: "owner"},
		Name:      "item " + id,
		Category:  "go",
		CreatedAt: created,
	})
	require.NoError(t, err)
}

func TestStore_FetchPagesByCreatedAt(t *testing.T) {
	s := New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed(t, s, domain.KindBlog, "b", base.Add(2*time.Hour))
	seed(t, s, domain.KindBlog, "a", base.Add(time.Hour))
	seed(t, s, domain.KindBlog, "c", base.Add(3*time.Hour))
	seed(t, s, domain.KindVideo, "v", base)

	ctx := context.Background()
	page, err := s.Fetch(ctx, domain.KindBlog, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a", page[0].ID)
	assert.Equal(t, "b", page[1].ID)

	page, err = s.Fetch(ctx, domain.KindBlog, repository.EncodeCursor(page[1].CreatedAt, page[1].ID), 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].ID)

	_, err = s.Fetch(ctx, domain.KindBlog, "!!", 2)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestStore_FetchPageBoundaryWithinOneMillisecond(t *testing.T) {
	s := New()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed(t, s, domain.KindBlog, "x1", ts)
	seed(t, s, domain.KindBlog, "x2", ts)
	seed(t, s, domain.KindBlog, "x3", ts)

	ctx := context.Background()
	first, err := s.Fetch(ctx, domain.KindBlog, "", 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	last := first[len(first)-1]
	second, err := s.Fetch(ctx, domain.KindBlog, repository.EncodeCursor(last.CreatedAt, last.ID), 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "x3", second[0].ID)
}

func TestStore_UpdateKeepsEngagement(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, domain.KindBlog, "a", time.Now())

	_, err := s.AddLike(ctx, domain.KindBlog, "a", "u1")
	require.NoError(t, err)

	err = s.Update(ctx, &domain.ContentItem{
		Aggregate: domain.Aggregate{ID: "a", Kind: domain.KindBlog},
		Name:      "renamed",
	})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, domain.KindBlog, "a")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, int64(1), got.LikeCount)
	assert.Equal(t, []string{"u1"}, got.LikedBy)
	assert.Equal(t, "owner", got.OwnerID)
}

func TestStore_ReadsAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, domain.KindBlog, "a", time.Now())
	require.NoError(t, s.PushComment(ctx, domain.KindBlog, "a", domain.Comment{ID: "c1", Text: "hi"}))

	agg, err := s.GetAggregate(ctx, domain.KindBlog, "a")
	require.NoError(t, err)
	agg.Comments[0].Text = "mutated"
	agg.LikedBy = append(agg.LikedBy, "intruder")

	again, err := s.GetAggregate(ctx, domain.KindBlog, "a")
	require.NoError(t, err)
	assert.Equal(t, "hi", again.Comments[0].Text)
	assert.Empty(t, again.LikedBy)
}

func TestStore_FetchIDs(t *testing.T) {
	s := New()
	for _, id := range []string{"c", "a", "b"} {
		seed(t, s, domain.KindVideo, id, time.Now())
	}
	ids, err := s.FetchIDs(context.Background(), domain.KindVideo, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	ids, err = s.FetchIDs(context.Background(), domain.KindVideo, "b", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids)
}

func TestStore_DeleteAndConflict(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, domain.KindBlog, "a", time.Now())

	err := s.Store(ctx, &domain.ContentItem{Aggregate: domain.Aggregate{ID: "a", Kind: domain.KindBlog}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, s.Delete(ctx, domain.KindBlog, "a"))
	assert.ErrorIs(t, s.Delete(ctx, domain.KindBlog, "a"), domain.ErrNotFound)
	_, err = s.GetAggregate(ctx, domain.KindBlog, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_FindByCommentID(t *testing.T) {
	s := New()
	ctx := context.Background()
	seed(t, s, domain.KindBlog, "b1", time.Now())
	seed(t, s, domain.KindBlog, "b2", time.Now())
	seed(t, s, domain.KindVideo, "v1", time.Now())

	require.NoError(t, s.PushComment(ctx, domain.KindBlog, "b2", domain.Comment{ID: "c1", Text: "hi"}))

	agg, err := s.FindByCommentID(ctx, domain.KindBlog, "c1")
	require.NoError(t, err)
	assert.Equal(t, "b2", agg.ID)
	c, ok := agg.CommentByID("c1")
	require.True(t, ok)
	assert.Equal(t, "hi", c.Text)

	_, err = s.FindByCommentID(ctx, domain.KindVideo, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.PullComment(ctx, domain.KindBlog, "c1")
	require.NoError(t, err)
	_, err = s.FindByCommentID(ctx, domain.KindBlog, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
