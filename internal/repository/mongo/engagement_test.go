package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Guyuepp/portfolio-cms/domain"
)

func TestEngagement_AddLike(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("liked", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: bson.D{{Key: "_id", Value: "b1"}, {Key: "likeCount", Value: int64(3)}},
		}))
		repo := NewEngagementRepository(mt.DB)
		count, err := repo.AddLike(context.Background(), domain.KindBlog, "b1", "u1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)
	})

	mt.Run("already liked", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "test.blogs", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.AddLike(context.Background(), domain.KindBlog, "b1", "u1")
		assert.ErrorIs(mt, err, domain.ErrAlreadyLiked)
	})

	mt.Run("item missing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "test.blogs", mtest.FirstBatch),
		)
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.AddLike(context.Background(), domain.KindBlog, "b1", "u1")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestEngagement_PushComment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pushed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(1)},
		))
		repo := NewEngagementRepository(mt.DB)
		err := repo.PushComment(context.Background(), domain.KindVideo, "v1", domain.Comment{ID: "c1", Text: "hi"})
		assert.NoError(mt, err)
	})

	mt.Run("item missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(0)},
			bson.E{Key: "nModified", Value: int32(0)},
		))
		repo := NewEngagementRepository(mt.DB)
		err := repo.PushComment(context.Background(), domain.KindVideo, "v1", domain.Comment{ID: "c1"})
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestEngagement_PullCommentNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.PullComment(context.Background(), domain.KindBlog, "ghost")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestEngagement_RemoveLike(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("removed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: bson.D{{Key: "_id", Value: "b1"}, {Key: "likeCount", Value: int64(0)}},
		}))
		repo := NewEngagementRepository(mt.DB)
		count, err := repo.RemoveLike(context.Background(), domain.KindBlog, "b1", "u1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), count)

		cmd := mt.GetStartedEvent().Command
		query := cmd.Lookup("query").Document()
		assert.Equal(mt, "u1", query.Lookup("likedBy").StringValue())
		update, ok := cmd.Lookup("update").ArrayOK()
		require.True(mt, ok, "update must be a pipeline")
		set := update.Index(0).Value().Document().Lookup("$set").Document()
		_, err = set.LookupErr("likeCount", "$max")
		assert.NoError(mt, err, "like count must be clamped with $max")
	})

	mt.Run("not liked", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "test.blogs", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.RemoveLike(context.Background(), domain.KindBlog, "b1", "u1")
		assert.ErrorIs(mt, err, domain.ErrNotLiked)
	})

	mt.Run("item missing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "test.blogs", mtest.FirstBatch),
		)
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.RemoveLike(context.Background(), domain.KindBlog, "b1", "u1")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestEngagement_PushReply(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pushed", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value",
			Value: bson.D{
				{Key: "_id", Value: "b1"},
				{Key: "comments", Value: bson.A{bson.D{
					{Key: "_id", Value: "c1"},
					{Key: "comment", Value: "hi"},
					{Key: "replies", Value: bson.A{bson.D{
						{Key: "_id", Value: "r1"},
						{Key: "commentId", Value: "c1"},
						{Key: "reply", Value: "yo"},
					}}},
				}}},
			},
		}))
		repo := NewEngagementRepository(mt.DB)
		c, err := repo.PushReply(context.Background(), domain.KindBlog, "b1", "c1", domain.Reply{ID: "r1", CommentID: "c1", Text: "yo"})
		require.NoError(mt, err)
		assert.Equal(mt, "c1", c.ID)
		require.Len(mt, c.Replies, 1)
		assert.Equal(mt, "yo", c.Replies[0].Text)

		query := mt.GetStartedEvent().Command.Lookup("query").Document()
		assert.Equal(mt, "b1", query.Lookup("_id").StringValue())
		assert.Equal(mt, "c1", query.Lookup("comments._id").StringValue())
	})

	mt.Run("comment under another item", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.PushReply(context.Background(), domain.KindBlog, "b2", "c1", domain.Reply{ID: "r1"})
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestEngagement_SetCommentText(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("updated", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value",
			Value: bson.D{
				{Key: "_id", Value: "v1"},
				{Key: "comments", Value: bson.A{bson.D{
					{Key: "_id", Value: "c1"},
					{Key: "user", Value: "Alice"},
					{Key: "comment", Value: "edited"},
				}}},
			},
		}))
		repo := NewEngagementRepository(mt.DB)
		itemID, c, err := repo.SetCommentText(context.Background(), domain.KindVideo, "c1", "edited")
		require.NoError(mt, err)
		assert.Equal(mt, "v1", itemID)
		assert.Equal(mt, "edited", c.Text)
		assert.Equal(mt, "Alice", c.Author)
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewEngagementRepository(mt.DB)
		_, _, err := repo.SetCommentText(context.Background(), domain.KindVideo, "ghost", "x")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}

func TestEngagement_FindByCommentID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.blogs", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "b1"},
			{Key: "user", Value: "owner"},
			{Key: "likeCount", Value: int64(2)},
			{Key: "likedBy", Value: bson.A{"u1", "u2"}},
			{Key: "comments", Value: bson.A{bson.D{{Key: "_id", Value: "c1"}, {Key: "comment", Value: "hi"}}}},
		}))
		repo := NewEngagementRepository(mt.DB)
		agg, err := repo.FindByCommentID(context.Background(), domain.KindBlog, "c1")
		require.NoError(mt, err)
		assert.Equal(mt, "b1", agg.ID)
		assert.Equal(mt, "owner", agg.OwnerID)
		assert.True(mt, agg.LikedByUser("u2"))
		_, ok := agg.CommentByID("c1")
		assert.True(mt, ok)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, "c1", filter.Lookup("comments._id").StringValue())
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.blogs", mtest.FirstBatch))
		repo := NewEngagementRepository(mt.DB)
		_, err := repo.FindByCommentID(context.Background(), domain.KindBlog, "ghost")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})
}
