package mysql

import (
	"context"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/portfolio-cms/domain"
)

const (
	lockItemQuery    = "SELECT (.+) FROM `content_items` WHERE id = \\? AND kind = \\?(.+)FOR UPDATE"
	lockCommentQuery = "SELECT (.+) FROM `comments` WHERE id = \\? AND kind = \\?(.+)FOR UPDATE"
	lockReplyTarget  = "SELECT (.+) FROM `comments` WHERE \\(id = \\? AND kind = \\?\\) AND item_id = \\?(.+)FOR UPDATE"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestAddLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockItemQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count"}).AddRow("item-1", 2))
	mock.ExpectExec("INSERT INTO `item_likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `content_items` SET `like_count`=like_count \\+ \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.AddLike(context.Background(), domain.KindBlog, "item-1", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLike_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockItemQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count"}).AddRow("item-1", 1))
	mock.ExpectExec("INSERT INTO `item_likes`").
		WillReturnError(&mysqldriver.MySQLError{Number: errDupEntry, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := repo.AddLike(context.Background(), domain.KindBlog, "item-1", "u1")
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLike_ItemNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockItemQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count"}))
	mock.ExpectRollback()

	_, err := repo.AddLike(context.Background(), domain.KindVideo, "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLike_Deadlock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockItemQuery).
		WillReturnError(&mysqldriver.MySQLError{Number: errLockDeadlock, Message: "Deadlock found"})
	mock.ExpectRollback()

	_, err := repo.AddLike(context.Background(), domain.KindBlog, "item-1", "u1")
	assert.ErrorIs(t, err, domain.ErrPersistenceConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockItemQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count"}).AddRow("item-1", 1))
	mock.ExpectExec("DELETE FROM `item_likes` WHERE item_id = \\? AND user_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `content_items` SET `like_count`=GREATEST\\(like_count - \\?, 0\\)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.RemoveLike(context.Background(), domain.KindBlog, "item-1", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveLike_NotLiked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockItemQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "like_count"}).AddRow("item-1", 4))
	mock.ExpectExec("DELETE FROM `item_likes`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.RemoveLike(context.Background(), domain.KindBlog, "item-1", "u1")
	assert.ErrorIs(t, err, domain.ErrNotLiked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPullComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockCommentQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "kind", "user", "photo", "comment"}).
			AddRow("c1", "item-1", "blog", "Alice", "p", "hi"))
	mock.ExpectExec("DELETE FROM `comments` WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `replies` WHERE comment_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	itemID, err := repo.PullComment(context.Background(), domain.KindBlog, "c1")
	require.NoError(t, err)
	assert.Equal(t, "item-1", itemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPullComment_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockCommentQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id"}))
	mock.ExpectRollback()

	_, err := repo.PullComment(context.Background(), domain.KindBlog, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetCommentText(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockCommentQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "kind", "user", "photo", "comment"}).
			AddRow("c1", "item-1", "video", "Alice", "p", "old"))
	mock.ExpectExec("UPDATE `comments` SET `comment`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `replies` WHERE comment_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_id", "item_id", "user", "photo", "reply"}).
			AddRow("r1", "c1", "item-1", "Bob", "p", "yo"))
	mock.ExpectCommit()

	itemID, c, err := repo.SetCommentText(context.Background(), domain.KindVideo, "c1", "new")
	require.NoError(t, err)
	assert.Equal(t, "item-1", itemID)
	assert.Equal(t, "new", c.Text)
	assert.Equal(t, "Alice", c.Author)
	require.Len(t, c.Replies, 1)
	assert.Equal(t, "yo", c.Replies[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPushReply(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)
	now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(lockReplyTarget).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "kind", "user", "photo", "comment"}).
			AddRow("c1", "item-1", "blog", "Alice", "p", "hi"))
	mock.ExpectExec("INSERT INTO `replies`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `replies` WHERE comment_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_id", "item_id", "user", "photo", "reply"}).
			AddRow("r1", "c1", "item-1", "Bob", "p", "first").
			AddRow("r2", "c1", "item-1", "Carol", "p", "second"))
	mock.ExpectCommit()

	c, err := repo.PushReply(context.Background(), domain.KindBlog, "item-1", "c1", domain.Reply{
		ID: "r2", CommentID: "c1", Author: "Carol", AuthorPhoto: "p", Text: "second", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	require.Len(t, c.Replies, 2)
	assert.Equal(t, "second", c.Replies[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPushReply_CommentUnderAnotherItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockReplyTarget).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id"}))
	mock.ExpectRollback()

	_, err := repo.PushReply(context.Background(), domain.KindBlog, "item-2", "c1", domain.Reply{ID: "r1", Text: "hi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCommentID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `comments` WHERE id = \\? AND kind = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id"}).AddRow("c1", "item-1"))
	mock.ExpectQuery("SELECT (.+) FROM `content_items` WHERE id = \\? AND kind = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "user_id", "like_count"}).AddRow("item-1", "blog", "owner", 0))
	mock.ExpectQuery("SELECT (.+) FROM `item_likes` WHERE item_id IN \\(\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "user_id"}))
	mock.ExpectQuery("SELECT (.+) FROM `comments` WHERE item_id IN \\(\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "user", "photo", "comment"}).
			AddRow("c1", "item-1", "Alice", "p", "hi"))
	mock.ExpectQuery("SELECT (.+) FROM `replies` WHERE item_id IN \\(\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_id", "item_id"}))

	agg, err := repo.FindByCommentID(context.Background(), domain.KindBlog, "c1")
	require.NoError(t, err)
	assert.Equal(t, "item-1", agg.ID)
	assert.Equal(t, "owner", agg.OwnerID)
	_, ok := agg.CommentByID("c1")
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCommentID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEngagementRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `comments` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id"}))

	_, err := repo.FindByCommentID(context.Background(), domain.KindVideo, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
