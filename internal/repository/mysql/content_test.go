package mysql

import (
	"context"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository"
)

func TestContent_FetchInvalidCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)

	_, err := repo.Fetch(context.Background(), domain.KindBlog, "not base64!", 10)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_FetchResumesAfterCursorPair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM `content_items` WHERE kind = \\? AND \\(created_at > \\? OR \\(created_at = \\? AND id > \\?\\)\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "created_at"}))

	page, err := repo.Fetch(context.Background(), domain.KindBlog, repository.EncodeCursor(ts, "item-2"), 2)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `content_items` WHERE id = \\? AND kind = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), domain.KindBlog, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_GetByIDLoadsEngagement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM `content_items` WHERE id = \\? AND kind = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "user_id", "name", "category", "like_count", "created_at"}).
			AddRow("item-1", "blog", "owner", "Hello", "go", 1, now))
	mock.ExpectQuery("SELECT (.+) FROM `item_likes` WHERE item_id IN \\(\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "user_id"}).AddRow("item-1", "u1"))
	mock.ExpectQuery("SELECT (.+) FROM `comments` WHERE item_id IN \\(\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "user", "photo", "comment"}).
			AddRow("c1", "item-1", "Alice", "p", "Nice"))
	mock.ExpectQuery("SELECT (.+) FROM `replies` WHERE item_id IN \\(\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_id", "item_id", "user", "photo", "reply"}).
			AddRow("r1", "c1", "item-1", "Bob", "p", "Agreed"))

	got, err := repo.GetByID(context.Background(), domain.KindBlog, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Name)
	assert.Equal(t, domain.KindBlog, got.Kind)
	assert.Equal(t, []string{"u1"}, got.LikedBy)
	assert.Equal(t, int64(1), got.LikeCount)
	require.Len(t, got.Comments, 1)
	require.Len(t, got.Comments[0].Replies, 1)
	assert.Equal(t, "Agreed", got.Comments[0].Replies[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_StoreConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)

	mock.ExpectExec("INSERT INTO `content_items`").
		WillReturnError(&mysqldriver.MySQLError{Number: errDupEntry})

	err := repo.Store(context.Background(), &domain.ContentItem{
		Aggregate: domain.Aggregate{ID: "item-1", Kind: domain.KindVideo},
		Name:      "dup",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_DeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `content_items` WHERE id = \\? AND kind = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), domain.KindBlog, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_DeleteCascades(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `content_items`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `item_likes` WHERE item_id = \\?").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `replies` WHERE item_id = \\?").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `comments` WHERE item_id = \\?").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), domain.KindBlog, "item-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
