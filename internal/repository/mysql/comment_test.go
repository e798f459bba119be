package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/pagetalk/comment-api/domain"
	mysqlRepo "github.com/pagetalk/comment-api/internal/repository/mysql"
)

var commentColumns = []string{
	"id", "page_id", "author_id", "content", "parent_id",
	"is_edited", "edited_at", "is_deleted", "created_at", "updated_at",
	"author_name", "author_email", "likes_count", "dislikes_count",
}

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestFetchByPage(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows(commentColumns).
		AddRow(2, "page-1", 7, "second", 0, false, nil, false, now, now, "Bob", "bob@x.com", 3, 0).
		AddRow(1, "page-1", 5, "first", 0, false, nil, false, now.Add(-time.Hour), now.Add(-time.Hour), "Alice", "alice@x.com", 1, 2)

	// Pin the whole shape of the listing query: reaction sorts order by the
	// derived count with newer created_at breaking ties.
	mock.ExpectQuery("SELECT comments\\..+ FROM `comments` LEFT JOIN users .+ "+
		"ORDER BY likes_count DESC, comments\\.created_at DESC").
		WillReturnRows(rows)

	res, err := repo.FetchByPage(context.Background(), domain.CommentFilter{
		PageID: "page-1",
		Sort:   domain.SortMostLiked,
		Offset: 0,
		Limit:  10,
	})

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(3), res[0].LikesCount)
	assert.Equal(t, "Bob", res[0].Author.Name)
	assert.Equal(t, "bob@x.com", res[0].Author.Email)
	assert.Equal(t, int64(2), res[1].DislikesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	t.Run("reply resolves its parent summary", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		now := time.Now()
		mock.ExpectQuery("SELECT comments\\..+ FROM `comments` LEFT JOIN users").
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(11, "page-1", 7, "a reply", 10, false, nil, false, now, now, "Bob", "bob@x.com", 0, 0))
		mock.ExpectQuery("SELECT `id`,`content`,`author_id` FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "content", "author_id"}).
				AddRow(10, "parent content", 5))

		res, err := repo.GetByID(context.Background(), 11)

		require.NoError(t, err)
		assert.Equal(t, int64(10), res.ParentID)
		require.NotNil(t, res.Parent)
		assert.Equal(t, "parent content", res.Parent.Content)
		assert.Equal(t, int64(5), res.Parent.AuthorID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent row yields not found", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectQuery("SELECT comments\\..+ FROM `comments` LEFT JOIN users").
			WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCountByPage(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(25))

	count, err := repo.CountByPage(context.Background(), "page-1", 0)

	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
}

func TestSetReaction(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec("INSERT INTO `comment_reactions` .+ ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetReaction(context.Background(), 1, 9, domain.ReactionLike)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearReaction(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec("DELETE FROM `comment_reactions`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearReaction(context.Background(), 1, 9, domain.ReactionLike)

	assert.NoError(t, err)
}

func TestGetReaction(t *testing.T) {
	t.Run("no membership", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectQuery("SELECT (.+) FROM `comment_reactions`").
			WillReturnRows(sqlmock.NewRows([]string{"comment_id", "user_id", "kind", "created_at"}))

		kind, err := repo.GetReaction(context.Background(), 1, 9)

		require.NoError(t, err)
		assert.Equal(t, domain.ReactionNone, kind)
	})

	t.Run("existing like", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectQuery("SELECT (.+) FROM `comment_reactions`").
			WillReturnRows(sqlmock.NewRows([]string{"comment_id", "user_id", "kind", "created_at"}).
				AddRow(1, 9, "like", time.Now()))

		kind, err := repo.GetReaction(context.Background(), 1, 9)

		require.NoError(t, err)
		assert.Equal(t, domain.ReactionLike, kind)
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("marks the row deleted", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectExec("UPDATE `comments` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(context.Background(), 5))
	})

	t.Run("absent row yields not found", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectExec("UPDATE `comments` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(context.Background(), 99), domain.ErrNotFound)
	})
}

func TestUpdateContent(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comments` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateContent(context.Background(), 5, "updated", time.Now()))
}
