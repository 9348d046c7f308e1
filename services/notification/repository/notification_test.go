package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestInsert_NewNotification(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)
	n := &models.Notification{ID: uuid.New(), RecipientID: "p1", RideID: "ride-1", Message: "hi", CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(n.ID, "p1", "ride-1", "hi", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.Insert(context.Background(), n)

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.Insert(context.Background(), &models.Notification{ID: uuid.New(), RecipientID: "p1"})

	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestInsert_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).WillReturnError(errors.New("connection reset"))

	_, err := repo.Insert(context.Background(), &models.Notification{ID: uuid.New()})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert notification")
}

func TestListByRecipient(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)
	newer, older := uuid.New(), uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "recipient_id", "ride_id", "message", "read", "created_at"}).
		AddRow(newer.String(), "p1", "ride-2", "second", false, now).
		AddRow(older.String(), "p1", "ride-1", "first", true, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).WithArgs("p1").WillReturnRows(rows)

	list, err := repo.ListByRecipient(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.False(t, list[0].Read)
	assert.True(t, list[1].Read)
}

func TestListByRecipient_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "recipient_id", "ride_id", "message", "read", "created_at"}))

	list, err := repo.ListByRecipient(context.Background(), "p1")

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMarkAllRead(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = true WHERE recipient_id = $1 AND read = false")).
		WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.MarkAllRead(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	id := uuid.New()
	updateSQL := regexp.QuoteMeta("UPDATE notifications SET read = true WHERE id = $1 AND recipient_id = $2 AND read = false")
	existsSQL := regexp.QuoteMeta("SELECT EXISTS")

	t.Run("unread becomes read", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewNotificationRepository(db)
		mock.ExpectExec(updateSQL).WithArgs(id, "p1").WillReturnResult(sqlmock.NewResult(0, 1))

		changed, err := repo.MarkRead(context.Background(), id, "p1")

		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("already read", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewNotificationRepository(db)
		mock.ExpectExec(updateSQL).WithArgs(id, "p1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsSQL).WithArgs(id, "p1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		changed, err := repo.MarkRead(context.Background(), id, "p1")

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("someone else's notification", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewNotificationRepository(db)
		mock.ExpectExec(updateSQL).WithArgs(id, "p2").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsSQL).WithArgs(id, "p2").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.MarkRead(context.Background(), id, "p2")

		assert.True(t, errors.Is(err, models.ErrNotificationNotFound))
	})
}

func TestCountUnread(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications")).WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountUnread(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
