package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*notificationUC, *mocks.MockNotificationRepo, *mocks.MockUnreadCounter) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepo(ctrl)
	counter := mocks.NewMockUnreadCounter(ctrl)
	uc, err := NewNotificationUC(repo, counter)
	require.NoError(t, err)
	return uc.(*notificationUC), repo, counter
}

func TestNewNotificationUC_RequiresRepo(t *testing.T) {
	uc, err := NewNotificationUC(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, uc)
}

func TestStore_NewEventBumpsCounter(t *testing.T) {
	uc, repo, counter := newTestUC(t)
	event := &models.NotificationEvent{ID: uuid.NewString(), RecipientID: "p1", RideID: "ride-1", Message: "hi", CreatedAt: time.Now()}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Notification) (bool, error) {
		assert.Equal(t, event.ID, n.ID.String())
		assert.Equal(t, "p1", n.RecipientID)
		assert.False(t, n.Read)
		return true, nil
	})
	counter.EXPECT().Incr(gomock.Any(), "p1").Return(nil)

	require.NoError(t, uc.Store(context.Background(), event))
}

func TestStore_RedeliveryIsIgnored(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)

	err := uc.Store(context.Background(), &models.NotificationEvent{ID: uuid.NewString(), RecipientID: "p1"})

	assert.NoError(t, err)
}

func TestStore_CounterFailureDoesNotFailStore(t *testing.T) {
	uc, repo, counter := newTestUC(t)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
	counter.EXPECT().Incr(gomock.Any(), "p1").Return(errors.New("redis down"))

	err := uc.Store(context.Background(), &models.NotificationEvent{ID: uuid.NewString(), RecipientID: "p1"})

	assert.NoError(t, err)
}

func TestStore_Validation(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.Store(context.Background(), &models.NotificationEvent{ID: uuid.NewString()})
	assert.True(t, errors.Is(err, models.ErrValidation))

	err = uc.Store(context.Background(), &models.NotificationEvent{ID: "nope", RecipientID: "p1"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	err = uc.Store(context.Background(), nil)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestList_MarksAllReadAndResetsCounter(t *testing.T) {
	uc, repo, counter := newTestUC(t)
	list := []*models.Notification{{ID: uuid.New(), Message: "newest"}, {ID: uuid.New(), Message: "older", Read: true}}

	gomock.InOrder(
		repo.EXPECT().ListByRecipient(gomock.Any(), "p1").Return(list, nil),
		repo.EXPECT().MarkAllRead(gomock.Any(), "p1").Return(nil),
		counter.EXPECT().Set(gomock.Any(), "p1", int64(0)).Return(nil),
	)

	got, err := uc.List(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.False(t, got[0].Read)
}

func TestList_RepoError(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().ListByRecipient(gomock.Any(), "p1").Return(nil, errors.New("db down"))

	_, err := uc.List(context.Background(), "p1")

	assert.Error(t, err)
}

func TestUnreadCount_FromCounter(t *testing.T) {
	uc, _, counter := newTestUC(t)
	counter.EXPECT().Get(gomock.Any(), "p1").Return(int64(3), true, nil)

	count, err := uc.UnreadCount(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, &models.UnreadCount{UserID: "p1", Count: 3}, count)
}

func TestUnreadCount_FallsBackToRepo(t *testing.T) {
	tests := []struct {
		name string
		hit  bool
		err  error
	}{
		{"cache miss", false, nil},
		{"cache error", false, errors.New("redis down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, counter := newTestUC(t)
			counter.EXPECT().Get(gomock.Any(), "p1").Return(int64(0), tt.hit, tt.err)
			repo.EXPECT().CountUnread(gomock.Any(), "p1").Return(int64(5), nil)
			counter.EXPECT().Set(gomock.Any(), "p1", int64(5)).Return(nil)

			count, err := uc.UnreadCount(context.Background(), "p1")

			require.NoError(t, err)
			assert.Equal(t, int64(5), count.Count)
		})
	}
}

func TestUnreadCount_WithoutCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNotificationRepo(ctrl)
	uc, err := NewNotificationUC(repo, nil)
	require.NoError(t, err)
	repo.EXPECT().CountUnread(gomock.Any(), "p1").Return(int64(2), nil)

	count, err := uc.UnreadCount(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)
}

func TestMarkRead(t *testing.T) {
	uc, repo, counter := newTestUC(t)
	id := uuid.New()

	repo.EXPECT().MarkRead(gomock.Any(), id, "p1").Return(true, nil)
	counter.EXPECT().Decr(gomock.Any(), "p1").Return(nil)
	require.NoError(t, uc.MarkRead(context.Background(), "p1", id.String()))

	// already read: the counter is left alone
	repo.EXPECT().MarkRead(gomock.Any(), id, "p1").Return(false, nil)
	require.NoError(t, uc.MarkRead(context.Background(), "p1", id.String()))
}

func TestMarkRead_NotFound(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()
	repo.EXPECT().MarkRead(gomock.Any(), id, "p1").Return(false, models.ErrNotificationNotFound)

	err := uc.MarkRead(context.Background(), "p1", id.String())
	assert.True(t, errors.Is(err, models.ErrNotificationNotFound))

	err = uc.MarkRead(context.Background(), "p1", "not-a-uuid")
	assert.True(t, errors.Is(err, models.ErrNotificationNotFound))
}
