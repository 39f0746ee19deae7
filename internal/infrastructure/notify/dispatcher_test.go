package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/agency/backend/internal/domain/notification"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockNotificationRepository is a mock implementation of notification.Repository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.Notification, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindUnread(ctx context.Context) ([]notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("stores the notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		d := NewDispatcher(repo, nil, zap.NewNop())

		n, err := notification.New(notification.KindSuccess, "Paquete completado", "basico 8/8")
		require.NoError(t, err)

		d.Dispatch(context.Background(), n)

		repo.AssertExpectations(t)
	})

	t.Run("swallows storage failures", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		d := NewDispatcher(repo, nil, zap.NewNop())

		n, err := notification.New(notification.KindError, "Calendario desincronizado", "")
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			d.Dispatch(context.Background(), n)
		})
		repo.AssertExpectations(t)
	})
}
