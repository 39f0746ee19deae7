package planning

import (
	"context"
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/planning"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEntryRepository is a mock implementation of planning.Repository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByKey(ctx context.Context, clientID uuid.UUID, month time.Time) (*planning.Entry, error) {
	args := m.Called(ctx, clientID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByMonth(ctx context.Context, month time.Time) ([]planning.Entry, error) {
	args := m.Called(ctx, month)
	return args.Get(0).([]planning.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]planning.Entry, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]planning.Entry), args.Error(1)
}

func (m *MockEntryRepository) Upsert(ctx context.Context, e *planning.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, clientID uuid.UUID, month time.Time) error {
	args := m.Called(ctx, clientID, month)
	return args.Error(0)
}

func TestPlanningService_SetStatus(t *testing.T) {
	monthStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty cell is created on first write", func(t *testing.T) {
		repo := new(MockEntryRepository)
		svc := NewPlanningService(repo)
		clientID := uuid.New()

		repo.On("FindByKey", mock.Anything, clientID, monthStart).Return(nil, shared.ErrNotFound)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*planning.Entry")).Return(nil)

		resp, err := svc.SetStatus(context.Background(), SetStatusRequest{
			ClientID: clientID,
			Month:    time.Date(2026, 9, 17, 15, 30, 0, 0, time.UTC),
			Status:   "no_hacer",
		})

		require.NoError(t, err)
		assert.Equal(t, "no_hacer", resp.Status)
		assert.True(t, monthStart.Equal(resp.Month), "month must be normalized to its first instant")
	})

	t.Run("existing cell is updated, not duplicated", func(t *testing.T) {
		repo := new(MockEntryRepository)
		svc := NewPlanningService(repo)

		entry, err := planning.NewEntry(uuid.New(), monthStart, planning.StatusHacer)
		require.NoError(t, err)

		repo.On("FindByKey", mock.Anything, entry.ClientID, monthStart).Return(entry, nil)
		repo.On("Upsert", mock.Anything, entry).Return(nil)

		resp, err := svc.SetStatus(context.Background(), SetStatusRequest{
			ClientID: entry.ClientID,
			Month:    monthStart,
			Status:   "consultar",
		})

		require.NoError(t, err)
		assert.Equal(t, "consultar", resp.Status)
		assert.Equal(t, entry.ID, resp.ID)
	})
}

func TestPlanningService_CycleStatus(t *testing.T) {
	monthStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty cell starts the ring at hacer", func(t *testing.T) {
		repo := new(MockEntryRepository)
		svc := NewPlanningService(repo)
		clientID := uuid.New()

		repo.On("FindByKey", mock.Anything, clientID, monthStart).Return(nil, shared.ErrNotFound)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*planning.Entry")).Return(nil)

		resp, err := svc.CycleStatus(context.Background(), CycleStatusRequest{ClientID: clientID, Month: monthStart})

		require.NoError(t, err)
		assert.Equal(t, "hacer", resp.Status)
	})

	t.Run("full ring comes back around", func(t *testing.T) {
		repo := new(MockEntryRepository)
		svc := NewPlanningService(repo)

		entry, err := planning.NewEntry(uuid.New(), monthStart, planning.StatusHacer)
		require.NoError(t, err)

		repo.On("FindByKey", mock.Anything, entry.ClientID, monthStart).Return(entry, nil)
		repo.On("Upsert", mock.Anything, entry).Return(nil)

		req := CycleStatusRequest{ClientID: entry.ClientID, Month: monthStart}

		resp, err := svc.CycleStatus(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "no_hacer", resp.Status)

		resp, err = svc.CycleStatus(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "consultar", resp.Status)

		resp, err = svc.CycleStatus(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "hacer", resp.Status)
	})
}

func TestPlanningService_SetDescription(t *testing.T) {
	monthStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("description does not touch status", func(t *testing.T) {
		repo := new(MockEntryRepository)
		svc := NewPlanningService(repo)

		entry, err := planning.NewEntry(uuid.New(), monthStart, planning.StatusNoHacer)
		require.NoError(t, err)

		repo.On("FindByKey", mock.Anything, entry.ClientID, monthStart).Return(entry, nil)
		repo.On("Upsert", mock.Anything, entry).Return(nil)

		resp, err := svc.SetDescription(context.Background(), SetDescriptionRequest{
			ClientID:    entry.ClientID,
			Month:       monthStart,
			Description: "cliente de vacaciones",
		})

		require.NoError(t, err)
		assert.Equal(t, "cliente de vacaciones", resp.Description)
		assert.Equal(t, "no_hacer", resp.Status)
	})
}
