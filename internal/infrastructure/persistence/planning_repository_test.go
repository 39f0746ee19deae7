package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/planning"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPlanningRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlanningRepository(db)
	ctx := context.Background()

	clientID := uuid.New()
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates then updates on the natural key", func(t *testing.T) {
		entry, err := planning.NewEntry(clientID, month, planning.StatusHacer)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, entry))

		// A second aggregate for the same cell must land on the same row.
		again, err := planning.NewEntry(clientID, month, planning.StatusConsultar)
		require.NoError(t, err)
		again.SetDescription("ajustar calendario")
		require.NoError(t, repo.Upsert(ctx, again))

		var count int64
		require.NoError(t, db.Model(&models.PlanningEntryModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		found, err := repo.FindByKey(ctx, clientID, month)
		require.NoError(t, err)
		assert.Equal(t, planning.StatusConsultar, found.Status)
		assert.Equal(t, "ajustar calendario", found.Description)
	})

	t.Run("find normalizes the month to its first instant", func(t *testing.T) {
		midMonth := time.Date(2026, 9, 17, 14, 30, 0, 0, time.UTC)
		found, err := repo.FindByKey(ctx, clientID, midMonth)
		require.NoError(t, err)
		assert.Equal(t, clientID, found.ClientID)
	})
}

func TestGormPlanningRepository_Queries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPlanningRepository(db)
	ctx := context.Background()

	clientID := uuid.New()
	september := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	october := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	sept, err := planning.NewEntry(clientID, september, planning.StatusHacer)
	require.NoError(t, err)
	oct, err := planning.NewEntry(clientID, october, planning.StatusNoHacer)
	require.NoError(t, err)
	other, err := planning.NewEntry(uuid.New(), september, planning.StatusConsultar)
	require.NoError(t, err)

	for _, e := range []*planning.Entry{sept, oct, other} {
		require.NoError(t, repo.Upsert(ctx, e))
	}

	t.Run("FindByMonth returns one row per client", func(t *testing.T) {
		entries, err := repo.FindByMonth(ctx, september)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("FindByClient orders newest month first", func(t *testing.T) {
		entries, err := repo.FindByClient(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Month.After(entries[1].Month))
	})

	t.Run("Delete clears the cell", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, clientID, october))
		_, err := repo.FindByKey(ctx, clientID, october)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, clientID, october), shared.ErrNotFound)
	})
}
