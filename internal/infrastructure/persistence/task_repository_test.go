package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T, content string) *task.Task {
	t.Helper()
	tk, err := task.New(content, task.TypeOtros)
	require.NoError(t, err)
	tk.ClearDomainEvents()
	return tk
}

func TestGormTaskRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)
	ctx := context.Background()

	t.Run("round-trips a task with reminder", func(t *testing.T) {
		tk := newTestTask(t, "llamar a Ana")
		reminder := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
		require.NoError(t, tk.SetReminder(reminder, task.FrequencyWeekly))

		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, "llamar a Ana", found.Content)
		require.NotNil(t, found.ReminderDate)
		assert.True(t, reminder.Equal(*found.ReminderDate))
		assert.Equal(t, task.FrequencyWeekly, found.ReminderFrequency)
	})

	t.Run("trashed tasks leave normal reads", func(t *testing.T) {
		tk := newTestTask(t, "borrable")
		require.NoError(t, repo.Save(ctx, tk))

		tk.MarkDeleted(time.Now())
		require.NoError(t, repo.Save(ctx, tk))

		_, err := repo.FindByID(ctx, tk.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTaskRepository_FindDueReminders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	due := newTestTask(t, "vencida")
	require.NoError(t, due.SetReminder(now.Add(-time.Hour), task.FrequencyOnce))

	future := newTestTask(t, "futura")
	require.NoError(t, future.SetReminder(now.Add(time.Hour), task.FrequencyOnce))

	completed := newTestTask(t, "completada")
	require.NoError(t, completed.SetReminder(now.Add(-time.Hour), task.FrequencyOnce))
	completed.ToggleCompleted()

	trashed := newTestTask(t, "en papelera")
	require.NoError(t, trashed.SetReminder(now.Add(-time.Hour), task.FrequencyOnce))
	trashed.MarkDeleted(now)

	noReminder := newTestTask(t, "sin recordatorio")

	for _, tk := range []*task.Task{due, future, completed, trashed, noReminder} {
		require.NoError(t, repo.Save(ctx, tk))
	}

	found, err := repo.FindDueReminders(ctx, now)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "vencida", found[0].Content)
}

func TestGormTaskRepository_FindByClient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)
	ctx := context.Background()

	linked := newTestTask(t, "con cliente")
	clientID := linked.ID
	linked.SetClient(&clientID)

	loose := newTestTask(t, "sin cliente")

	require.NoError(t, repo.Save(ctx, linked))
	require.NoError(t, repo.Save(ctx, loose))

	found, err := repo.FindByClient(ctx, clientID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "con cliente", found[0].Content)

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
