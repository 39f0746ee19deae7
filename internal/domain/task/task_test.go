package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("creates task successfully", func(t *testing.T) {
		tk, err := New("enviar calendario de marzo", TypeCalendarios)

		require.NoError(t, err)
		assert.False(t, tk.Completed)
		assert.Equal(t, FrequencyOnce, tk.ReminderFrequency)
		assert.Nil(t, tk.ReminderDate)
		assert.Nil(t, tk.ClientID)
	})

	t.Run("fails with empty content", func(t *testing.T) {
		_, err := New("  ", TypeOtros)
		assert.Error(t, err)
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := New("cobrar", Type("facturas"))
		assert.Error(t, err)
	})
}

func TestToggleCompleted(t *testing.T) {
	t.Run("completing un-trashes the task", func(t *testing.T) {
		tk, _ := New("cobrar a Ana", TypeCobros)
		tk.MarkDeleted(time.Now())
		require.True(t, tk.IsDeleted())

		tk.ToggleCompleted()

		assert.True(t, tk.Completed)
		assert.Nil(t, tk.DeletedAt)
	})

	t.Run("un-completing leaves trash state alone", func(t *testing.T) {
		tk, _ := New("cobrar a Ana", TypeCobros)
		tk.ToggleCompleted()
		tk.ToggleCompleted()

		assert.False(t, tk.Completed)
		assert.False(t, tk.IsDeleted())
	})
}

func TestMarkDeleted(t *testing.T) {
	tk, _ := New("revisar correcciones", TypeCorrecciones)
	tk.ToggleCompleted()

	tk.MarkDeleted(time.Now())

	// deletion does not alter completed
	assert.True(t, tk.Completed)
	assert.True(t, tk.IsDeleted())

	tk.Restore()
	assert.False(t, tk.IsDeleted())
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("due when date passed", func(t *testing.T) {
		tk, _ := New("llamar a Ana", TypeOtros)
		require.NoError(t, tk.SetReminder(past, FrequencyOnce))
		assert.True(t, tk.ReminderDue(now))
	})

	t.Run("due exactly at the reminder instant", func(t *testing.T) {
		tk, _ := New("llamar a Ana", TypeOtros)
		require.NoError(t, tk.SetReminder(now, FrequencyOnce))
		assert.True(t, tk.ReminderDue(now))
	})

	t.Run("not due in the future", func(t *testing.T) {
		tk, _ := New("llamar a Ana", TypeOtros)
		require.NoError(t, tk.SetReminder(future, FrequencyOnce))
		assert.False(t, tk.ReminderDue(now))
	})

	t.Run("never due when completed, trashed or unset", func(t *testing.T) {
		tk, _ := New("llamar a Ana", TypeOtros)
		assert.False(t, tk.ReminderDue(now))

		tk.SetReminder(past, FrequencyOnce)
		tk.ToggleCompleted()
		assert.False(t, tk.ReminderDue(now))

		tk.ToggleCompleted()
		tk.MarkDeleted(now)
		assert.False(t, tk.ReminderDue(now))
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		tk, _ := New("llamar a Ana", TypeOtros)
		assert.Error(t, tk.SetReminder(past, ReminderFrequency("hourly")))
	})
}

func TestAdvanceReminder(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("once clears the reminder", func(t *testing.T) {
		tk, _ := New("llamar a Ana", TypeOtros)
		tk.SetReminder(now.Add(-time.Hour), FrequencyOnce)

		tk.AdvanceReminder(now)

		assert.Nil(t, tk.ReminderDate)
		assert.False(t, tk.ReminderDue(now))
	})

	t.Run("daily advances past now", func(t *testing.T) {
		tk, _ := New("daily standup", TypeOtros)
		fired := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
		tk.SetReminder(fired, FrequencyDaily)

		tk.AdvanceReminder(now)

		require.NotNil(t, tk.ReminderDate)
		assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), *tk.ReminderDate)
		assert.False(t, tk.ReminderDue(now))
	})

	t.Run("weekly advances by weeks", func(t *testing.T) {
		tk, _ := New("reporte semanal", TypeOtros)
		fired := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
		tk.SetReminder(fired, FrequencyWeekly)

		tk.AdvanceReminder(now)

		require.NotNil(t, tk.ReminderDate)
		assert.Equal(t, time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC), *tk.ReminderDate)
	})

	t.Run("monthly keeps day of month", func(t *testing.T) {
		tk, _ := New("facturar", TypeCobros)
		fired := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
		tk.SetReminder(fired, FrequencyMonthly)

		tk.AdvanceReminder(now)

		require.NotNil(t, tk.ReminderDate)
		assert.Equal(t, time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC), *tk.ReminderDate)
	})

	t.Run("monthly clamps to short months", func(t *testing.T) {
		tk, _ := New("facturar", TypeCobros)
		fired := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
		tk.SetReminder(fired, FrequencyMonthly)

		tk.AdvanceReminder(time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC))

		require.NotNil(t, tk.ReminderDate)
		assert.Equal(t, time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC), *tk.ReminderDate)
	})

	t.Run("no-op without a reminder", func(t *testing.T) {
		tk, _ := New("sin recordatorio", TypeOtros)
		tk.AdvanceReminder(now)
		assert.Nil(t, tk.ReminderDate)
	})
}

func TestSetClient(t *testing.T) {
	tk, _ := New("campaña otoño", TypeCampana)
	id := uuid.New()

	tk.SetClient(&id)
	require.NotNil(t, tk.ClientID)
	assert.Equal(t, id, *tk.ClientID)

	tk.SetClient(nil)
	assert.Nil(t, tk.ClientID)
}
