package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingFirer struct {
	calls atomic.Int32
	err   error
}

func (f *countingFirer) FireDueReminders(ctx context.Context, now time.Time) (int, error) {
	f.calls.Add(1)
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func TestReminderScheduler_StartAndStop(t *testing.T) {
	t.Run("polls on the configured interval", func(t *testing.T) {
		firer := &countingFirer{}
		s := NewReminderScheduler(ReminderSchedulerConfig{PollInterval: 10 * time.Millisecond}, firer, zap.NewNop())

		require.NoError(t, s.Start(context.Background()))
		defer s.Stop(context.Background())

		assert.Eventually(t, func() bool {
			return firer.calls.Load() >= 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("stop halts polling", func(t *testing.T) {
		firer := &countingFirer{}
		s := NewReminderScheduler(ReminderSchedulerConfig{PollInterval: 10 * time.Millisecond}, firer, zap.NewNop())

		require.NoError(t, s.Start(context.Background()))
		require.NoError(t, s.Stop(context.Background()))

		after := firer.calls.Load()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, after, firer.calls.Load())
	})

	t.Run("starting twice is a no-op", func(t *testing.T) {
		firer := &countingFirer{}
		s := NewReminderScheduler(DefaultReminderSchedulerConfig(), firer, zap.NewNop())

		require.NoError(t, s.Start(context.Background()))
		require.NoError(t, s.Start(context.Background()))
		require.NoError(t, s.Stop(context.Background()))
	})
}
