package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ReminderFirer fires every due task reminder and reports how many went out
type ReminderFirer interface {
	FireDueReminders(ctx context.Context, now time.Time) (int, error)
}

// ReminderSchedulerConfig holds configuration for the reminder scheduler
type ReminderSchedulerConfig struct {
	// PollInterval is how often due reminders are looked up
	PollInterval time.Duration
}

// DefaultReminderSchedulerConfig returns default reminder scheduler configuration
func DefaultReminderSchedulerConfig() ReminderSchedulerConfig {
	return ReminderSchedulerConfig{
		PollInterval: time.Minute,
	}
}

// ReminderScheduler periodically fires due task reminders. Firing is
// idempotent on the task side: a fired one-shot reminder is cleared and a
// recurring one is advanced past now, so a poll never sees it twice.
type ReminderScheduler struct {
	config ReminderSchedulerConfig
	firer  ReminderFirer
	logger *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(config ReminderSchedulerConfig, firer ReminderFirer, logger *zap.Logger) *ReminderScheduler {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Minute
	}
	return &ReminderScheduler{
		config: config,
		firer:  firer,
		logger: logger,
	}
}

// Start starts the polling loop
func (s *ReminderScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("Reminder scheduler started",
		zap.Duration("poll_interval", s.config.PollInterval),
	)

	return nil
}

// Stop stops the polling loop and waits for an in-flight poll to finish
func (s *ReminderScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runLoop polls for due reminders until the context is canceled
func (s *ReminderScheduler) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

// poll fires every reminder due at this instant
func (s *ReminderScheduler) poll(ctx context.Context) {
	fired, err := s.firer.FireDueReminders(ctx, time.Now())
	if err != nil {
		s.logger.Error("Reminder poll failed", zap.Error(err))
		return
	}
	if fired > 0 {
		s.logger.Info("Fired due reminders", zap.Int("count", fired))
	}
}
