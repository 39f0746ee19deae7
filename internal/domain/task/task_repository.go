package task

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for task persistence. Normal reads
// exclude trashed tasks.
type Repository interface {
	// FindByID finds a task by its ID, excluding trashed rows
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindAll finds tasks matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Task, error)

	// FindByClient finds tasks linked to a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Task, error)

	// FindDueReminders finds not-completed, not-trashed tasks whose reminder
	// date is at or before the given instant
	FindDueReminders(ctx context.Context, now time.Time) ([]Task, error)

	// Save creates or updates a task
	Save(ctx context.Context, t *Task) error

	// Count counts tasks matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
