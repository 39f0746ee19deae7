package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for planning entry persistence. Upsert is
// the only write: repeated saves for the same (client, month) pair update
// one row and never create a second.
type Repository interface {
	// FindByKey finds the entry for a client and month, if any
	FindByKey(ctx context.Context, clientID uuid.UUID, month time.Time) (*Entry, error)

	// FindByMonth lists all entries for a month
	FindByMonth(ctx context.Context, month time.Time) ([]Entry, error)

	// FindByClient lists all entries for a client, newest month first
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Entry, error)

	// Upsert creates or updates the entry on its (client, month) natural key
	Upsert(ctx context.Context, e *Entry) error

	// Delete removes the entry for a client and month
	Delete(ctx context.Context, clientID uuid.UUID, month time.Time) error
}
