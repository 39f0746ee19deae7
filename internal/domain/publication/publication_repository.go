package publication

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for publication persistence. Normal reads
// exclude trashed rows; the trash methods operate on them explicitly.
type Repository interface {
	// FindByID finds a publication by its ID, excluding trashed rows
	FindByID(ctx context.Context, id uuid.UUID) (*Publication, error)

	// FindAll finds publications matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Publication, error)

	// FindByClient finds publications for a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Publication, error)

	// FindByDateRange finds publications scheduled inside [from, to)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Publication, error)

	// FindTrashed lists publications currently in the trash
	FindTrashed(ctx context.Context, filter shared.Filter) ([]Publication, error)

	// FindTrashedByID finds a trashed publication by its ID
	FindTrashedByID(ctx context.Context, id uuid.UUID) (*Publication, error)

	// Save creates or updates a publication
	Save(ctx context.Context, p *Publication) error

	// Count counts publications matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// NoteRepository defines the interface for publication note persistence.
// Notes are hard deleted.
type NoteRepository interface {
	// FindByID finds a note by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Note, error)

	// FindByPublication lists the notes of a publication, oldest first
	FindByPublication(ctx context.Context, publicationID uuid.UUID) ([]Note, error)

	// Save creates or updates a note
	Save(ctx context.Context, n *Note) error

	// Delete removes a note permanently
	Delete(ctx context.Context, id uuid.UUID) error
}
