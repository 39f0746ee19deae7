package client

import (
	"context"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for client persistence. Reads exclude
// trashed clients unless stated otherwise.
type Repository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// FindByPaymentDay finds clients whose payment is due on the given day
	FindByPaymentDay(ctx context.Context, day int) ([]Client, error)

	// Save creates or updates a client together with its package list
	Save(ctx context.Context, c *Client) error

	// SaveWithLock saves a client with an optimistic version check.
	// Returns shared.ErrConcurrencyConflict if the stored version moved on.
	SaveWithLock(ctx context.Context, c *Client) error

	// Delete moves a client to the trash
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
