package billing

import (
	"context"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence. Normal
// reads exclude trashed invoices.
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindAll finds invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// FindByClient finds invoices for a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Invoice, error)

	// FindUnpaid finds pending invoices
	FindUnpaid(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, i *Invoice) error

	// Delete moves an invoice to the trash
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// PackagePriceRepository defines the interface for price-list persistence
type PackagePriceRepository interface {
	// FindByID finds a price row by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PackagePrice, error)

	// FindAll lists the whole price list
	FindAll(ctx context.Context) ([]PackagePrice, error)

	// Save creates or updates a price row
	Save(ctx context.Context, p *PackagePrice) error

	// Delete removes a price row
	Delete(ctx context.Context, id uuid.UUID) error
}
