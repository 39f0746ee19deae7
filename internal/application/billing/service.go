package billing

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/billing"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillingService handles invoices and the package price list
type BillingService struct {
	invoiceRepo billing.InvoiceRepository
	priceRepo   billing.PackagePriceRepository
}

// NewBillingService creates a new BillingService
func NewBillingService(invoiceRepo billing.InvoiceRepository, priceRepo billing.PackagePriceRepository) *BillingService {
	return &BillingService{
		invoiceRepo: invoiceRepo,
		priceRepo:   priceRepo,
	}
}

// CreateInvoice creates a pending invoice with its lines
func (s *BillingService) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	issuedAt := time.Now()
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	inv, err := billing.NewInvoice(req.ClientID, req.Period, issuedAt)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Lines {
		if err := inv.AddLine(line.Description, line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(inv)
	return &response, nil
}

// GetInvoice retrieves an invoice by ID
func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(inv)
	return &response, nil
}

// ListInvoices retrieves a page of invoices
func (s *BillingService) ListInvoices(ctx context.Context, filter InvoiceListFilter) (*shared.Paginated[InvoiceResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	var (
		invoices []billing.Invoice
		err      error
	)
	switch {
	case filter.ClientID != nil:
		invoices, err = s.invoiceRepo.FindByClient(ctx, *filter.ClientID, f)
	case filter.Unpaid:
		invoices, err = s.invoiceRepo.FindUnpaid(ctx, f)
	default:
		invoices, err = s.invoiceRepo.FindAll(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.invoiceRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, ToInvoiceResponse(&invoices[i]))
	}

	result := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &result, nil
}

// MarkInvoicePaid settles an invoice. Settling twice is rejected.
func (s *BillingService) MarkInvoicePaid(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := inv.MarkPaid(time.Now()); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(inv)
	return &response, nil
}

// ReopenInvoice puts a paid invoice back to pending
func (s *BillingService) ReopenInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.MarkPending()

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(inv)
	return &response, nil
}

// DeleteInvoice moves an invoice to the trash
func (s *BillingService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// =============================================================================
// Price list
// =============================================================================

// CreatePrice adds a row to the package price list
func (s *BillingService) CreatePrice(ctx context.Context, req PackagePriceRequest) (*PackagePriceResponse, error) {
	p, err := billing.NewPackagePrice(req.Name, req.TotalPublications, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.priceRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPackagePriceResponse(p)
	return &response, nil
}

// ListPrices lists the whole price list
func (s *BillingService) ListPrices(ctx context.Context) ([]PackagePriceResponse, error) {
	prices, err := s.priceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]PackagePriceResponse, 0, len(prices))
	for i := range prices {
		items = append(items, ToPackagePriceResponse(&prices[i]))
	}
	return items, nil
}

// UpdatePrice replaces a price-list row
func (s *BillingService) UpdatePrice(ctx context.Context, id uuid.UUID, req PackagePriceRequest) (*PackagePriceResponse, error) {
	p, err := s.priceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name, req.TotalPublications, req.Price); err != nil {
		return nil, err
	}

	if err := s.priceRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPackagePriceResponse(p)
	return &response, nil
}

// DeletePrice removes a price-list row
func (s *BillingService) DeletePrice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.priceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.priceRepo.Delete(ctx, id)
}
