package billing

import (
	"time"

	"github.com/agency/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceLineDTO is one billed item
type InvoiceLineDTO struct {
	Description string          `json:"description" binding:"required,min=1,max=200"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	ClientID uuid.UUID        `json:"client_id" binding:"required"`
	Period   string           `json:"period" binding:"required,max=20"`
	IssuedAt *time.Time       `json:"issued_at"`
	Lines    []InvoiceLineDTO `json:"lines" binding:"required,min=1,dive"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	Unpaid   bool       `form:"unpaid"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID        uuid.UUID        `json:"id"`
	ClientID  uuid.UUID        `json:"client_id"`
	Period    string           `json:"period"`
	Lines     []InvoiceLineDTO `json:"lines"`
	Total     decimal.Decimal  `json:"total"`
	Status    string           `json:"status"`
	IssuedAt  time.Time        `json:"issued_at"`
	PaidAt    *time.Time       `json:"paid_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PackagePriceRequest creates or updates a price-list row
type PackagePriceRequest struct {
	Name              string          `json:"name" binding:"required,min=1,max=100"`
	TotalPublications int             `json:"total_publications" binding:"min=0"`
	Price             decimal.Decimal `json:"price" binding:"required"`
}

// PackagePriceResponse represents a price-list row in API responses
type PackagePriceResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	TotalPublications int             `json:"total_publications"`
	Price             decimal.Decimal `json:"price"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(i *billing.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineDTO, 0, len(i.Lines))
	for _, l := range i.Lines {
		lines = append(lines, InvoiceLineDTO{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount(),
		})
	}

	return InvoiceResponse{
		ID:        i.ID,
		ClientID:  i.ClientID,
		Period:    i.Period,
		Lines:     lines,
		Total:     i.Total(),
		Status:    string(i.Status),
		IssuedAt:  i.IssuedAt,
		PaidAt:    i.PaidAt,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToPackagePriceResponse converts a domain price row to a response DTO
func ToPackagePriceResponse(p *billing.PackagePrice) PackagePriceResponse {
	return PackagePriceResponse{
		ID:                p.ID,
		Name:              p.Name,
		TotalPublications: p.TotalPublications,
		Price:             p.Price,
		UpdatedAt:         p.UpdatedAt,
	}
}
