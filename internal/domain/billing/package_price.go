package billing

import (
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PackagePrice is a price-list row for a publication package type
type PackagePrice struct {
	shared.BaseEntity
	Name              string
	TotalPublications int
	Price             decimal.Decimal
}

// NewPackagePrice creates a price-list row
func NewPackagePrice(name string, totalPublications int, price decimal.Decimal) (*PackagePrice, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Price name cannot be empty")
	}
	if totalPublications < 0 {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Publication count cannot be negative")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &PackagePrice{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              name,
		TotalPublications: totalPublications,
		Price:             price,
	}, nil
}

// Update replaces the row's fields
func (p *PackagePrice) Update(name string, totalPublications int, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Price name cannot be empty")
	}
	if totalPublications < 0 {
		return shared.NewDomainError("INVALID_TOTAL", "Publication count cannot be negative")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = name
	p.TotalPublications = totalPublications
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}
