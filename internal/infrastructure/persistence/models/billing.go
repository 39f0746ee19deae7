package models

import (
	"encoding/json"
	"time"

	"github.com/agency/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
// Lines are stored as a JSON column; they are always read and written as a
// whole with their invoice.
type InvoiceModel struct {
	AggregateModel
	ClientID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Period    string     `gorm:"type:varchar(20);not null"`
	Lines     string     `gorm:"type:text"`
	Status    string     `gorm:"type:varchar(20);not null;default:'pending'"`
	IssuedAt  time.Time  `gorm:"not null"`
	PaidAt    *time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() (*billing.Invoice, error) {
	var lines []billing.InvoiceLine
	if m.Lines != "" {
		if err := json.Unmarshal([]byte(m.Lines), &lines); err != nil {
			return nil, err
		}
	}

	i := &billing.Invoice{
		ClientID:  m.ClientID,
		Period:    m.Period,
		Lines:     lines,
		Status:    billing.InvoiceStatus(m.Status),
		IssuedAt:  m.IssuedAt,
		PaidAt:    m.PaidAt,
		DeletedAt: m.DeletedAt,
	}
	m.PopulateAggregateRoot(&i.BaseAggregateRoot)
	return i, nil
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(i *billing.Invoice) error {
	raw, err := json.Marshal(i.Lines)
	if err != nil {
		return err
	}

	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.ClientID = i.ClientID
	m.Period = i.Period
	m.Lines = string(raw)
	m.Status = string(i.Status)
	m.IssuedAt = i.IssuedAt
	m.PaidAt = i.PaidAt
	m.DeletedAt = i.DeletedAt
	return nil
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(i *billing.Invoice) (*InvoiceModel, error) {
	m := &InvoiceModel{}
	if err := m.FromDomain(i); err != nil {
		return nil, err
	}
	return m, nil
}

// PackagePriceModel is the persistence model for a price-list row.
type PackagePriceModel struct {
	BaseModel
	Name              string          `gorm:"type:varchar(100);not null"`
	TotalPublications int             `gorm:"not null;default:0"`
	Price             decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (PackagePriceModel) TableName() string {
	return "package_prices"
}

// ToDomain converts the persistence model to a domain PackagePrice
func (m *PackagePriceModel) ToDomain() *billing.PackagePrice {
	return &billing.PackagePrice{
		BaseEntity:        m.BaseModel.ToDomain(),
		Name:              m.Name,
		TotalPublications: m.TotalPublications,
		Price:             m.Price,
	}
}

// FromDomain populates the persistence model from a domain PackagePrice
func (m *PackagePriceModel) FromDomain(p *billing.PackagePrice) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.TotalPublications = p.TotalPublications
	m.Price = p.Price
}

// PackagePriceModelFromDomain creates a new persistence model from a domain PackagePrice
func PackagePriceModelFromDomain(p *billing.PackagePrice) *PackagePriceModel {
	m := &PackagePriceModel{}
	m.FromDomain(p)
	return m
}
