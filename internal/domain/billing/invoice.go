package billing

import (
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoiceLine is one billed item on an invoice
type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Amount returns the line total
func (l InvoiceLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Invoice is the aggregate root for a client bill
type Invoice struct {
	shared.BaseAggregateRoot
	ClientID  uuid.UUID
	Period    string
	Lines     []InvoiceLine
	Status    InvoiceStatus
	IssuedAt  time.Time
	PaidAt    *time.Time
	DeletedAt *time.Time
}

// NewInvoice creates a pending invoice for a client and billing period
func NewInvoice(clientID uuid.UUID, period string, issuedAt time.Time) (*Invoice, error) {
	if strings.TrimSpace(period) == "" {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Invoice period cannot be empty")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		Period:            period,
		Lines:             make([]InvoiceLine, 0),
		Status:            InvoiceStatusPending,
		IssuedAt:          issuedAt,
	}, nil
}

// AddLine appends a billed item
func (i *Invoice) AddLine(description string, quantity int, unitPrice decimal.Decimal) error {
	if strings.TrimSpace(description) == "" {
		return shared.NewDomainError("INVALID_LINE", "Line description cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_LINE", "Line quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_LINE", "Line unit price cannot be negative")
	}

	i.Lines = append(i.Lines, InvoiceLine{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	i.UpdatedAt = time.Now()
	return nil
}

// Total sums all line amounts
func (i *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range i.Lines {
		total = total.Add(line.Amount())
	}
	return total
}

// MarkPaid settles the invoice. Paying twice is rejected.
func (i *Invoice) MarkPaid(at time.Time) error {
	if i.Status == InvoiceStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Invoice is already paid")
	}
	i.Status = InvoiceStatusPaid
	i.PaidAt = &at
	i.UpdatedAt = time.Now()
	return nil
}

// MarkPending reopens a paid invoice
func (i *Invoice) MarkPending() {
	i.Status = InvoiceStatusPending
	i.PaidAt = nil
	i.UpdatedAt = time.Now()
}

// IsPaid reports whether the invoice is settled
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// IsDeleted reports whether the invoice is in the trash
func (i *Invoice) IsDeleted() bool {
	return i.DeletedAt != nil
}

// MarkDeleted moves the invoice to the trash
func (i *Invoice) MarkDeleted(at time.Time) {
	i.DeletedAt = &at
	i.UpdatedAt = time.Now()
}
