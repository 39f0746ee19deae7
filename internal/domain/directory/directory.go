package directory

import (
	"context"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Designer is a reference-data row naming a designer that can be attached
// to publications.
type Designer struct {
	shared.BaseEntity
	Name   string
	Active bool
}

// NewDesigner creates an active designer
func NewDesigner(name string) (*Designer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Designer name cannot be empty")
	}
	return &Designer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Active:     true,
	}, nil
}

// Rename changes the designer's name
func (d *Designer) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Designer name cannot be empty")
	}
	d.Name = name
	d.UpdatedAt = time.Now()
	return nil
}

// SetActive toggles whether the designer is selectable
func (d *Designer) SetActive(active bool) {
	d.Active = active
	d.UpdatedAt = time.Now()
}

// ClientLink is a labeled URL stored against a client
type ClientLink struct {
	shared.BaseEntity
	ClientID uuid.UUID
	Label    string
	URL      string
}

// NewClientLink creates a labeled URL for a client
func NewClientLink(clientID uuid.UUID, label, url string) (*ClientLink, error) {
	if strings.TrimSpace(label) == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Link label cannot be empty")
	}
	if strings.TrimSpace(url) == "" {
		return nil, shared.NewDomainError("INVALID_URL", "Link URL cannot be empty")
	}
	return &ClientLink{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Label:      label,
		URL:        url,
	}, nil
}

// Update replaces the label and URL
func (l *ClientLink) Update(label, url string) error {
	if strings.TrimSpace(label) == "" {
		return shared.NewDomainError("INVALID_LABEL", "Link label cannot be empty")
	}
	if strings.TrimSpace(url) == "" {
		return shared.NewDomainError("INVALID_URL", "Link URL cannot be empty")
	}
	l.Label = label
	l.URL = url
	l.UpdatedAt = time.Now()
	return nil
}

// DesignerRepository defines designer persistence
type DesignerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Designer, error)
	FindAll(ctx context.Context) ([]Designer, error)
	Save(ctx context.Context, d *Designer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientLinkRepository defines client link persistence
type ClientLinkRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientLink, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]ClientLink, error)
	Save(ctx context.Context, l *ClientLink) error
	Delete(ctx context.Context, id uuid.UUID) error
}
