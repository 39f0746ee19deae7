package messaging

import (
	"context"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Template is a reusable message with placeholders, reference data for the
// substitution engine.
type Template struct {
	shared.BaseEntity
	Name        string
	Content     string
	Category    string
	Description string
	IsDefault   bool
}

// NewTemplate creates a message template
func NewTemplate(name, content, category string) (*Template, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Template content cannot be empty")
	}

	return &Template{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Content:    content,
		Category:   category,
	}, nil
}

// Update replaces the template's editable fields
func (t *Template) Update(name, content, category, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Template content cannot be empty")
	}
	t.Name = name
	t.Content = content
	t.Category = category
	t.Description = description
	t.UpdatedAt = time.Now()
	return nil
}

// SetDefault marks or unmarks the template as the category default
func (t *Template) SetDefault(isDefault bool) {
	t.IsDefault = isDefault
	t.UpdatedAt = time.Now()
}

// TemplateRepository defines the interface for template persistence
type TemplateRepository interface {
	// FindByID finds a template by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Template, error)

	// FindAll finds templates matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Template, error)

	// FindByCategory lists templates in a category
	FindByCategory(ctx context.Context, category string) ([]Template, error)

	// Save creates or updates a template
	Save(ctx context.Context, t *Template) error

	// Delete removes a template
	Delete(ctx context.Context, id uuid.UUID) error
}
