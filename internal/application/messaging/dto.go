package messaging

import (
	"time"

	"github.com/agency/backend/internal/domain/messaging"
	"github.com/google/uuid"
)

// =============================================================================
// Template DTOs
// =============================================================================

// CreateTemplateRequest represents a request to create a message template
type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Content     string `json:"content" binding:"required,min=1"`
	Category    string `json:"category" binding:"max=50"`
	Description string `json:"description" binding:"max=500"`
	IsDefault   bool   `json:"is_default"`
}

// UpdateTemplateRequest represents a template update
type UpdateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Content     string `json:"content" binding:"required,min=1"`
	Category    string `json:"category" binding:"max=50"`
	Description string `json:"description" binding:"max=500"`
	IsDefault   *bool  `json:"is_default"`
}

// TemplateResponse represents a template in API responses
type TemplateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTemplateResponse converts a domain template to a response DTO
func ToTemplateResponse(t *messaging.Template) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Content:     t.Content,
		Category:    t.Category,
		Description: t.Description,
		IsDefault:   t.IsDefault,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// =============================================================================
// Bulk send DTOs
// =============================================================================

// BulkSendRequest selects recipients and the message to expand for each.
// Either a template id or raw content must be given; filters compose with
// AND semantics, and no filters means every client.
type BulkSendRequest struct {
	TemplateID   *uuid.UUID  `json:"template_id"`
	Content      string      `json:"content"`
	ClientIDs    []uuid.UUID `json:"client_ids"`
	PaymentDay   *int        `json:"payment_day" binding:"omitempty,min=1,max=31"`
	NameContains string      `json:"name_contains"`
	OnlyUnpaid   bool        `json:"only_unpaid"`
}

// BulkMessage is one prepared outbound message
type BulkMessage struct {
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	URL        string    `json:"url"`
}

// BulkSendResponse reports the prepared batch. Recipients without a usable
// phone are listed in skipped and get no URL.
type BulkSendResponse struct {
	Messages []BulkMessage `json:"messages"`
	Sent     int           `json:"sent"`
	Skipped  []string      `json:"skipped"`
}

// PreviewRequest expands a template for one client without sending
type PreviewRequest struct {
	TemplateID *uuid.UUID `json:"template_id"`
	Content    string     `json:"content"`
	ClientID   uuid.UUID  `json:"client_id" binding:"required"`
}

// PreviewResponse is the expanded message for one client
type PreviewResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
