package publication

import (
	"time"

	"github.com/agency/backend/internal/domain/publication"
	"github.com/google/uuid"
)

// =============================================================================
// Publication DTOs
// =============================================================================

// LinkDTO is one labeled URL attached to a publication
type LinkDTO struct {
	Label string `json:"label" binding:"max=100"`
	URL   string `json:"url" binding:"required,max=1000"`
}

// CreatePublicationRequest represents a request to create a publication
type CreatePublicationRequest struct {
	ClientID       uuid.UUID  `json:"client_id" binding:"required"`
	PackageID      *uuid.UUID `json:"package_id"`
	Name           string     `json:"name" binding:"required,min=1,max=200"`
	Type           string     `json:"type" binding:"required,oneof=reel carousel image"`
	Date           time.Time  `json:"date" binding:"required"`
	Description    string     `json:"description"`
	Copywriting    string     `json:"copywriting"`
	Designer       string     `json:"designer" binding:"max=100"`
	Links          []LinkDTO  `json:"links"`
	SyncToCalendar bool       `json:"sync_to_calendar"`
}

// UpdatePublicationRequest represents a partial update. The package link can
// be set, changed or cleared; clear_package wins over package_id.
type UpdatePublicationRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Type         *string    `json:"type" binding:"omitempty,oneof=reel carousel image"`
	Date         *time.Time `json:"date"`
	Description  *string    `json:"description"`
	Copywriting  *string    `json:"copywriting"`
	Designer     *string    `json:"designer" binding:"omitempty,max=100"`
	Links        *[]LinkDTO `json:"links"`
	PackageID    *uuid.UUID `json:"package_id"`
	ClearPackage bool       `json:"clear_package"`
}

// SetStatusRequest moves a publication to a pipeline stage
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=needs_recording needs_editing in_editing in_review approved published"`
}

// PublicationListFilter represents filter options for the publication list
type PublicationListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	From     *time.Time `form:"from"`
	To       *time.Time `form:"to"`
	Status   string     `form:"status" binding:"omitempty,oneof=needs_recording needs_editing in_editing in_review approved published"`
	Search   string     `form:"search"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PublicationResponse represents a publication in API responses
type PublicationResponse struct {
	ID              uuid.UUID               `json:"id"`
	ClientID        uuid.UUID               `json:"client_id"`
	PackageID       *uuid.UUID              `json:"package_id"`
	Name            string                  `json:"name"`
	Type            string                  `json:"type"`
	Date            time.Time               `json:"date"`
	Description     string                  `json:"description"`
	Copywriting     string                  `json:"copywriting"`
	Designer        string                  `json:"designer"`
	Links           []LinkDTO               `json:"links"`
	Status          string                  `json:"status"`
	StatusFlags     publication.StatusFlags `json:"status_flags"`
	CalendarEventID string                  `json:"calendar_event_id,omitempty"`
	DeletedAt       *time.Time              `json:"deleted_at,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	Version         int                     `json:"version"`
}

// =============================================================================
// Note DTOs
// =============================================================================

// CreateNoteRequest represents a request to add a note to a publication
type CreateNoteRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// UpdateNoteRequest represents a note update
type UpdateNoteRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1"`
	Status  *string `json:"status" binding:"omitempty,oneof=new done received"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID            uuid.UUID `json:"id"`
	PublicationID uuid.UUID `json:"publication_id"`
	Content       string    `json:"content"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToPublicationResponse converts a domain publication to a response DTO
func ToPublicationResponse(p *publication.Publication) PublicationResponse {
	links := make([]LinkDTO, 0, len(p.Links))
	for _, l := range p.Links {
		links = append(links, LinkDTO{Label: l.Label, URL: l.URL})
	}

	return PublicationResponse{
		ID:              p.ID,
		ClientID:        p.ClientID,
		PackageID:       p.PackageID,
		Name:            p.Name,
		Type:            string(p.Type),
		Date:            p.Date,
		Description:     p.Description,
		Copywriting:     p.Copywriting,
		Designer:        p.Designer,
		Links:           links,
		Status:          string(p.Status),
		StatusFlags:     p.Flags(),
		CalendarEventID: p.CalendarEventID,
		DeletedAt:       p.DeletedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Version:         p.Version,
	}
}

// ToNoteResponse converts a domain note to a response DTO
func ToNoteResponse(n *publication.Note) NoteResponse {
	return NoteResponse{
		ID:            n.ID,
		PublicationID: n.PublicationID,
		Content:       n.Content,
		Status:        string(n.Status),
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toDomainLinks(dtos []LinkDTO) []publication.Link {
	links := make([]publication.Link, 0, len(dtos))
	for _, l := range dtos {
		links = append(links, publication.Link{Label: l.Label, URL: l.URL})
	}
	return links
}
