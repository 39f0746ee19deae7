package importapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/publication"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DraftRow is one publication proposed by the extractor, before validation.
// Client and type are plain strings because the model returns free text.
type DraftRow struct {
	ClientName  string    `json:"client_name"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Copywriting string    `json:"copywriting"`
}

// Extractor turns free-form planning text into draft publication rows.
// Implementations live in infrastructure.
type Extractor interface {
	ExtractPublications(ctx context.Context, text string) ([]DraftRow, error)
}

// RowError is a validation problem on one draft row
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ExtractRequest carries the raw text to run through the extractor
type ExtractRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// ExtractResponse returns the drafts together with their validation report.
// Valid is true only when every row passed; a batch with any error cannot be
// committed.
type ExtractResponse struct {
	Rows   []DraftRow `json:"rows"`
	Errors []RowError `json:"errors"`
	Valid  bool       `json:"valid"`
}

// CommitRequest saves a previously reviewed batch of drafts
type CommitRequest struct {
	Rows []DraftRow `json:"rows" binding:"required,min=1"`
}

// CommitResponse reports how many publications were created
type CommitResponse struct {
	Created int         `json:"created"`
	IDs     []uuid.UUID `json:"ids"`
}

// PublicationImportService runs the AI-assisted bulk import: extract drafts
// from pasted planning text, validate every row against real clients and the
// publication rules, and only then create anything. One bad row blocks the
// whole batch; a partial import would be worse than none.
type PublicationImportService struct {
	extractor  Extractor
	clientRepo client.Repository
	pubRepo    publication.Repository
}

// NewPublicationImportService creates a new PublicationImportService
func NewPublicationImportService(extractor Extractor, clientRepo client.Repository, pubRepo publication.Repository) *PublicationImportService {
	return &PublicationImportService{
		extractor:  extractor,
		clientRepo: clientRepo,
		pubRepo:    pubRepo,
	}
}

// Extract runs the extractor over the pasted text and validates the result.
// Nothing is persisted; the caller reviews the drafts and commits separately.
func (s *PublicationImportService) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	if s.extractor == nil {
		return nil, shared.NewDomainError("EXTRACTOR_UNAVAILABLE", "No extraction provider is configured")
	}

	rows, err := s.extractor.ExtractPublications(ctx, req.Text)
	if err != nil {
		return nil, shared.NewDomainError("EXTRACTION_FAILED", "Could not extract publications from the text")
	}

	errors, err := s.validateAll(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &ExtractResponse{
		Rows:   rows,
		Errors: errors,
		Valid:  len(errors) == 0,
	}, nil
}

// Commit validates the reviewed batch again and creates every publication.
// Validation runs on the full batch before the first insert: either all
// rows go in or none do.
func (s *PublicationImportService) Commit(ctx context.Context, req CommitRequest) (*CommitResponse, error) {
	errors, err := s.validateAll(ctx, req.Rows)
	if err != nil {
		return nil, err
	}
	if len(errors) > 0 {
		return nil, shared.NewDomainError("VALIDATION_ERRORS", fmt.Sprintf("Batch has %d invalid rows", countRows(errors)))
	}

	resp := &CommitResponse{IDs: make([]uuid.UUID, 0, len(req.Rows))}
	for _, row := range req.Rows {
		c, err := s.resolveClient(ctx, row.ClientName)
		if err != nil {
			return resp, err
		}

		p, err := publication.New(c.ID, row.Name, publication.Type(normalizeType(row.Type)), row.Date)
		if err != nil {
			return resp, err
		}
		p.Description = row.Description
		p.Copywriting = row.Copywriting

		if err := s.pubRepo.Save(ctx, p); err != nil {
			return resp, err
		}
		p.ClearDomainEvents()

		resp.Created++
		resp.IDs = append(resp.IDs, p.ID)
	}

	return resp, nil
}

// validateAll checks every row and returns the full error list. It never
// stops at the first problem so the user sees the whole report at once.
func (s *PublicationImportService) validateAll(ctx context.Context, rows []DraftRow) ([]RowError, error) {
	var errs []RowError
	for i, row := range rows {
		n := i + 1

		if strings.TrimSpace(row.Name) == "" {
			errs = append(errs, RowError{Row: n, Field: "name", Message: "name is required"})
		}
		if normalizeType(row.Type) == "" {
			errs = append(errs, RowError{Row: n, Field: "type", Message: "type must be 'reel', 'carousel' or 'image'"})
		}
		if row.Date.IsZero() {
			errs = append(errs, RowError{Row: n, Field: "date", Message: "date is required"})
		}

		if strings.TrimSpace(row.ClientName) == "" {
			errs = append(errs, RowError{Row: n, Field: "client_name", Message: "client name is required"})
			continue
		}
		c, err := s.resolveClient(ctx, row.ClientName)
		if err != nil {
			return nil, err
		}
		if c == nil {
			errs = append(errs, RowError{Row: n, Field: "client_name", Message: fmt.Sprintf("no client matches %q", row.ClientName)})
		}
	}
	return errs, nil
}

// resolveClient matches a free-text client name against the stored clients,
// case-insensitively. Returns nil when nothing matches.
func (s *PublicationImportService) resolveClient(ctx context.Context, name string) (*client.Client, error) {
	f := shared.DefaultFilter()
	f.PageSize = 1000
	clients, err := s.clientRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range clients {
		if strings.ToLower(clients[i].Name) == needle {
			return &clients[i], nil
		}
	}
	return nil, nil
}

// normalizeType maps the model's free-text type to a canonical one, or ""
func normalizeType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "reel", "video":
		return string(publication.TypeReel)
	case "carousel", "carrusel":
		return string(publication.TypeCarousel)
	case "image", "imagen", "foto":
		return string(publication.TypeImage)
	}
	return ""
}

// countRows counts distinct row numbers in an error list
func countRows(errs []RowError) int {
	seen := make(map[int]struct{}, len(errs))
	for _, e := range errs {
		seen[e.Row] = struct{}{}
	}
	return len(seen)
}
