package directory

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/directory"
	"github.com/google/uuid"
)

// DesignerRequest creates or renames a designer
type DesignerRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Active *bool  `json:"active"`
}

// DesignerResponse represents a designer in API responses
type DesignerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientLinkRequest creates or updates a labeled URL for a client
type ClientLinkRequest struct {
	Label string `json:"label" binding:"required,min=1,max=100"`
	URL   string `json:"url" binding:"required,min=1,max=1000"`
}

// ClientLinkResponse represents a client link in API responses
type ClientLinkResponse struct {
	ID       uuid.UUID `json:"id"`
	ClientID uuid.UUID `json:"client_id"`
	Label    string    `json:"label"`
	URL      string    `json:"url"`
}

// DirectoryService handles designers and per-client link collections,
// reference data used by the publication editor.
type DirectoryService struct {
	designerRepo directory.DesignerRepository
	linkRepo     directory.ClientLinkRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(designerRepo directory.DesignerRepository, linkRepo directory.ClientLinkRepository) *DirectoryService {
	return &DirectoryService{
		designerRepo: designerRepo,
		linkRepo:     linkRepo,
	}
}

// CreateDesigner adds a designer
func (s *DirectoryService) CreateDesigner(ctx context.Context, req DesignerRequest) (*DesignerResponse, error) {
	d, err := directory.NewDesigner(req.Name)
	if err != nil {
		return nil, err
	}
	if req.Active != nil {
		d.SetActive(*req.Active)
	}

	if err := s.designerRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	response := toDesignerResponse(d)
	return &response, nil
}

// ListDesigners lists all designers
func (s *DirectoryService) ListDesigners(ctx context.Context) ([]DesignerResponse, error) {
	designers, err := s.designerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]DesignerResponse, 0, len(designers))
	for i := range designers {
		items = append(items, toDesignerResponse(&designers[i]))
	}
	return items, nil
}

// UpdateDesigner renames a designer or toggles its availability
func (s *DirectoryService) UpdateDesigner(ctx context.Context, id uuid.UUID, req DesignerRequest) (*DesignerResponse, error) {
	d, err := s.designerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.Rename(req.Name); err != nil {
		return nil, err
	}
	if req.Active != nil {
		d.SetActive(*req.Active)
	}

	if err := s.designerRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	response := toDesignerResponse(d)
	return &response, nil
}

// DeleteDesigner removes a designer
func (s *DirectoryService) DeleteDesigner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.designerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.designerRepo.Delete(ctx, id)
}

// AddClientLink stores a labeled URL against a client
func (s *DirectoryService) AddClientLink(ctx context.Context, clientID uuid.UUID, req ClientLinkRequest) (*ClientLinkResponse, error) {
	l, err := directory.NewClientLink(clientID, req.Label, req.URL)
	if err != nil {
		return nil, err
	}

	if err := s.linkRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	response := toClientLinkResponse(l)
	return &response, nil
}

// ListClientLinks lists a client's stored links
func (s *DirectoryService) ListClientLinks(ctx context.Context, clientID uuid.UUID) ([]ClientLinkResponse, error) {
	links, err := s.linkRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	items := make([]ClientLinkResponse, 0, len(links))
	for i := range links {
		items = append(items, toClientLinkResponse(&links[i]))
	}
	return items, nil
}

// UpdateClientLink replaces a link's label and URL
func (s *DirectoryService) UpdateClientLink(ctx context.Context, id uuid.UUID, req ClientLinkRequest) (*ClientLinkResponse, error) {
	l, err := s.linkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.Update(req.Label, req.URL); err != nil {
		return nil, err
	}

	if err := s.linkRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	response := toClientLinkResponse(l)
	return &response, nil
}

// DeleteClientLink removes a stored link
func (s *DirectoryService) DeleteClientLink(ctx context.Context, id uuid.UUID) error {
	if _, err := s.linkRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.linkRepo.Delete(ctx, id)
}

func toDesignerResponse(d *directory.Designer) DesignerResponse {
	return DesignerResponse{
		ID:        d.ID,
		Name:      d.Name,
		Active:    d.Active,
		UpdatedAt: d.UpdatedAt,
	}
}

func toClientLinkResponse(l *directory.ClientLink) ClientLinkResponse {
	return ClientLinkResponse{
		ID:       l.ID,
		ClientID: l.ClientID,
		Label:    l.Label,
		URL:      l.URL,
	}
}
