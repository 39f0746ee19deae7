package messaging

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/client"
	"github.com/agency/backend/internal/domain/messaging"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MessagingService handles message templates and bulk WhatsApp batches.
// Sending never leaves the backend: the service prepares one wa.me URL per
// recipient and the browser does the rest.
type MessagingService struct {
	templateRepo messaging.TemplateRepository
	clientRepo   client.Repository
	countryCode  string
	now          func() time.Time
}

// NewMessagingService creates a new MessagingService. countryCode, when not
// empty, is prefixed to phones stored without one before building links.
func NewMessagingService(templateRepo messaging.TemplateRepository, clientRepo client.Repository, countryCode string) *MessagingService {
	return &MessagingService{
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		countryCode:  countryCode,
		now:          time.Now,
	}
}

// =============================================================================
// Templates
// =============================================================================

// CreateTemplate creates a message template
func (s *MessagingService) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	t, err := messaging.NewTemplate(req.Name, req.Content, req.Category)
	if err != nil {
		return nil, err
	}
	t.Description = req.Description
	t.SetDefault(req.IsDefault)

	if err := s.templateRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToTemplateResponse(t)
	return &response, nil
}

// ListTemplates lists templates, optionally narrowed to one category
func (s *MessagingService) ListTemplates(ctx context.Context, category string) ([]TemplateResponse, error) {
	var (
		templates []messaging.Template
		err       error
	)
	if category != "" {
		templates, err = s.templateRepo.FindByCategory(ctx, category)
	} else {
		templates, err = s.templateRepo.FindAll(ctx, shared.DefaultFilter())
	}
	if err != nil {
		return nil, err
	}

	items := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		items = append(items, ToTemplateResponse(&templates[i]))
	}
	return items, nil
}

// UpdateTemplate replaces a template's editable fields
func (s *MessagingService) UpdateTemplate(ctx context.Context, id uuid.UUID, req UpdateTemplateRequest) (*TemplateResponse, error) {
	t, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.Update(req.Name, req.Content, req.Category, req.Description); err != nil {
		return nil, err
	}
	if req.IsDefault != nil {
		t.SetDefault(*req.IsDefault)
	}

	if err := s.templateRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	response := ToTemplateResponse(t)
	return &response, nil
}

// DeleteTemplate removes a template
func (s *MessagingService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.templateRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.templateRepo.Delete(ctx, id)
}

// =============================================================================
// Bulk send
// =============================================================================

// BulkSend prepares one expanded message and wa.me URL per selected client.
// Clients without a usable phone are skipped and reported by name. An empty
// recipient set after filtering is an error, not an empty batch.
func (s *MessagingService) BulkSend(ctx context.Context, req BulkSendRequest) (*BulkSendResponse, error) {
	content, err := s.resolveContent(ctx, req.TemplateID, req.Content)
	if err != nil {
		return nil, err
	}

	clients, err := s.loadRecipients(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, shared.ErrNoRecipients
	}

	now := s.now()
	resp := &BulkSendResponse{
		Messages: make([]BulkMessage, 0, len(clients)),
		Skipped:  make([]string, 0),
	}
	for i := range clients {
		c := &clients[i]
		message := messaging.Process(content, c, now)
		link := messaging.WhatsAppURL(messaging.NormalizePhone(c.Phone, s.countryCode), message)
		if link == "" {
			resp.Skipped = append(resp.Skipped, c.Name)
			continue
		}
		resp.Messages = append(resp.Messages, BulkMessage{
			ClientID:   c.ID,
			ClientName: c.Name,
			Phone:      c.Phone,
			Message:    message,
			URL:        link,
		})
	}
	resp.Sent = len(resp.Messages)

	return resp, nil
}

// Preview expands the message for a single client without building a batch
func (s *MessagingService) Preview(ctx context.Context, req PreviewRequest) (*PreviewResponse, error) {
	content, err := s.resolveContent(ctx, req.TemplateID, req.Content)
	if err != nil {
		return nil, err
	}

	c, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	message := messaging.Process(content, c, s.now())
	return &PreviewResponse{
		Message: message,
		URL:     messaging.WhatsAppURL(messaging.NormalizePhone(c.Phone, s.countryCode), message),
	}, nil
}

// resolveContent picks the message body: a stored template when an id is
// given, raw content otherwise
func (s *MessagingService) resolveContent(ctx context.Context, templateID *uuid.UUID, content string) (string, error) {
	if templateID != nil {
		t, err := s.templateRepo.FindByID(ctx, *templateID)
		if err != nil {
			return "", err
		}
		return t.Content, nil
	}
	if content == "" {
		return "", shared.NewDomainError("INVALID_CONTENT", "Either a template or message content is required")
	}
	return content, nil
}

// loadRecipients loads all clients and narrows them with the request filters
func (s *MessagingService) loadRecipients(ctx context.Context, req BulkSendRequest) ([]client.Client, error) {
	f := shared.DefaultFilter()
	f.PageSize = 1000
	clients, err := s.clientRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	var predicates []messaging.RecipientPredicate
	if len(req.ClientIDs) > 0 {
		predicates = append(predicates, messaging.SelectedSet(req.ClientIDs))
	}
	if req.PaymentDay != nil {
		predicates = append(predicates, messaging.PaymentDayIs(*req.PaymentDay))
	}
	if req.NameContains != "" {
		predicates = append(predicates, messaging.NameContains(req.NameContains))
	}
	if req.OnlyUnpaid {
		predicates = append(predicates, messaging.HasUnpaidPackage())
	}

	return messaging.FilterRecipients(clients, predicates...), nil
}
