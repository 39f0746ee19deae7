package notification

import (
	"context"
	"time"

	"github.com/agency/backend/internal/domain/notification"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationResponse represents a stored notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	RefType   string     `json:"ref_type,omitempty"`
	RefID     *uuid.UUID `json:"ref_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToNotificationResponse converts a domain notification to a response DTO
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		ReadAt:    n.ReadAt,
		RefType:   n.RefType,
		RefID:     n.RefID,
		CreatedAt: n.CreatedAt,
	}
}

// NotificationService exposes the stored notification feed
type NotificationService struct {
	repo notification.Repository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo notification.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

// List retrieves recent notifications
func (s *NotificationService) List(ctx context.Context, unreadOnly bool) ([]NotificationResponse, error) {
	var (
		items []notification.Notification
		err   error
	)
	if unreadOnly {
		items, err = s.repo.FindUnread(ctx)
	} else {
		items, err = s.repo.FindAll(ctx, shared.DefaultFilter())
	}
	if err != nil {
		return nil, err
	}

	out := make([]NotificationResponse, 0, len(items))
	for i := range items {
		out = append(out, ToNotificationResponse(&items[i]))
	}
	return out, nil
}

// MarkRead marks one notification as read. Already-read rows are a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.MarkRead(time.Now())
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// MarkAllRead marks every unread notification as read
func (s *NotificationService) MarkAllRead(ctx context.Context) (int, error) {
	unread, err := s.repo.FindUnread(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for i := range unread {
		n := &unread[i]
		n.MarkRead(now)
		if err := s.repo.Save(ctx, n); err != nil {
			return i, err
		}
	}
	return len(unread), nil
}

// Delete removes a notification from the feed
func (s *NotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
