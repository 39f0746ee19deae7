package notification

import (
	"context"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Kind classifies a notification for display
type Kind string

const (
	KindInfo     Kind = "info"
	KindSuccess  Kind = "success"
	KindWarning  Kind = "warning"
	KindError    Kind = "error"
	KindReminder Kind = "reminder"
)

// Notification is a stored outcome message. Rows double as the
// cache-invalidation signal for connected clients: a change on this table
// tells them to re-fetch, it is not a data source.
type Notification struct {
	shared.BaseEntity
	Kind    Kind
	Title   string
	Body    string
	Read    bool
	ReadAt  *time.Time
	RefType string
	RefID   *uuid.UUID
}

// New creates an unread notification
func New(kind Kind, title, body string) (*Notification, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}

	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		Kind:       kind,
		Title:      title,
		Body:       body,
	}, nil
}

// SetRef links the notification to the entity it is about
func (n *Notification) SetRef(refType string, refID uuid.UUID) {
	n.RefType = refType
	n.RefID = &refID
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead(at time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &at
	n.UpdatedAt = time.Now()
}

// Dispatcher is the single funnel for user-facing outcomes. Every component
// reports through it instead of emitting ad hoc toasts, which keeps the emit
// points auditable.
type Dispatcher interface {
	// Dispatch stores and broadcasts a notification. Dispatch failures are
	// logged, never propagated: an outcome report must not fail the
	// operation it reports on.
	Dispatch(ctx context.Context, n *Notification)
}

// Repository defines notification persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Notification, error)
	FindUnread(ctx context.Context) ([]Notification, error)
	Save(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
}
