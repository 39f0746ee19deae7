package publication

import (
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypePublication = "Publication"

// Event type constants
const (
	EventTypePublicationCreated       = "PublicationCreated"
	EventTypePublicationStatusChanged = "PublicationStatusChanged"
	EventTypePublicationDeleted       = "PublicationDeleted"
	EventTypePublicationRestored      = "PublicationRestored"
)

// PublicationCreatedEvent is published when a calendar entry is created
type PublicationCreatedEvent struct {
	shared.BaseDomainEvent
	PublicationID uuid.UUID `json:"publication_id"`
	ClientID      uuid.UUID `json:"client_id"`
	Name          string    `json:"name"`
	Type          Type      `json:"type"`
}

// NewPublicationCreatedEvent creates a new PublicationCreatedEvent
func NewPublicationCreatedEvent(p *Publication) *PublicationCreatedEvent {
	return &PublicationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePublicationCreated, AggregateTypePublication, p.ID),
		PublicationID:   p.ID,
		ClientID:        p.ClientID,
		Name:            p.Name,
		Type:            p.Type,
	}
}

// PublicationStatusChangedEvent is published when a publication moves stage
type PublicationStatusChangedEvent struct {
	shared.BaseDomainEvent
	PublicationID uuid.UUID `json:"publication_id"`
	ClientID      uuid.UUID `json:"client_id"`
	OldStatus     Status    `json:"old_status"`
	NewStatus     Status    `json:"new_status"`
}

// NewPublicationStatusChangedEvent creates a new PublicationStatusChangedEvent
func NewPublicationStatusChangedEvent(p *Publication, old, new Status) *PublicationStatusChangedEvent {
	return &PublicationStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePublicationStatusChanged, AggregateTypePublication, p.ID),
		PublicationID:   p.ID,
		ClientID:        p.ClientID,
		OldStatus:       old,
		NewStatus:       new,
	}
}

// PublicationDeletedEvent is published when a publication is trashed
type PublicationDeletedEvent struct {
	shared.BaseDomainEvent
	PublicationID uuid.UUID `json:"publication_id"`
	ClientID      uuid.UUID `json:"client_id"`
}

// NewPublicationDeletedEvent creates a new PublicationDeletedEvent
func NewPublicationDeletedEvent(p *Publication) *PublicationDeletedEvent {
	return &PublicationDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePublicationDeleted, AggregateTypePublication, p.ID),
		PublicationID:   p.ID,
		ClientID:        p.ClientID,
	}
}

// PublicationRestoredEvent is published when a publication leaves the trash
type PublicationRestoredEvent struct {
	shared.BaseDomainEvent
	PublicationID uuid.UUID `json:"publication_id"`
	ClientID      uuid.UUID `json:"client_id"`
}

// NewPublicationRestoredEvent creates a new PublicationRestoredEvent
func NewPublicationRestoredEvent(p *Publication) *PublicationRestoredEvent {
	return &PublicationRestoredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePublicationRestored, AggregateTypePublication, p.ID),
		PublicationID:   p.ID,
		ClientID:        p.ClientID,
	}
}
