package client

import (
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeClient = "Client"

// Event type constants
const (
	EventTypeClientCreated    = "ClientCreated"
	EventTypeClientUpdated    = "ClientUpdated"
	EventTypeClientDeleted    = "ClientDeleted"
	EventTypePackageAdded     = "PackageAdded"
	EventTypePackageRemoved   = "PackageRemoved"
	EventTypePackageCompleted = "PackageCompleted"
)

// ClientCreatedEvent is published when a new client is created
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID   uuid.UUID `json:"client_id"`
	Name       string    `json:"name"`
	PaymentDay int       `json:"payment_day"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(c *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, c.ID),
		ClientID:        c.ID,
		Name:            c.Name,
		PaymentDay:      c.PaymentDay,
	}
}

// ClientUpdatedEvent is published when a client's fields change
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(c *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, c.ID),
		ClientID:        c.ID,
		Name:            c.Name,
	}
}

// PackageAddedEvent is published when a package is attached to a client
type PackageAddedEvent struct {
	shared.BaseDomainEvent
	ClientID          uuid.UUID `json:"client_id"`
	PackageID         uuid.UUID `json:"package_id"`
	PackageName       string    `json:"package_name"`
	TotalPublications int       `json:"total_publications"`
}

// NewPackageAddedEvent creates a new PackageAddedEvent
func NewPackageAddedEvent(c *Client, pkg *Package) *PackageAddedEvent {
	return &PackageAddedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypePackageAdded, AggregateTypeClient, c.ID),
		ClientID:          c.ID,
		PackageID:         pkg.ID,
		PackageName:       pkg.Name,
		TotalPublications: pkg.TotalPublications,
	}
}

// PackageRemovedEvent is published when a package is removed from a client
type PackageRemovedEvent struct {
	shared.BaseDomainEvent
	ClientID    uuid.UUID `json:"client_id"`
	PackageID   uuid.UUID `json:"package_id"`
	PackageName string    `json:"package_name"`
}

// NewPackageRemovedEvent creates a new PackageRemovedEvent
func NewPackageRemovedEvent(c *Client, packageID uuid.UUID, packageName string) *PackageRemovedEvent {
	return &PackageRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePackageRemoved, AggregateTypeClient, c.ID),
		ClientID:        c.ID,
		PackageID:       packageID,
		PackageName:     packageName,
	}
}

// PackageCompletedEvent is published once, when the package's used counter
// reaches its capacity
type PackageCompletedEvent struct {
	shared.BaseDomainEvent
	ClientID          uuid.UUID `json:"client_id"`
	ClientName        string    `json:"client_name"`
	PackageID         uuid.UUID `json:"package_id"`
	PackageName       string    `json:"package_name"`
	TotalPublications int       `json:"total_publications"`
}

// NewPackageCompletedEvent creates a new PackageCompletedEvent
func NewPackageCompletedEvent(c *Client, pkg *Package) *PackageCompletedEvent {
	return &PackageCompletedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypePackageCompleted, AggregateTypeClient, c.ID),
		ClientID:          c.ID,
		ClientName:        c.Name,
		PackageID:         pkg.ID,
		PackageName:       pkg.Name,
		TotalPublications: pkg.TotalPublications,
	}
}
