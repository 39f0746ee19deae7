package publication

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Type classifies the content format of a publication
type Type string

const (
	TypeReel     Type = "reel"
	TypeCarousel Type = "carousel"
	TypeImage    Type = "image"
)

// Link is a labeled URL attached to a publication. The list is stored as a
// JSON-encoded string in a single column.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Publication is the aggregate root for a calendar entry
type Publication struct {
	shared.BaseAggregateRoot
	ClientID    uuid.UUID
	PackageID   *uuid.UUID
	Name        string
	Type        Type
	Date        time.Time
	Description string
	Copywriting string
	Designer    string
	Links       []Link
	Status      Status
	DeletedAt   *time.Time

	// Remote calendar linkage, empty when the publication was never synced
	CalendarEventID string
	CalendarID      string
}

// New creates a publication in the initial pipeline stage
func New(clientID uuid.UUID, name string, pubType Type, date time.Time) (*Publication, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateType(pubType); err != nil {
		return nil, err
	}

	p := &Publication{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		Name:              name,
		Type:              pubType,
		Date:              date,
		Status:            StatusNeedsRecording,
	}

	p.AddDomainEvent(NewPublicationCreatedEvent(p))

	return p, nil
}

// SetStatus moves the publication to the given pipeline stage. Any stage is
// reachable from any other; published is terminal by convention only.
func (p *Publication) SetStatus(status Status) error {
	if !ValidStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown publication status")
	}

	old := p.Status
	p.Status = status
	p.UpdatedAt = time.Now()

	if old != status {
		p.AddDomainEvent(NewPublicationStatusChangedEvent(p, old, status))
	}

	return nil
}

// Flags returns the six-column storage representation of the current stage
func (p *Publication) Flags() StatusFlags {
	flags, _ := p.Status.Flags()
	return flags
}

// Apply merges a patch, touching only the fields present
func (p *Publication) Apply(patch Patch) error {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Type != nil {
		if err := validateType(*patch.Type); err != nil {
			return err
		}
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Copywriting != nil {
		p.Copywriting = *patch.Copywriting
	}
	if patch.Designer != nil {
		p.Designer = *patch.Designer
	}
	if patch.Links != nil {
		p.Links = *patch.Links
	}
	if patch.PackageID != nil {
		p.PackageID = *patch.PackageID
	}
	p.UpdatedAt = time.Now()

	return nil
}

// Patch enumerates every publication field that may be partially updated
type Patch struct {
	Name        *string
	Type        *Type
	Date        *time.Time
	Description *string
	Copywriting *string
	Designer    *string
	Links       *[]Link
	PackageID   **uuid.UUID
}

// AttachCalendarEvent records the remote calendar linkage after a sync
func (p *Publication) AttachCalendarEvent(calendarID, eventID string) {
	p.CalendarID = calendarID
	p.CalendarEventID = eventID
	p.UpdatedAt = time.Now()
}

// DetachCalendarEvent clears the remote calendar linkage
func (p *Publication) DetachCalendarEvent() {
	p.CalendarID = ""
	p.CalendarEventID = ""
	p.UpdatedAt = time.Now()
}

// HasCalendarEvent reports whether a remote calendar event is linked
func (p *Publication) HasCalendarEvent() bool {
	return p.CalendarEventID != ""
}

// IsDeleted reports whether the publication is in the trash
func (p *Publication) IsDeleted() bool {
	return p.DeletedAt != nil
}

// MarkDeleted moves the publication to the trash
func (p *Publication) MarkDeleted(at time.Time) {
	p.DeletedAt = &at
	p.UpdatedAt = time.Now()
	p.AddDomainEvent(NewPublicationDeletedEvent(p))
}

// Restore takes the publication out of the trash
func (p *Publication) Restore() {
	p.DeletedAt = nil
	p.UpdatedAt = time.Now()
	p.AddDomainEvent(NewPublicationRestoredEvent(p))
}

// EncodeLinks serializes the link list for storage. An empty list encodes as
// an empty JSON array so older readers always get valid JSON.
func EncodeLinks(links []Link) (string, error) {
	if links == nil {
		links = []Link{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeLinks parses the stored link list. Empty input decodes to nil.
func DecodeLinks(raw string) ([]Link, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var links []Link
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, shared.NewDomainError("INVALID_LINKS", "Stored links are not valid JSON")
	}
	return links, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Publication name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Publication name cannot exceed 200 characters")
	}
	return nil
}

func validateType(t Type) error {
	switch t {
	case TypeReel, TypeCarousel, TypeImage:
		return nil
	}
	return shared.NewDomainError("INVALID_TYPE", "Publication type must be 'reel', 'carousel' or 'image'")
}
