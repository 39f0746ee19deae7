package models

import (
	"time"

	"github.com/agency/backend/internal/domain/publication"
	"github.com/google/uuid"
)

// PublicationModel is the persistence model for the Publication aggregate
// root. The pipeline stage is stored as six boolean columns; the columns are
// only ever written from publication.Status.Flags, so at most one is true.
// Reads run the flags through Status anyway, which repairs rows older tools
// may have left with more than one flag set.
type PublicationModel struct {
	AggregateModel
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	PackageID   *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Date        time.Time  `gorm:"not null;index"`
	Description string     `gorm:"type:text"`
	Copywriting string     `gorm:"type:text"`
	Designer    string     `gorm:"type:varchar(100)"`
	Links       string     `gorm:"type:text"`

	NeedsRecording bool `gorm:"not null;default:false"`
	NeedsEditing   bool `gorm:"not null;default:false"`
	InEditing      bool `gorm:"not null;default:false"`
	InReview       bool `gorm:"not null;default:false"`
	Approved       bool `gorm:"not null;default:false"`
	IsPublished    bool `gorm:"not null;default:false"`

	CalendarEventID string     `gorm:"type:varchar(200)"`
	CalendarID      string     `gorm:"type:varchar(200)"`
	DeletedAt       *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (PublicationModel) TableName() string {
	return "publications"
}

// ToDomain converts the persistence model to a domain Publication.
func (m *PublicationModel) ToDomain() (*publication.Publication, error) {
	links, err := publication.DecodeLinks(m.Links)
	if err != nil {
		return nil, err
	}

	flags := publication.StatusFlags{
		NeedsRecording: m.NeedsRecording,
		NeedsEditing:   m.NeedsEditing,
		InEditing:      m.InEditing,
		InReview:       m.InReview,
		Approved:       m.Approved,
		IsPublished:    m.IsPublished,
	}

	p := &publication.Publication{
		ClientID:        m.ClientID,
		PackageID:       m.PackageID,
		Name:            m.Name,
		Type:            publication.Type(m.Type),
		Date:            m.Date,
		Description:     m.Description,
		Copywriting:     m.Copywriting,
		Designer:        m.Designer,
		Links:           links,
		Status:          flags.Status(),
		DeletedAt:       m.DeletedAt,
		CalendarEventID: m.CalendarEventID,
		CalendarID:      m.CalendarID,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p, nil
}

// FromDomain populates the persistence model from a domain Publication.
func (m *PublicationModel) FromDomain(p *publication.Publication) error {
	flags, err := p.Status.Flags()
	if err != nil {
		return err
	}
	links, err := publication.EncodeLinks(p.Links)
	if err != nil {
		return err
	}

	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.ClientID = p.ClientID
	m.PackageID = p.PackageID
	m.Name = p.Name
	m.Type = string(p.Type)
	m.Date = p.Date
	m.Description = p.Description
	m.Copywriting = p.Copywriting
	m.Designer = p.Designer
	m.Links = links

	m.NeedsRecording = flags.NeedsRecording
	m.NeedsEditing = flags.NeedsEditing
	m.InEditing = flags.InEditing
	m.InReview = flags.InReview
	m.Approved = flags.Approved
	m.IsPublished = flags.IsPublished

	m.CalendarEventID = p.CalendarEventID
	m.CalendarID = p.CalendarID
	m.DeletedAt = p.DeletedAt
	return nil
}

// PublicationModelFromDomain creates a new persistence model from a domain Publication.
func PublicationModelFromDomain(p *publication.Publication) (*PublicationModel, error) {
	m := &PublicationModel{}
	if err := m.FromDomain(p); err != nil {
		return nil, err
	}
	return m, nil
}

// NoteModel is the persistence model for a publication note.
type NoteModel struct {
	BaseModel
	PublicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content       string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'new'"`
}

// TableName returns the table name for GORM
func (NoteModel) TableName() string {
	return "publication_notes"
}

// ToDomain converts the persistence model to a domain Note
func (m *NoteModel) ToDomain() *publication.Note {
	return &publication.Note{
		BaseEntity:    m.BaseModel.ToDomain(),
		PublicationID: m.PublicationID,
		Content:       m.Content,
		Status:        publication.NoteStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Note
func (m *NoteModel) FromDomain(n *publication.Note) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.PublicationID = n.PublicationID
	m.Content = n.Content
	m.Status = string(n.Status)
}

// NoteModelFromDomain creates a new persistence model from a domain Note
func NoteModelFromDomain(n *publication.Note) *NoteModel {
	m := &NoteModel{}
	m.FromDomain(n)
	return m
}
