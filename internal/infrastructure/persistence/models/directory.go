package models

import (
	"github.com/agency/backend/internal/domain/directory"
	"github.com/google/uuid"
)

// DesignerModel is the persistence model for a designer reference row.
type DesignerModel struct {
	BaseModel
	Name   string `gorm:"type:varchar(100);not null"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (DesignerModel) TableName() string {
	return "designers"
}

// ToDomain converts the persistence model to a domain Designer
func (m *DesignerModel) ToDomain() *directory.Designer {
	return &directory.Designer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Active:     m.Active,
	}
}

// FromDomain populates the persistence model from a domain Designer
func (m *DesignerModel) FromDomain(d *directory.Designer) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.Name = d.Name
	m.Active = d.Active
}

// DesignerModelFromDomain creates a new persistence model from a domain Designer
func DesignerModelFromDomain(d *directory.Designer) *DesignerModel {
	m := &DesignerModel{}
	m.FromDomain(d)
	return m
}

// ClientLinkModel is the persistence model for a labeled client URL.
type ClientLinkModel struct {
	BaseModel
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label    string    `gorm:"type:varchar(100);not null"`
	URL      string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (ClientLinkModel) TableName() string {
	return "client_links"
}

// ToDomain converts the persistence model to a domain ClientLink
func (m *ClientLinkModel) ToDomain() *directory.ClientLink {
	return &directory.ClientLink{
		BaseEntity: m.BaseModel.ToDomain(),
		ClientID:   m.ClientID,
		Label:      m.Label,
		URL:        m.URL,
	}
}

// FromDomain populates the persistence model from a domain ClientLink
func (m *ClientLinkModel) FromDomain(l *directory.ClientLink) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.ClientID = l.ClientID
	m.Label = l.Label
	m.URL = l.URL
}

// ClientLinkModelFromDomain creates a new persistence model from a domain ClientLink
func ClientLinkModelFromDomain(l *directory.ClientLink) *ClientLinkModel {
	m := &ClientLinkModel{}
	m.FromDomain(l)
	return m
}
