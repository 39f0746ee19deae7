package models

import (
	"github.com/agency/backend/internal/domain/messaging"
)

// TemplateModel is the persistence model for a message template.
type TemplateModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	Content     string `gorm:"type:text;not null"`
	Category    string `gorm:"type:varchar(100);index"`
	Description string `gorm:"type:text"`
	IsDefault   bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (TemplateModel) TableName() string {
	return "message_templates"
}

// ToDomain converts the persistence model to a domain Template
func (m *TemplateModel) ToDomain() *messaging.Template {
	return &messaging.Template{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Content:     m.Content,
		Category:    m.Category,
		Description: m.Description,
		IsDefault:   m.IsDefault,
	}
}

// FromDomain populates the persistence model from a domain Template
func (m *TemplateModel) FromDomain(t *messaging.Template) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Name = t.Name
	m.Content = t.Content
	m.Category = t.Category
	m.Description = t.Description
	m.IsDefault = t.IsDefault
}

// TemplateModelFromDomain creates a new persistence model from a domain Template
func TemplateModelFromDomain(t *messaging.Template) *TemplateModel {
	m := &TemplateModel{}
	m.FromDomain(t)
	return m
}
