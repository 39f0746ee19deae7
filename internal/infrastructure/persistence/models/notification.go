package models

import (
	"time"

	"github.com/agency/backend/internal/domain/notification"
	"github.com/google/uuid"
)

// NotificationModel is the persistence model for a stored notification.
type NotificationModel struct {
	BaseModel
	Kind    string     `gorm:"type:varchar(20);not null"`
	Title   string     `gorm:"type:varchar(200);not null"`
	Body    string     `gorm:"type:text"`
	Read    bool       `gorm:"not null;default:false;index"`
	ReadAt  *time.Time
	RefType string     `gorm:"type:varchar(50)"`
	RefID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseEntity: m.BaseModel.ToDomain(),
		Kind:       notification.Kind(m.Kind),
		Title:      m.Title,
		Body:       m.Body,
		Read:       m.Read,
		ReadAt:     m.ReadAt,
		RefType:    m.RefType,
		RefID:      m.RefID,
	}
}

// FromDomain populates the persistence model from a domain Notification
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.Kind = string(n.Kind)
	m.Title = n.Title
	m.Body = n.Body
	m.Read = n.Read
	m.ReadAt = n.ReadAt
	m.RefType = n.RefType
	m.RefID = n.RefID
}

// NotificationModelFromDomain creates a new persistence model from a domain Notification
func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{}
	m.FromDomain(n)
	return m
}
