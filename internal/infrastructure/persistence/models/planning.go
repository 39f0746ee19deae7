package models

import (
	"time"

	"github.com/agency/backend/internal/domain/planning"
	"github.com/google/uuid"
)

// PlanningEntryModel is the persistence model for a planning grid cell.
// The (client_id, month) pair is the natural key; writes are upserts on it.
type PlanningEntryModel struct {
	BaseModel
	ClientID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_planning_client_month,priority:1"`
	Month       time.Time `gorm:"not null;uniqueIndex:idx_planning_client_month,priority:2"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PlanningEntryModel) TableName() string {
	return "planning_entries"
}

// ToDomain converts the persistence model to a domain Entry
func (m *PlanningEntryModel) ToDomain() *planning.Entry {
	return &planning.Entry{
		BaseEntity:  m.BaseModel.ToDomain(),
		ClientID:    m.ClientID,
		Month:       m.Month,
		Status:      planning.Status(m.Status),
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Entry
func (m *PlanningEntryModel) FromDomain(e *planning.Entry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.ClientID = e.ClientID
	m.Month = e.Month
	m.Status = string(e.Status)
	m.Description = e.Description
}

// PlanningEntryModelFromDomain creates a new persistence model from a domain Entry
func PlanningEntryModelFromDomain(e *planning.Entry) *PlanningEntryModel {
	m := &PlanningEntryModel{}
	m.FromDomain(e)
	return m
}
