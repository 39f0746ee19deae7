package models

import (
	"time"

	"github.com/agency/backend/internal/domain/task"
	"github.com/google/uuid"
)

// TaskModel is the persistence model for the Task aggregate root.
type TaskModel struct {
	AggregateModel
	Content           string     `gorm:"type:text;not null"`
	Type              string     `gorm:"type:varchar(20);not null"`
	ClientID          *uuid.UUID `gorm:"type:uuid;index"`
	Completed         bool       `gorm:"not null;default:false"`
	ExecutionDate     *time.Time
	ReminderDate      *time.Time `gorm:"index"`
	ReminderFrequency string     `gorm:"type:varchar(20)"`
	DeletedAt         *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task
func (m *TaskModel) ToDomain() *task.Task {
	t := &task.Task{
		Content:           m.Content,
		Type:              task.Type(m.Type),
		ClientID:          m.ClientID,
		Completed:         m.Completed,
		ExecutionDate:     m.ExecutionDate,
		ReminderDate:      m.ReminderDate,
		ReminderFrequency: task.ReminderFrequency(m.ReminderFrequency),
		DeletedAt:         m.DeletedAt,
	}
	m.PopulateAggregateRoot(&t.BaseAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain Task
func (m *TaskModel) FromDomain(t *task.Task) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Content = t.Content
	m.Type = string(t.Type)
	m.ClientID = t.ClientID
	m.Completed = t.Completed
	m.ExecutionDate = t.ExecutionDate
	m.ReminderDate = t.ReminderDate
	m.ReminderFrequency = string(t.ReminderFrequency)
	m.DeletedAt = t.DeletedAt
}

// TaskModelFromDomain creates a new persistence model from a domain Task
func TaskModelFromDomain(t *task.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}
