package task

import (
	"time"

	"github.com/agency/backend/internal/domain/task"
	"github.com/google/uuid"
)

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	Content           string     `json:"content" binding:"required,min=1"`
	Type              string     `json:"type" binding:"required,oneof=campana publicaciones correcciones calendarios cobros otros"`
	ClientID          *uuid.UUID `json:"client_id"`
	ExecutionDate     *time.Time `json:"execution_date"`
	ReminderDate      *time.Time `json:"reminder_date"`
	ReminderFrequency string     `json:"reminder_frequency" binding:"omitempty,oneof=once daily weekly monthly"`
}

// UpdateTaskRequest represents a partial task update. clear_reminder wins
// over reminder_date.
type UpdateTaskRequest struct {
	Content           *string    `json:"content" binding:"omitempty,min=1"`
	Type              *string    `json:"type" binding:"omitempty,oneof=campana publicaciones correcciones calendarios cobros otros"`
	ClientID          *uuid.UUID `json:"client_id"`
	ClearClient       bool       `json:"clear_client"`
	ExecutionDate     *time.Time `json:"execution_date"`
	ReminderDate      *time.Time `json:"reminder_date"`
	ReminderFrequency *string    `json:"reminder_frequency" binding:"omitempty,oneof=once daily weekly monthly"`
	ClearReminder     bool       `json:"clear_reminder"`
}

// TaskListFilter represents filter options for the task list
type TaskListFilter struct {
	ClientID  *uuid.UUID `form:"client_id"`
	Type      string     `form:"type" binding:"omitempty,oneof=campana publicaciones correcciones calendarios cobros otros"`
	Completed *bool      `form:"completed"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID                uuid.UUID  `json:"id"`
	Content           string     `json:"content"`
	Type              string     `json:"type"`
	ClientID          *uuid.UUID `json:"client_id"`
	Completed         bool       `json:"completed"`
	ExecutionDate     *time.Time `json:"execution_date"`
	ReminderDate      *time.Time `json:"reminder_date"`
	ReminderFrequency string     `json:"reminder_frequency"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ToTaskResponse converts a domain task to a response DTO
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		Content:           t.Content,
		Type:              string(t.Type),
		ClientID:          t.ClientID,
		Completed:         t.Completed,
		ExecutionDate:     t.ExecutionDate,
		ReminderDate:      t.ReminderDate,
		ReminderFrequency: string(t.ReminderFrequency),
		DeletedAt:         t.DeletedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
