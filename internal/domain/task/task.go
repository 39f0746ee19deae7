package task

import (
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Type classifies what kind of work a task is
type Type string

const (
	TypeCampana       Type = "campana"
	TypePublicaciones Type = "publicaciones"
	TypeCorrecciones  Type = "correcciones"
	TypeCalendarios   Type = "calendarios"
	TypeCobros        Type = "cobros"
	TypeOtros         Type = "otros"
)

// ValidType reports whether t is a known task type
func ValidType(t Type) bool {
	switch t {
	case TypeCampana, TypePublicaciones, TypeCorrecciones, TypeCalendarios, TypeCobros, TypeOtros:
		return true
	}
	return false
}

// ReminderFrequency controls whether and how a reminder repeats
type ReminderFrequency string

const (
	FrequencyOnce    ReminderFrequency = "once"
	FrequencyDaily   ReminderFrequency = "daily"
	FrequencyWeekly  ReminderFrequency = "weekly"
	FrequencyMonthly ReminderFrequency = "monthly"
)

// ValidFrequency reports whether f is a known reminder frequency
func ValidFrequency(f ReminderFrequency) bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Task is the aggregate root for a todo item with an optional reminder
type Task struct {
	shared.BaseAggregateRoot
	Content           string
	Type              Type
	ClientID          *uuid.UUID
	Completed         bool
	ExecutionDate     *time.Time
	ReminderDate      *time.Time
	ReminderFrequency ReminderFrequency
	DeletedAt         *time.Time
}

// New creates a task
func New(content string, taskType Type) (*Task, error) {
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Task content cannot be empty")
	}
	if !ValidType(taskType) {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown task type")
	}

	return &Task{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Content:           content,
		Type:              taskType,
		ReminderFrequency: FrequencyOnce,
	}, nil
}

// SetClient links the task to a client; a nil id unlinks it
func (t *Task) SetClient(clientID *uuid.UUID) {
	t.ClientID = clientID
	t.UpdatedAt = time.Now()
}

// SetExecutionDate sets or clears the planned execution date
func (t *Task) SetExecutionDate(date *time.Time) {
	t.ExecutionDate = date
	t.UpdatedAt = time.Now()
}

// SetReminder sets the reminder date and frequency together
func (t *Task) SetReminder(date time.Time, frequency ReminderFrequency) error {
	if !ValidFrequency(frequency) {
		return shared.NewDomainError("INVALID_FREQUENCY", "Unknown reminder frequency")
	}
	t.ReminderDate = &date
	t.ReminderFrequency = frequency
	t.UpdatedAt = time.Now()
	return nil
}

// ClearReminder removes the reminder
func (t *Task) ClearReminder() {
	t.ReminderDate = nil
	t.ReminderFrequency = FrequencyOnce
	t.UpdatedAt = time.Now()
}

// ToggleCompleted flips the completed flag. Completing a task also pulls it
// out of the trash: a task cannot sit deleted and completed at once.
func (t *Task) ToggleCompleted() {
	t.Completed = !t.Completed
	if t.Completed {
		t.DeletedAt = nil
	}
	t.UpdatedAt = time.Now()
}

// IsDeleted reports whether the task is in the trash
func (t *Task) IsDeleted() bool {
	return t.DeletedAt != nil
}

// MarkDeleted moves the task to the trash without touching completed
func (t *Task) MarkDeleted(at time.Time) {
	t.DeletedAt = &at
	t.UpdatedAt = time.Now()
}

// Restore takes the task out of the trash
func (t *Task) Restore() {
	t.DeletedAt = nil
	t.UpdatedAt = time.Now()
}

// ReminderDue reports whether the reminder should fire at the given instant
func (t *Task) ReminderDue(now time.Time) bool {
	return t.ReminderDate != nil &&
		!t.Completed &&
		!t.IsDeleted() &&
		!now.Before(*t.ReminderDate)
}

// AdvanceReminder moves the reminder past a firing so the same reminder is
// never re-raised on the next poll. One-shot reminders are cleared;
// recurring ones advance to the next occurrence strictly after now
// (daily +1d, weekly +7d, monthly same day next month clamped to the month
// length).
func (t *Task) AdvanceReminder(now time.Time) {
	if t.ReminderDate == nil {
		return
	}

	if t.ReminderFrequency == FrequencyOnce {
		t.ReminderDate = nil
		t.UpdatedAt = time.Now()
		return
	}

	next := *t.ReminderDate
	for !next.After(now) {
		switch t.ReminderFrequency {
		case FrequencyDaily:
			next = next.AddDate(0, 0, 1)
		case FrequencyWeekly:
			next = next.AddDate(0, 0, 7)
		case FrequencyMonthly:
			next = nextMonthSameDay(next)
		}
	}
	t.ReminderDate = &next
	t.UpdatedAt = time.Now()
}

// nextMonthSameDay returns the same day-of-month in the following month,
// clamped to that month's length (Jan 31 -> Feb 28/29).
func nextMonthSameDay(from time.Time) time.Time {
	year, month, day := from.Date()
	firstOfNext := time.Date(year, month+1, 1, from.Hour(), from.Minute(), from.Second(), 0, from.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, from.Hour(), from.Minute(), from.Second(), 0, from.Location())
}
