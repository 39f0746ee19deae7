package planning

import (
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status is the tri-state planning annotation for a client and month
type Status string

const (
	StatusHacer     Status = "hacer"
	StatusNoHacer   Status = "no_hacer"
	StatusConsultar Status = "consultar"
)

// ValidStatus reports whether s is a known planning status
func ValidStatus(s Status) bool {
	switch s {
	case StatusHacer, StatusNoHacer, StatusConsultar:
		return true
	}
	return false
}

// Next advances the status one step around the quick-toggle ring:
// consultar -> hacer -> no_hacer -> consultar.
func (s Status) Next() Status {
	switch s {
	case StatusConsultar:
		return StatusHacer
	case StatusHacer:
		return StatusNoHacer
	case StatusNoHacer:
		return StatusConsultar
	}
	return StatusConsultar
}

// Entry is the planning annotation for one client in one month. Exactly one
// entry may exist per (client, month-start) pair; writes are upserts on that
// natural key.
type Entry struct {
	shared.BaseEntity
	ClientID    uuid.UUID
	Month       time.Time
	Status      Status
	Description string
}

// MonthStart truncates t to the first instant of its month, which is the
// canonical month key.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// NewEntry creates a planning entry for the month containing the given time
func NewEntry(clientID uuid.UUID, month time.Time, status Status) (*Entry, error) {
	if !ValidStatus(status) {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown planning status")
	}

	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Month:      MonthStart(month),
		Status:     status,
	}, nil
}

// SetStatus sets the annotation directly
func (e *Entry) SetStatus(status Status) error {
	if !ValidStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown planning status")
	}
	e.Status = status
	e.UpdatedAt = time.Now()
	return nil
}

// CycleStatus advances the annotation one step around the ring
func (e *Entry) CycleStatus() {
	e.Status = e.Status.Next()
	e.UpdatedAt = time.Now()
}

// SetDescription replaces the free-text note, independently of status
func (e *Entry) SetDescription(description string) {
	e.Description = description
	e.UpdatedAt = time.Now()
}
