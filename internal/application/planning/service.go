package planning

import (
	"context"
	"errors"
	"time"

	"github.com/agency/backend/internal/domain/planning"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SetStatusRequest sets the annotation for a client and month directly
type SetStatusRequest struct {
	ClientID uuid.UUID `json:"client_id" binding:"required"`
	Month    time.Time `json:"month" binding:"required"`
	Status   string    `json:"status" binding:"required,oneof=hacer no_hacer consultar"`
}

// CycleStatusRequest advances the annotation for a client and month one step
type CycleStatusRequest struct {
	ClientID uuid.UUID `json:"client_id" binding:"required"`
	Month    time.Time `json:"month" binding:"required"`
}

// SetDescriptionRequest replaces the free-text note for a client and month
type SetDescriptionRequest struct {
	ClientID    uuid.UUID `json:"client_id" binding:"required"`
	Month       time.Time `json:"month" binding:"required"`
	Description string    `json:"description"`
}

// EntryResponse represents a planning entry in API responses
type EntryResponse struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"client_id"`
	Month       time.Time `json:"month"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToEntryResponse converts a domain entry to a response DTO
func ToEntryResponse(e *planning.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		Month:       e.Month,
		Status:      string(e.Status),
		Description: e.Description,
		UpdatedAt:   e.UpdatedAt,
	}
}

// PlanningService handles the client-by-month planning grid. Every write is
// an upsert on the (client, month) natural key, so clicking a cell that has
// no entry yet creates it and clicking again updates the same row.
type PlanningService struct {
	entryRepo planning.Repository
}

// NewPlanningService creates a new PlanningService
func NewPlanningService(entryRepo planning.Repository) *PlanningService {
	return &PlanningService{entryRepo: entryRepo}
}

// Grid lists all entries for the month containing the given time
func (s *PlanningService) Grid(ctx context.Context, month time.Time) ([]EntryResponse, error) {
	entries, err := s.entryRepo.FindByMonth(ctx, planning.MonthStart(month))
	if err != nil {
		return nil, err
	}
	items := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, ToEntryResponse(&entries[i]))
	}
	return items, nil
}

// History lists all entries for a client, newest month first
func (s *PlanningService) History(ctx context.Context, clientID uuid.UUID) ([]EntryResponse, error) {
	entries, err := s.entryRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	items := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, ToEntryResponse(&entries[i]))
	}
	return items, nil
}

// SetStatus sets the annotation for a cell, creating the entry when the cell
// was empty
func (s *PlanningService) SetStatus(ctx context.Context, req SetStatusRequest) (*EntryResponse, error) {
	entry, err := s.load(ctx, req.ClientID, req.Month)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		entry, err = planning.NewEntry(req.ClientID, req.Month, planning.Status(req.Status))
		if err != nil {
			return nil, err
		}
	} else if err := entry.SetStatus(planning.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.entryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// CycleStatus advances a cell one step around the ring. An empty cell starts
// the ring at "hacer", matching a first quick click meaning "do it".
func (s *PlanningService) CycleStatus(ctx context.Context, req CycleStatusRequest) (*EntryResponse, error) {
	entry, err := s.load(ctx, req.ClientID, req.Month)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		entry, err = planning.NewEntry(req.ClientID, req.Month, planning.StatusHacer)
		if err != nil {
			return nil, err
		}
	} else {
		entry.CycleStatus()
	}

	if err := s.entryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// SetDescription replaces a cell's note without touching its status. An
// empty cell gets created with the default ring start.
func (s *PlanningService) SetDescription(ctx context.Context, req SetDescriptionRequest) (*EntryResponse, error) {
	entry, err := s.load(ctx, req.ClientID, req.Month)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		entry, err = planning.NewEntry(req.ClientID, req.Month, planning.StatusConsultar)
		if err != nil {
			return nil, err
		}
	}
	entry.SetDescription(req.Description)

	if err := s.entryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// Clear removes a cell entirely
func (s *PlanningService) Clear(ctx context.Context, clientID uuid.UUID, month time.Time) error {
	return s.entryRepo.Delete(ctx, clientID, planning.MonthStart(month))
}

// load fetches the entry for a cell, mapping not-found to nil
func (s *PlanningService) load(ctx context.Context, clientID uuid.UUID, month time.Time) (*planning.Entry, error) {
	entry, err := s.entryRepo.FindByKey(ctx, clientID, planning.MonthStart(month))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}
