package publication

import (
	"context"
	"fmt"
	"time"

	"github.com/agency/backend/internal/domain/notification"
	"github.com/agency/backend/internal/domain/publication"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CalendarEvent is the outbound representation of a publication on the
// remote calendar
type CalendarEvent struct {
	CalendarID  string
	EventID     string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// CalendarClient talks to the remote calendar provider. Implementations live
// in infrastructure.
type CalendarClient interface {
	// CreateEvent creates a remote event and returns its ID
	CreateEvent(ctx context.Context, ev CalendarEvent) (string, error)

	// UpdateEvent updates an existing remote event
	UpdateEvent(ctx context.Context, ev CalendarEvent) error

	// DeleteEvent removes a remote event. Deleting an already-gone event is
	// not an error.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// PublicationService handles publication business operations, including the
// two-sided calendar sync. The sync is ordered so that neither side ends up
// referencing a row the other side does not have: creation books the remote
// event first and compensates by deleting it when the local save fails;
// deletion removes the remote event first and only then trashes the row.
type PublicationService struct {
	pubRepo    publication.Repository
	noteRepo   publication.NoteRepository
	calendar   CalendarClient
	calendarID string
	guard      *shared.OperationGuard
	dispatcher notification.Dispatcher
}

// NewPublicationService creates a new PublicationService. calendar may be
// nil when no provider is configured; sync is then skipped entirely.
func NewPublicationService(
	pubRepo publication.Repository,
	noteRepo publication.NoteRepository,
	calendar CalendarClient,
	calendarID string,
	guard *shared.OperationGuard,
	dispatcher notification.Dispatcher,
) *PublicationService {
	return &PublicationService{
		pubRepo:    pubRepo,
		noteRepo:   noteRepo,
		calendar:   calendar,
		calendarID: calendarID,
		guard:      guard,
		dispatcher: dispatcher,
	}
}

// Create creates a publication, optionally booking a remote calendar event.
// The remote event is created before the local save; a failed save deletes
// the event again so no orphan remains on either side.
func (s *PublicationService) Create(ctx context.Context, req CreatePublicationRequest) (*PublicationResponse, error) {
	p, err := publication.New(req.ClientID, req.Name, publication.Type(req.Type), req.Date)
	if err != nil {
		return nil, err
	}
	p.PackageID = req.PackageID
	p.Description = req.Description
	p.Copywriting = req.Copywriting
	p.Designer = req.Designer
	p.Links = toDomainLinks(req.Links)

	if req.SyncToCalendar && s.calendar != nil {
		eventID, err := s.calendar.CreateEvent(ctx, s.toCalendarEvent(p))
		if err != nil {
			return nil, shared.NewDomainError("CALENDAR_SYNC_FAILED", "Could not create the calendar event")
		}
		p.AttachCalendarEvent(s.calendarID, eventID)

		if err := s.pubRepo.Save(ctx, p); err != nil {
			// Compensate: the row was never written, so the remote event
			// must go too. A failed compensation is only reported.
			if delErr := s.calendar.DeleteEvent(ctx, s.calendarID, eventID); delErr != nil {
				s.report(ctx, notification.KindError,
					"Evento de calendario huérfano",
					fmt.Sprintf("No se pudo eliminar el evento %s tras un guardado fallido", eventID),
					p.ID)
			}
			return nil, err
		}
	} else {
		if err := s.pubRepo.Save(ctx, p); err != nil {
			return nil, err
		}
	}

	p.ClearDomainEvents()
	response := ToPublicationResponse(p)
	return &response, nil
}

// GetByID retrieves a publication by ID
func (s *PublicationService) GetByID(ctx context.Context, id uuid.UUID) (*PublicationResponse, error) {
	p, err := s.pubRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPublicationResponse(p)
	return &response, nil
}

// List retrieves a page of publications
func (s *PublicationService) List(ctx context.Context, filter PublicationListFilter) (*shared.Paginated[PublicationResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.ClientID != nil {
		f.Filters["client_id"] = *filter.ClientID
	}

	pubs, err := s.pubRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.pubRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]PublicationResponse, 0, len(pubs))
	for i := range pubs {
		items = append(items, ToPublicationResponse(&pubs[i]))
	}

	result := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &result, nil
}

// Calendar retrieves the publications scheduled inside [from, to)
func (s *PublicationService) Calendar(ctx context.Context, from, to time.Time) ([]PublicationResponse, error) {
	pubs, err := s.pubRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]PublicationResponse, 0, len(pubs))
	for i := range pubs {
		items = append(items, ToPublicationResponse(&pubs[i]))
	}
	return items, nil
}

// Update applies a partial update. When the publication is linked to a
// calendar event, the remote side is updated after the local save; a remote
// failure does not undo the save, it is reported instead.
func (s *PublicationService) Update(ctx context.Context, id uuid.UUID, req UpdatePublicationRequest) (*PublicationResponse, error) {
	release, ok := s.guard.Begin(shared.OperationKey(id, "update"))
	if !ok {
		return nil, shared.ErrOperationInFlight
	}
	defer release()

	p, err := s.pubRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := publication.Patch{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
		Copywriting: req.Copywriting,
		Designer:    req.Designer,
	}
	if req.Type != nil {
		t := publication.Type(*req.Type)
		patch.Type = &t
	}
	if req.Links != nil {
		links := toDomainLinks(*req.Links)
		patch.Links = &links
	}
	if req.ClearPackage {
		var none *uuid.UUID
		patch.PackageID = &none
	} else if req.PackageID != nil {
		pkgID := req.PackageID
		patch.PackageID = &pkgID
	}

	if err := p.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.pubRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	if p.HasCalendarEvent() && s.calendar != nil {
		if err := s.calendar.UpdateEvent(ctx, s.toCalendarEvent(p)); err != nil {
			s.report(ctx, notification.KindWarning,
				"Calendario desincronizado",
				fmt.Sprintf("No se pudo actualizar el evento de %q", p.Name),
				p.ID)
		}
	}

	response := ToPublicationResponse(p)
	return &response, nil
}

// SetStatus moves a publication to the given pipeline stage
func (s *PublicationService) SetStatus(ctx context.Context, id uuid.UUID, req SetStatusRequest) (*PublicationResponse, error) {
	release, ok := s.guard.Begin(shared.OperationKey(id, "set_status"))
	if !ok {
		return nil, shared.ErrOperationInFlight
	}
	defer release()

	p, err := s.pubRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.SetStatus(publication.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.pubRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	p.ClearDomainEvents()
	response := ToPublicationResponse(p)
	return &response, nil
}

// Delete moves a publication to the trash. A linked calendar event is
// deleted first; if the remote delete fails the publication stays out of
// the trash so the two sides cannot drift apart.
func (s *PublicationService) Delete(ctx context.Context, id uuid.UUID) error {
	release, ok := s.guard.Begin(shared.OperationKey(id, "delete"))
	if !ok {
		return shared.ErrOperationInFlight
	}
	defer release()

	p, err := s.pubRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if p.HasCalendarEvent() && s.calendar != nil {
		if err := s.calendar.DeleteEvent(ctx, p.CalendarID, p.CalendarEventID); err != nil {
			return shared.NewDomainError("CALENDAR_SYNC_FAILED", "Could not delete the calendar event")
		}
		p.DetachCalendarEvent()
	}

	p.MarkDeleted(time.Now())
	if err := s.pubRepo.Save(ctx, p); err != nil {
		return err
	}
	p.ClearDomainEvents()
	return nil
}

// ListTrash lists the publications currently in the trash
func (s *PublicationService) ListTrash(ctx context.Context, filter PublicationListFilter) ([]PublicationResponse, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	pubs, err := s.pubRepo.FindTrashed(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]PublicationResponse, 0, len(pubs))
	for i := range pubs {
		items = append(items, ToPublicationResponse(&pubs[i]))
	}
	return items, nil
}

// Restore takes a publication out of the trash. The calendar linkage was
// detached on delete, so a restored publication starts unsynced.
func (s *PublicationService) Restore(ctx context.Context, id uuid.UUID) (*PublicationResponse, error) {
	p, err := s.pubRepo.FindTrashedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Restore()
	if err := s.pubRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	p.ClearDomainEvents()
	response := ToPublicationResponse(p)
	return &response, nil
}

// =============================================================================
// Notes
// =============================================================================

// AddNote attaches a note to a publication
func (s *PublicationService) AddNote(ctx context.Context, publicationID uuid.UUID, req CreateNoteRequest) (*NoteResponse, error) {
	if _, err := s.pubRepo.FindByID(ctx, publicationID); err != nil {
		return nil, err
	}

	n, err := publication.NewNote(publicationID, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	response := ToNoteResponse(n)
	return &response, nil
}

// ListNotes lists a publication's notes, oldest first
func (s *PublicationService) ListNotes(ctx context.Context, publicationID uuid.UUID) ([]NoteResponse, error) {
	notes, err := s.noteRepo.FindByPublication(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	items := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		items = append(items, ToNoteResponse(&notes[i]))
	}
	return items, nil
}

// UpdateNote updates a note's content or handling state
func (s *PublicationService) UpdateNote(ctx context.Context, noteID uuid.UUID, req UpdateNoteRequest) (*NoteResponse, error) {
	n, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		if err := n.UpdateContent(*req.Content); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := n.SetStatus(publication.NoteStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.noteRepo.Save(ctx, n); err != nil {
		return nil, err
	}

	response := ToNoteResponse(n)
	return &response, nil
}

// DeleteNote removes a note permanently. Notes do not go through the trash.
func (s *PublicationService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	if _, err := s.noteRepo.FindByID(ctx, noteID); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, noteID)
}

func (s *PublicationService) toCalendarEvent(p *publication.Publication) CalendarEvent {
	return CalendarEvent{
		CalendarID:  s.calendarID,
		EventID:     p.CalendarEventID,
		Title:       p.Name,
		Description: p.Description,
		Start:       p.Date,
		End:         p.Date.Add(time.Hour),
	}
}

func (s *PublicationService) report(ctx context.Context, kind notification.Kind, title, body string, refID uuid.UUID) {
	if s.dispatcher == nil {
		return
	}
	n, err := notification.New(kind, title, body)
	if err != nil {
		return
	}
	n.SetRef("publication", refID)
	s.dispatcher.Dispatch(ctx, n)
}
