package publication

import (
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NoteStatus tracks the handling state of a publication note
type NoteStatus string

const (
	NoteStatusNew      NoteStatus = "new"
	NoteStatusDone     NoteStatus = "done"
	NoteStatusReceived NoteStatus = "received"
)

// ValidNoteStatus reports whether s is a known note status
func ValidNoteStatus(s NoteStatus) bool {
	switch s {
	case NoteStatusNew, NoteStatusDone, NoteStatusReceived:
		return true
	}
	return false
}

// Note is a free-standing annotation on a publication. Notes are hard
// deleted, they do not go through the trash.
type Note struct {
	shared.BaseEntity
	PublicationID uuid.UUID
	Content       string
	Status        NoteStatus
}

// NewNote creates a note in the "new" state
func NewNote(publicationID uuid.UUID, content string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Note content cannot be empty")
	}

	return &Note{
		BaseEntity:    shared.NewBaseEntity(),
		PublicationID: publicationID,
		Content:       content,
		Status:        NoteStatusNew,
	}, nil
}

// UpdateContent replaces the note text
func (n *Note) UpdateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Note content cannot be empty")
	}
	n.Content = content
	n.UpdatedAt = time.Now()
	return nil
}

// SetStatus moves the note to the given handling state
func (n *Note) SetStatus(status NoteStatus) error {
	if !ValidNoteStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown note status")
	}
	n.Status = status
	n.UpdatedAt = time.Now()
	return nil
}
