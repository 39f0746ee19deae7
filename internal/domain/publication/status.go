package publication

import "github.com/agency/backend/internal/domain/shared"

// Status is the single enumerated pipeline stage of a publication. Storage
// keeps six boolean columns for compatibility with the existing schema, so
// conversion to and from the flag set lives here and is the only legal write
// path for the flags.
type Status string

const (
	StatusUnspecified    Status = ""
	StatusNeedsRecording Status = "needs_recording"
	StatusNeedsEditing   Status = "needs_editing"
	StatusInEditing      Status = "in_editing"
	StatusInReview       Status = "in_review"
	StatusApproved       Status = "approved"
	StatusPublished      Status = "published"
)

// SelectableStatuses returns the six stages a user may pick in the editor
func SelectableStatuses() []Status {
	return []Status{
		StatusNeedsRecording,
		StatusNeedsEditing,
		StatusInEditing,
		StatusInReview,
		StatusApproved,
		StatusPublished,
	}
}

// ValidStatus reports whether s is one of the six selectable stages
func ValidStatus(s Status) bool {
	switch s {
	case StatusNeedsRecording, StatusNeedsEditing, StatusInEditing,
		StatusInReview, StatusApproved, StatusPublished:
		return true
	}
	return false
}

// StatusFlags is the flat six-column representation of a pipeline stage
type StatusFlags struct {
	NeedsRecording bool
	NeedsEditing   bool
	InEditing      bool
	InReview       bool
	Approved       bool
	IsPublished    bool
}

// Flags converts a stage to storage form: exactly one flag true for each
// selectable stage, all false for unspecified.
func (s Status) Flags() (StatusFlags, error) {
	if s == StatusUnspecified {
		return StatusFlags{}, nil
	}
	if !ValidStatus(s) {
		return StatusFlags{}, shared.NewDomainError("INVALID_STATUS", "Unknown publication status")
	}
	return StatusFlags{
		NeedsRecording: s == StatusNeedsRecording,
		NeedsEditing:   s == StatusNeedsEditing,
		InEditing:      s == StatusInEditing,
		InReview:       s == StatusInReview,
		Approved:       s == StatusApproved,
		IsPublished:    s == StatusPublished,
	}, nil
}

// Status derives the display stage from a flag set. The most downstream true
// flag wins, which also serves as the read-time repair for rows where more
// than one flag is set. Zero flags map to unspecified.
func (f StatusFlags) Status() Status {
	switch {
	case f.IsPublished:
		return StatusPublished
	case f.Approved:
		return StatusApproved
	case f.InReview:
		return StatusInReview
	case f.InEditing:
		return StatusInEditing
	case f.NeedsEditing:
		return StatusNeedsEditing
	case f.NeedsRecording:
		return StatusNeedsRecording
	}
	return StatusUnspecified
}

// Normalize rewrites the flag set so that at most one flag is true,
// following the display precedence. Rows written through Status.Flags never
// need it; rows written by older tools might.
func (f StatusFlags) Normalize() StatusFlags {
	flags, _ := f.Status().Flags()
	return flags
}

// IsConsistent reports whether at most one flag is set
func (f StatusFlags) IsConsistent() bool {
	count := 0
	for _, b := range []bool{f.NeedsRecording, f.NeedsEditing, f.InEditing, f.InReview, f.Approved, f.IsPublished} {
		if b {
			count++
		}
	}
	return count <= 1
}
