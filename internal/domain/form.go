package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// FormStatus is the publication lifecycle of a form.
type FormStatus string

const (
	FormDraft     FormStatus = "DRAFT"
	FormPublished FormStatus = "PUBLISHED"
	FormArchived  FormStatus = "ARCHIVED"
)

// IsValid reports whether the status is one of the known values.
func (s FormStatus) IsValid() bool {
	switch s {
	case FormDraft, FormPublished, FormArchived:
		return true
	}
	return false
}

// Form is a sectioned questionnaire owned by a workspace. The lifecycle is
// DRAFT -> PUBLISHED -> ARCHIVED, with DRAFT -> ARCHIVED allowed directly;
// nothing leaves ARCHIVED and PUBLISHED never returns to DRAFT.
type Form struct {
	ID          int64         `json:"id"`
	WorkspaceID int64         `json:"workspace_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      FormStatus    `json:"status"`
	Sections    []FormSection `json:"sections"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewForm builds a draft form with no sections.
func NewForm(workspaceID int64, title, description string) (*Form, error) {
	if workspaceID <= 0 {
		return nil, NewValidationError("workspace_id", "workspace id is required and must be positive")
	}
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "form title must not be blank")
	}

	now := time.Now()
	return &Form{
		WorkspaceID: workspaceID,
		Title:       title,
		Description: description,
		Status:      FormDraft,
		Sections:    []FormSection{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddSection appends a section. Published forms are frozen for structural
// changes.
func (f *Form) AddSection(section FormSection) error {
	if f.Status == FormPublished {
		return NewIllegalStateError("cannot add sections to a published form")
	}
	f.Sections = append(f.Sections, section)
	f.UpdatedAt = time.Now()
	return nil
}

// Publish transitions the form to PUBLISHED. It requires at least one section
// and at least one question overall, and PublishedAt is set exactly once:
// publishing an archived or already-published form fails.
func (f *Form) Publish() error {
	if f.Status == FormArchived {
		return NewIllegalStateError("cannot publish an archived form")
	}
	if f.Status == FormPublished {
		return NewIllegalStateError("form is already published")
	}
	if len(f.Sections) == 0 {
		return NewIllegalStateError("form must have at least one section")
	}
	if f.QuestionCount() == 0 {
		return NewIllegalStateError("form must have at least one question")
	}

	now := time.Now()
	f.Status = FormPublished
	f.PublishedAt = &now
	f.UpdatedAt = now
	return nil
}

// Archive moves the form to its terminal state from any prior status.
func (f *Form) Archive() {
	f.Status = FormArchived
	f.UpdatedAt = time.Now()
}

// UpdateInfo replaces the title when a non-blank one is given and the
// description when provided.
func (f *Form) UpdateInfo(title, description *string) {
	if title != nil && strings.TrimSpace(*title) != "" {
		f.Title = *title
	}
	if description != nil {
		f.Description = *description
	}
	f.UpdatedAt = time.Now()
}

// IsDraft reports whether the form has never been published or archived.
func (f *Form) IsDraft() bool { return f.Status == FormDraft }

// IsPublished reports whether the form is live.
func (f *Form) IsPublished() bool { return f.Status == FormPublished }

// QuestionCount sums the questions across all sections.
func (f *Form) QuestionCount() int {
	total := 0
	for i := range f.Sections {
		total += len(f.Sections[i].Questions)
	}
	return total
}

// Section returns the owned section with the given id, or nil.
func (f *Form) Section(sectionID int64) *FormSection {
	for i := range f.Sections {
		if f.Sections[i].ID == sectionID {
			return &f.Sections[i]
		}
	}
	return nil
}

// Question walks the owned sections looking for the question with the given
// id, or nil.
func (f *Form) Question(questionID int64) *Question {
	for i := range f.Sections {
		for j := range f.Sections[i].Questions {
			if f.Sections[i].Questions[j].ID == questionID {
				return &f.Sections[i].Questions[j]
			}
		}
	}
	return nil
}

// FormCreate represents form creation data.
type FormCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

// FormUpdate represents form metadata changes; nil fields are left alone.
type FormUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SectionAdd represents section creation data.
type SectionAdd struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// QuestionAdd represents question creation data.
type QuestionAdd struct {
	Text              string `json:"text" validate:"required"`
	Description       string `json:"description,omitempty"`
	Type              string `json:"type" validate:"required"`
	DisplayOrder      int    `json:"display_order" validate:"gte=0"`
	Required          bool   `json:"required"`
	Placeholder       string `json:"placeholder,omitempty"`
	HelpText          string `json:"help_text,omitempty"`
	ValidationPattern string `json:"validation_pattern,omitempty"`
	ValidationMessage string `json:"validation_message,omitempty"`
	MinLength         *int   `json:"min_length,omitempty"`
	MaxLength         *int   `json:"max_length,omitempty"`
	MinValue          *int   `json:"min_value,omitempty"`
	MaxValue          *int   `json:"max_value,omitempty"`
	DefaultValue      string `json:"default_value,omitempty"`
}

// OptionAdd represents option creation data.
type OptionAdd struct {
	Label        string          `json:"label" validate:"required"`
	Value        string          `json:"value" validate:"required"`
	Weight       int             `json:"weight"`
	DisplayOrder int             `json:"display_order" validate:"gte=0"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
}

// FormRepository is the persistence port for the form aggregate. Save writes
// the root and all owned children; FindByID loads them back ordered by
// display order.
type FormRepository interface {
	FindByID(ctx context.Context, id int64) (*Form, error)
	FindByWorkspaceID(ctx context.Context, workspaceID int64) ([]Form, error)
	Save(ctx context.Context, form *Form) error
	Delete(ctx context.Context, id int64) error
}
