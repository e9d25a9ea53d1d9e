package domain

import (
	"strings"
	"time"
)

// FormSection groups an ordered run of questions inside a form. It has no
// lifecycle of its own beyond the owning form.
type FormSection struct {
	ID           int64      `json:"id"`
	FormID       int64      `json:"form_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DisplayOrder int        `json:"display_order"`
	Questions    []Question `json:"questions"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewFormSection builds an empty section with a non-blank title.
func NewFormSection(formID int64, title string, displayOrder int) (*FormSection, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "section title must not be blank")
	}

	now := time.Now()
	return &FormSection{
		FormID:       formID,
		Title:        title,
		DisplayOrder: displayOrder,
		Questions:    []Question{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AddQuestion appends a question to the section.
func (s *FormSection) AddQuestion(question Question) {
	s.Questions = append(s.Questions, question)
	s.UpdatedAt = time.Now()
}

// RemoveQuestion drops the question with the given id, if present.
func (s *FormSection) RemoveQuestion(questionID int64) {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			s.Questions = append(s.Questions[:i], s.Questions[i+1:]...)
			s.UpdatedAt = time.Now()
			return
		}
	}
}

// UpdateInfo replaces the title when a non-blank one is given and the
// description when provided.
func (s *FormSection) UpdateInfo(title, description *string) {
	if title != nil && strings.TrimSpace(*title) != "" {
		s.Title = *title
	}
	if description != nil {
		s.Description = *description
	}
	s.UpdatedAt = time.Now()
}

// QuestionCount returns the number of questions in this section.
func (s *FormSection) QuestionCount() int { return len(s.Questions) }
