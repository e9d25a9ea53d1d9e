package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// QuestionType is the closed set of form field kinds.
type QuestionType string

const (
	QuestionText     QuestionType = "TEXT"
	QuestionTextarea QuestionType = "TEXTAREA"
	QuestionSelect   QuestionType = "SELECT"
	QuestionCheckbox QuestionType = "CHECKBOX"
	QuestionRadio    QuestionType = "RADIO"
	QuestionDate     QuestionType = "DATE"
	QuestionTime     QuestionType = "TIME"
	QuestionDatetime QuestionType = "DATETIME"
	QuestionFile     QuestionType = "FILE"
	QuestionNumeric  QuestionType = "NUMERIC"
	QuestionEmail    QuestionType = "EMAIL"
	QuestionPhone    QuestionType = "PHONE"
)

// IsValid reports whether the type is one of the known values.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionText, QuestionTextarea, QuestionSelect, QuestionCheckbox,
		QuestionRadio, QuestionDate, QuestionTime, QuestionDatetime,
		QuestionFile, QuestionNumeric, QuestionEmail, QuestionPhone:
		return true
	}
	return false
}

// SupportsOptions reports whether the type carries selectable choices.
func (t QuestionType) SupportsOptions() bool {
	return t == QuestionSelect || t == QuestionCheckbox || t == QuestionRadio
}

// Question is a single form field. Options are only meaningful for
// choice-typed questions.
type Question struct {
	ID                int64            `json:"id"`
	SectionID         int64            `json:"section_id"`
	Text              string           `json:"text"`
	Description       string           `json:"description,omitempty"`
	Type              QuestionType     `json:"type"`
	DisplayOrder      int              `json:"display_order"`
	Required          bool             `json:"required"`
	Options           []QuestionOption `json:"options,omitempty"`
	Placeholder       string           `json:"placeholder,omitempty"`
	HelpText          string           `json:"help_text,omitempty"`
	ValidationPattern string           `json:"validation_pattern,omitempty"`
	ValidationMessage string           `json:"validation_message,omitempty"`
	MinLength         *int             `json:"min_length,omitempty"`
	MaxLength         *int             `json:"max_length,omitempty"`
	MinValue          *int             `json:"min_value,omitempty"`
	MaxValue          *int             `json:"max_value,omitempty"`
	DefaultValue      string           `json:"default_value,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// NewQuestion builds an optional (required=false) question with no options.
func NewQuestion(sectionID int64, text string, qType QuestionType, displayOrder int) (*Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text", "question text must not be blank")
	}
	if !qType.IsValid() {
		return nil, NewValidationError("type", "question type is required")
	}

	now := time.Now()
	return &Question{
		SectionID:    sectionID,
		Text:         text,
		Type:         qType,
		DisplayOrder: displayOrder,
		Required:     false,
		Options:      []QuestionOption{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AddOption attaches a selectable choice. Only SELECT, CHECKBOX and RADIO
// questions accept options.
func (q *Question) AddOption(option QuestionOption) error {
	if !q.Type.SupportsOptions() {
		return NewIllegalStateError("question type " + string(q.Type) + " does not support options")
	}
	q.Options = append(q.Options, option)
	q.UpdatedAt = time.Now()
	return nil
}

// RemoveOption drops the option with the given id, if present.
func (q *Question) RemoveOption(optionID int64) {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			q.Options = append(q.Options[:i], q.Options[i+1:]...)
			q.UpdatedAt = time.Now()
			return
		}
	}
}

// MarkAsRequired flags the question as mandatory.
func (q *Question) MarkAsRequired() {
	q.Required = true
	q.UpdatedAt = time.Now()
}

// QuestionOption is one selectable choice of a choice-typed question. Weight
// feeds scoring; Metadata is an opaque blob (color, icon and similar).
type QuestionOption struct {
	ID           int64           `json:"id"`
	QuestionID   int64           `json:"question_id"`
	Label        string          `json:"label"`
	Value        string          `json:"value"`
	Weight       int             `json:"weight"`
	DisplayOrder int             `json:"display_order"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
}

// NewQuestionOption builds an option with non-blank label and value.
func NewQuestionOption(label, value string, weight, displayOrder int) (*QuestionOption, error) {
	if strings.TrimSpace(label) == "" {
		return nil, NewValidationError("label", "option label must not be blank")
	}
	if strings.TrimSpace(value) == "" {
		return nil, NewValidationError("value", "option value must not be blank")
	}

	return &QuestionOption{
		Label:        label,
		Value:        value,
		Weight:       weight,
		DisplayOrder: displayOrder,
	}, nil
}
