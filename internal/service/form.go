package service

import (
	"context"
	"fmt"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/rs/zerolog/log"
)

// FormService orchestrates the form aggregate: forms own sections, sections
// own questions, questions own options. All structural edits go through the
// aggregate root so the publication state machine is always enforced.
type FormService struct {
	forms      domain.FormRepository
	workspaces domain.WorkspaceRepository
	events     domain.EventPublisher
	tx         Transactor
}

// NewFormService creates a new form service.
func NewFormService(forms domain.FormRepository, workspaces domain.WorkspaceRepository, events domain.EventPublisher, tx Transactor) *FormService {
	return &FormService{forms: forms, workspaces: workspaces, events: events, tx: tx}
}

// Create adds a draft form to an existing workspace.
func (s *FormService) Create(ctx context.Context, workspaceID int64, input domain.FormCreate) (*domain.Form, error) {
	form, err := domain.NewForm(workspaceID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.workspaces.Exists(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("failed to check workspace: %w", err)
		}
		if !exists {
			return domain.NewNotFoundError("workspace", workspaceID)
		}

		if err := s.forms.Save(ctx, form); err != nil {
			return fmt.Errorf("failed to save form: %w", err)
		}

		return s.events.Publish(ctx, domain.FormCreated{
			FormID:      form.ID,
			WorkspaceID: form.WorkspaceID,
			Title:       form.Title,
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("form_id", form.ID).Int64("workspace_id", workspaceID).Msg("form created")
	return form, nil
}

// GetByID loads the full aggregate.
func (s *FormService) GetByID(ctx context.Context, id int64) (*domain.Form, error) {
	form, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}
	if form == nil {
		return nil, domain.NewNotFoundError("form", id)
	}
	return form, nil
}

// ListByWorkspace returns the forms of a workspace.
func (s *FormService) ListByWorkspace(ctx context.Context, workspaceID int64) ([]domain.Form, error) {
	forms, err := s.forms.FindByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return forms, nil
}

// UpdateInfo changes title and description.
func (s *FormService) UpdateInfo(ctx context.Context, id int64, input domain.FormUpdate) (*domain.Form, error) {
	return s.mutate(ctx, id, func(form *domain.Form) error {
		form.UpdateInfo(input.Title, input.Description)
		return nil
	}, func(form *domain.Form) domain.Event {
		return domain.FormUpdated{FormID: form.ID, WorkspaceID: form.WorkspaceID, Title: form.Title}
	})
}

// AddSection appends a section to a non-published form.
func (s *FormService) AddSection(ctx context.Context, formID int64, input domain.SectionAdd) (*domain.Form, error) {
	return s.mutate(ctx, formID, func(form *domain.Form) error {
		section, err := domain.NewFormSection(form.ID, input.Title, input.DisplayOrder)
		if err != nil {
			return err
		}
		section.Description = input.Description
		return form.AddSection(*section)
	}, func(form *domain.Form) domain.Event {
		return domain.FormUpdated{FormID: form.ID, WorkspaceID: form.WorkspaceID, Title: form.Title}
	})
}

// AddQuestion appends a question to an owned section.
func (s *FormService) AddQuestion(ctx context.Context, formID, sectionID int64, input domain.QuestionAdd) (*domain.Form, error) {
	qType := domain.QuestionType(input.Type)
	if !qType.IsValid() {
		return nil, domain.NewValidationError("type", "unknown question type: "+input.Type)
	}

	return s.mutate(ctx, formID, func(form *domain.Form) error {
		section := form.Section(sectionID)
		if section == nil {
			return domain.NewNotFoundError("section", sectionID)
		}

		question, err := domain.NewQuestion(sectionID, input.Text, qType, input.DisplayOrder)
		if err != nil {
			return err
		}
		question.Description = input.Description
		question.Placeholder = input.Placeholder
		question.HelpText = input.HelpText
		question.ValidationPattern = input.ValidationPattern
		question.ValidationMessage = input.ValidationMessage
		question.MinLength = input.MinLength
		question.MaxLength = input.MaxLength
		question.MinValue = input.MinValue
		question.MaxValue = input.MaxValue
		question.DefaultValue = input.DefaultValue
		if input.Required {
			question.MarkAsRequired()
		}

		section.AddQuestion(*question)
		return nil
	}, func(form *domain.Form) domain.Event {
		return domain.FormUpdated{FormID: form.ID, WorkspaceID: form.WorkspaceID, Title: form.Title}
	})
}

// AddOption attaches an option to an owned choice-typed question.
func (s *FormService) AddOption(ctx context.Context, formID, questionID int64, input domain.OptionAdd) (*domain.Form, error) {
	return s.mutate(ctx, formID, func(form *domain.Form) error {
		question := form.Question(questionID)
		if question == nil {
			return domain.NewNotFoundError("question", questionID)
		}

		option, err := domain.NewQuestionOption(input.Label, input.Value, input.Weight, input.DisplayOrder)
		if err != nil {
			return err
		}
		option.QuestionID = questionID
		option.Metadata = input.Metadata

		return question.AddOption(*option)
	}, func(form *domain.Form) domain.Event {
		return domain.FormUpdated{FormID: form.ID, WorkspaceID: form.WorkspaceID, Title: form.Title}
	})
}

// Publish runs the publication state machine.
func (s *FormService) Publish(ctx context.Context, id int64) (*domain.Form, error) {
	form, err := s.mutate(ctx, id, func(form *domain.Form) error {
		return form.Publish()
	}, func(form *domain.Form) domain.Event {
		return domain.FormPublishedEvent{FormID: form.ID, WorkspaceID: form.WorkspaceID}
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("form_id", form.ID).Msg("form published")
	return form, nil
}

// Archive moves the form to its terminal state.
func (s *FormService) Archive(ctx context.Context, id int64) (*domain.Form, error) {
	return s.mutate(ctx, id, func(form *domain.Form) error {
		form.Archive()
		return nil
	}, func(form *domain.Form) domain.Event {
		return domain.FormArchivedEvent{FormID: form.ID, WorkspaceID: form.WorkspaceID}
	})
}

// mutate is the shared load -> mutate -> save -> emit pipeline every form
// use case follows.
func (s *FormService) mutate(ctx context.Context, id int64, fn func(*domain.Form) error, event func(*domain.Form) domain.Event) (*domain.Form, error) {
	var form *domain.Form

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		form, err = s.forms.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get form: %w", err)
		}
		if form == nil {
			return domain.NewNotFoundError("form", id)
		}

		if err := fn(form); err != nil {
			return err
		}

		if err := s.forms.Save(ctx, form); err != nil {
			return fmt.Errorf("failed to save form: %w", err)
		}

		return s.events.Publish(ctx, event(form))
	})
	if err != nil {
		return nil, err
	}

	return form, nil
}
