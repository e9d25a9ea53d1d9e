package service

import (
	"context"
	"testing"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFormService(forms *MockFormRepository, workspaces *MockWorkspaceRepository, events *MockEventPublisher) *FormService {
	return NewFormService(forms, workspaces, events, NopTransactor{})
}

func TestFormService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		forms := new(MockFormRepository)
		workspaces := new(MockWorkspaceRepository)
		events := new(MockEventPublisher)
		svc := newFormService(forms, workspaces, events)

		workspaces.On("Exists", ctx, int64(1)).Return(true, nil)
		forms.On("Save", ctx, mock.AnythingOfType("*domain.Form")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Form).ID = 5
			}).Return(nil)
		events.On("Publish", ctx, mock.Anything).Return(nil)

		form, err := svc.Create(ctx, 1, domain.FormCreate{Title: "Onboarding survey"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), form.ID)
		assert.Equal(t, domain.FormDraft, form.Status)

		require.Len(t, events.Published, 1)
		assert.Equal(t, domain.EventFormCreated, events.Published[0].Kind())
	})

	t.Run("workspace missing", func(t *testing.T) {
		forms := new(MockFormRepository)
		workspaces := new(MockWorkspaceRepository)
		svc := newFormService(forms, workspaces, new(MockEventPublisher))

		workspaces.On("Exists", ctx, int64(99)).Return(false, nil)

		_, err := svc.Create(ctx, 99, domain.FormCreate{Title: "Onboarding survey"})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		forms.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})

	t.Run("blank title", func(t *testing.T) {
		svc := newFormService(new(MockFormRepository), new(MockWorkspaceRepository), new(MockEventPublisher))

		_, err := svc.Create(ctx, 1, domain.FormCreate{Title: "   "})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})
}

// The repository hands back the same aggregate across calls, so the full
// draft -> structure -> publish -> archive flow can run through the service.
func TestFormService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	forms := new(MockFormRepository)
	workspaces := new(MockWorkspaceRepository)
	events := new(MockEventPublisher)
	svc := newFormService(forms, workspaces, events)

	form, err := domain.NewForm(1, "Onboarding survey", "")
	require.NoError(t, err)
	form.ID = 5
	forms.On("FindByID", ctx, int64(5)).Return(form, nil)
	forms.On("Save", ctx, mock.Anything).Return(nil)
	events.On("Publish", ctx, mock.Anything).Return(nil)

	// empty form cannot be published
	_, err = svc.Publish(ctx, 5)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIllegalState))

	// add a section, then a question into it
	updated, err := svc.AddSection(ctx, 5, domain.SectionAdd{Title: "Basics", DisplayOrder: 1})
	require.NoError(t, err)
	require.Len(t, updated.Sections, 1)
	sectionID := updated.Sections[0].ID

	// a section with no questions still blocks publication
	_, err = svc.Publish(ctx, 5)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIllegalState))

	updated, err = svc.AddQuestion(ctx, 5, sectionID, domain.QuestionAdd{
		Text:         "What is your name?",
		Type:         "TEXT",
		DisplayOrder: 1,
		Required:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.QuestionCount())

	updated, err = svc.Publish(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.FormPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)

	// published forms are frozen
	_, err = svc.AddSection(ctx, 5, domain.SectionAdd{Title: "More", DisplayOrder: 2})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIllegalState))

	updated, err = svc.Archive(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.FormArchived, updated.Status)

	// archived is terminal
	_, err = svc.Publish(ctx, 5)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIllegalState))

	kinds := make([]domain.EventKind, 0, len(events.Published))
	for _, ev := range events.Published {
		kinds = append(kinds, ev.Kind())
	}
	assert.Equal(t, []domain.EventKind{
		domain.EventFormUpdated,
		domain.EventFormUpdated,
		domain.EventFormPublished,
		domain.EventFormArchived,
	}, kinds)
}

func TestFormService_AddQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type", func(t *testing.T) {
		svc := newFormService(new(MockFormRepository), new(MockWorkspaceRepository), new(MockEventPublisher))

		_, err := svc.AddQuestion(ctx, 5, 1, domain.QuestionAdd{Text: "Pick one", Type: "GRID"})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})

	t.Run("section missing", func(t *testing.T) {
		forms := new(MockFormRepository)
		svc := newFormService(forms, new(MockWorkspaceRepository), new(MockEventPublisher))

		form, _ := domain.NewForm(1, "Onboarding survey", "")
		form.ID = 5
		forms.On("FindByID", ctx, int64(5)).Return(form, nil)

		_, err := svc.AddQuestion(ctx, 5, 77, domain.QuestionAdd{Text: "Pick one", Type: "TEXT"})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
		forms.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})
}

func TestFormService_AddOption(t *testing.T) {
	ctx := context.Background()

	formWithQuestion := func(qType domain.QuestionType) (*domain.Form, int64) {
		form, _ := domain.NewForm(1, "Onboarding survey", "")
		form.ID = 5
		section, _ := domain.NewFormSection(5, "Basics", 1)
		section.ID = 2
		question, _ := domain.NewQuestion(2, "Pick one", qType, 1)
		question.ID = 3
		section.AddQuestion(*question)
		form.Sections = append(form.Sections, *section)
		return form, question.ID
	}

	t.Run("select question accepts options", func(t *testing.T) {
		forms := new(MockFormRepository)
		events := new(MockEventPublisher)
		svc := newFormService(forms, new(MockWorkspaceRepository), events)

		form, questionID := formWithQuestion(domain.QuestionSelect)
		forms.On("FindByID", ctx, int64(5)).Return(form, nil)
		forms.On("Save", ctx, mock.Anything).Return(nil)
		events.On("Publish", ctx, mock.Anything).Return(nil)

		updated, err := svc.AddOption(ctx, 5, questionID, domain.OptionAdd{Label: "Red", Value: "red", DisplayOrder: 1})
		require.NoError(t, err)
		question := updated.Question(questionID)
		require.NotNil(t, question)
		require.Len(t, question.Options, 1)
		assert.Equal(t, int64(questionID), question.Options[0].QuestionID)
	})

	t.Run("text question rejects options", func(t *testing.T) {
		forms := new(MockFormRepository)
		events := new(MockEventPublisher)
		svc := newFormService(forms, new(MockWorkspaceRepository), events)

		form, questionID := formWithQuestion(domain.QuestionText)
		forms.On("FindByID", ctx, int64(5)).Return(form, nil)

		_, err := svc.AddOption(ctx, 5, questionID, domain.OptionAdd{Label: "Red", Value: "red"})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindIllegalState))
		forms.AssertNotCalled(t, "Save", ctx, mock.Anything)
		assert.Empty(t, events.Published)
	})

	t.Run("question missing", func(t *testing.T) {
		forms := new(MockFormRepository)
		svc := newFormService(forms, new(MockWorkspaceRepository), new(MockEventPublisher))

		form, _ := domain.NewForm(1, "Onboarding survey", "")
		form.ID = 5
		forms.On("FindByID", ctx, int64(5)).Return(form, nil)

		_, err := svc.AddOption(ctx, 5, 77, domain.OptionAdd{Label: "Red", Value: "red"})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}

func TestFormService_UpdateInfo(t *testing.T) {
	ctx := context.Background()

	forms := new(MockFormRepository)
	events := new(MockEventPublisher)
	svc := newFormService(forms, new(MockWorkspaceRepository), events)

	form, _ := domain.NewForm(1, "Onboarding survey", "")
	form.ID = 5
	forms.On("FindByID", ctx, int64(5)).Return(form, nil)
	forms.On("Save", ctx, mock.Anything).Return(nil)
	events.On("Publish", ctx, mock.Anything).Return(nil)

	title := "Exit survey"
	updated, err := svc.UpdateInfo(ctx, 5, domain.FormUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Exit survey", updated.Title)

	require.Len(t, events.Published, 1)
	assert.Equal(t, domain.EventFormUpdated, events.Published[0].Kind())
}
