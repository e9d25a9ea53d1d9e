package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftFormWithQuestion(t *testing.T) *Form {
	t.Helper()
	form, err := NewForm(1, "Survey", "")
	require.NoError(t, err)

	section, err := NewFormSection(0, "General", 1)
	require.NoError(t, err)

	question, err := NewQuestion(0, "Your name?", QuestionText, 1)
	require.NoError(t, err)

	section.AddQuestion(*question)
	require.NoError(t, form.AddSection(*section))
	return form
}

func TestNewForm(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		form, err := NewForm(1, "Survey", "yearly survey")
		require.NoError(t, err)
		assert.Equal(t, FormDraft, form.Status)
		assert.Empty(t, form.Sections)
		assert.Nil(t, form.PublishedAt)
	})

	t.Run("requires workspace", func(t *testing.T) {
		_, err := NewForm(0, "Survey", "")
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := NewForm(1, "   ", "")
		assert.True(t, IsKind(err, KindValidation))
	})
}

func TestFormPublish(t *testing.T) {
	t.Run("fails without sections", func(t *testing.T) {
		form, err := NewForm(1, "Survey", "")
		require.NoError(t, err)

		err = form.Publish()
		assert.True(t, IsKind(err, KindIllegalState))
		assert.Equal(t, FormDraft, form.Status)
	})

	t.Run("fails with sections but no questions", func(t *testing.T) {
		form, err := NewForm(1, "Survey", "")
		require.NoError(t, err)
		section, err := NewFormSection(0, "General", 1)
		require.NoError(t, err)
		require.NoError(t, form.AddSection(*section))

		err = form.Publish()
		assert.True(t, IsKind(err, KindIllegalState))
	})

	t.Run("sets published_at exactly once", func(t *testing.T) {
		form := draftFormWithQuestion(t)

		require.NoError(t, form.Publish())
		assert.Equal(t, FormPublished, form.Status)
		require.NotNil(t, form.PublishedAt)
		first := *form.PublishedAt

		err := form.Publish()
		assert.True(t, IsKind(err, KindIllegalState))
		assert.Equal(t, first, *form.PublishedAt)
	})

	t.Run("fails on archived form", func(t *testing.T) {
		form := draftFormWithQuestion(t)
		form.Archive()

		err := form.Publish()
		assert.True(t, IsKind(err, KindIllegalState))
		assert.Equal(t, FormArchived, form.Status)
	})
}

func TestFormArchive(t *testing.T) {
	t.Run("from draft", func(t *testing.T) {
		form, err := NewForm(1, "Survey", "")
		require.NoError(t, err)
		form.Archive()
		assert.Equal(t, FormArchived, form.Status)
	})

	t.Run("from published", func(t *testing.T) {
		form := draftFormWithQuestion(t)
		require.NoError(t, form.Publish())
		form.Archive()
		assert.Equal(t, FormArchived, form.Status)
	})
}

func TestFormAddSection(t *testing.T) {
	form := draftFormWithQuestion(t)
	require.NoError(t, form.Publish())

	section, err := NewFormSection(0, "Extra", 2)
	require.NoError(t, err)

	err = form.AddSection(*section)
	assert.True(t, IsKind(err, KindIllegalState))
	assert.Len(t, form.Sections, 1)
}

func TestFormUpdateInfo(t *testing.T) {
	form, err := NewForm(1, "Survey", "old")
	require.NoError(t, err)

	blank := "  "
	desc := "new description"
	form.UpdateInfo(&blank, &desc)
	assert.Equal(t, "Survey", form.Title)
	assert.Equal(t, "new description", form.Description)

	title := "Renamed"
	form.UpdateInfo(&title, nil)
	assert.Equal(t, "Renamed", form.Title)
	assert.Equal(t, "new description", form.Description)
}

func TestFormQuestionCount(t *testing.T) {
	form := draftFormWithQuestion(t)
	assert.Equal(t, 1, form.QuestionCount())

	section, err := NewFormSection(0, "Second", 2)
	require.NoError(t, err)
	q1, err := NewQuestion(0, "Age?", QuestionNumeric, 1)
	require.NoError(t, err)
	q2, err := NewQuestion(0, "Email?", QuestionEmail, 2)
	require.NoError(t, err)
	section.AddQuestion(*q1)
	section.AddQuestion(*q2)
	require.NoError(t, form.AddSection(*section))

	assert.Equal(t, 3, form.QuestionCount())
}
