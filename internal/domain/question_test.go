package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionAddOption(t *testing.T) {
	option, err := NewQuestionOption("Very satisfied", "5", 5, 1)
	require.NoError(t, err)

	t.Run("select accepts options", func(t *testing.T) {
		q, err := NewQuestion(1, "How satisfied are you?", QuestionSelect, 1)
		require.NoError(t, err)

		require.NoError(t, q.AddOption(*option))
		assert.Len(t, q.Options, 1)
	})

	t.Run("text rejects options", func(t *testing.T) {
		q, err := NewQuestion(1, "Your name?", QuestionText, 1)
		require.NoError(t, err)

		err = q.AddOption(*option)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindIllegalState))
		assert.Empty(t, q.Options)
	})

	t.Run("checkbox and radio accept options", func(t *testing.T) {
		for _, typ := range []QuestionType{QuestionCheckbox, QuestionRadio} {
			q, err := NewQuestion(1, "Pick one", typ, 1)
			require.NoError(t, err)
			assert.NoError(t, q.AddOption(*option))
		}
	})
}

func TestQuestionRemoveOption(t *testing.T) {
	q, err := NewQuestion(1, "Pick", QuestionRadio, 1)
	require.NoError(t, err)

	a, err := NewQuestionOption("A", "a", 0, 1)
	require.NoError(t, err)
	a.ID = 10
	b, err := NewQuestionOption("B", "b", 0, 2)
	require.NoError(t, err)
	b.ID = 11

	require.NoError(t, q.AddOption(*a))
	require.NoError(t, q.AddOption(*b))

	q.RemoveOption(10)
	require.Len(t, q.Options, 1)
	assert.Equal(t, int64(11), q.Options[0].ID)

	// unknown id is a no-op
	q.RemoveOption(99)
	assert.Len(t, q.Options, 1)
}

func TestNewQuestion(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		_, err := NewQuestion(1, "  ", QuestionText, 1)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewQuestion(1, "Your name?", QuestionType("SLIDER"), 1)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("defaults optional", func(t *testing.T) {
		q, err := NewQuestion(1, "Your name?", QuestionText, 1)
		require.NoError(t, err)
		assert.False(t, q.Required)

		q.MarkAsRequired()
		assert.True(t, q.Required)
	})
}

func TestNewQuestionOption(t *testing.T) {
	t.Run("blank label", func(t *testing.T) {
		_, err := NewQuestionOption(" ", "v", 0, 1)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("blank value", func(t *testing.T) {
		_, err := NewQuestionOption("Label", "", 0, 1)
		assert.True(t, IsKind(err, KindValidation))
	})

	t.Run("weight defaults to zero", func(t *testing.T) {
		o, err := NewQuestionOption("Label", "v", 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, o.Weight)
	})
}

func TestQuestionTypeSupportsOptions(t *testing.T) {
	withOptions := map[QuestionType]bool{
		QuestionSelect: true, QuestionCheckbox: true, QuestionRadio: true,
		QuestionText: false, QuestionTextarea: false, QuestionDate: false,
		QuestionTime: false, QuestionDatetime: false, QuestionFile: false,
		QuestionNumeric: false, QuestionEmail: false, QuestionPhone: false,
	}
	for typ, want := range withOptions {
		assert.Equal(t, want, typ.SupportsOptions(), "type %s", typ)
		assert.True(t, typ.IsValid())
	}
}
