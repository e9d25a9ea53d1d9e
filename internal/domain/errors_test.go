package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind ErrorKind
	}{
		{NewValidationError("name", "too short"), KindValidation},
		{NewNotFoundError("workspace", 9), KindNotFound},
		{NewNotFoundByError("workspace", "Engineering"), KindNotFound},
		{NewDuplicateError("name already taken"), KindDuplicate},
		{NewIllegalStateError("already archived"), KindIllegalState},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, KindOf(tc.err))
		assert.True(t, IsKind(tc.err, tc.kind))
	}
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("saving workspace: %w", NewDuplicateError("taken"))
	assert.Equal(t, KindDuplicate, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindDuplicate))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, IsKind(errors.New("boom"), KindValidation))
	assert.False(t, IsKind(nil, KindValidation))
}

func TestErrorMessage(t *testing.T) {
	err := NewValidationError("name", "too short")
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "name")

	err = NewNotFoundError("workspace", 9)
	assert.Contains(t, err.Error(), "workspace not found with id 9")
}
