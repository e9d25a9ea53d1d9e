package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	valid := []string{
		"abc",
		"Engineering",
		"Engineering Team",
		"team-42",
		"release_1.0",
		"A.B-C_D 9",
		strings.Repeat("a", 100),
	}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "name %q", name)
		assert.True(t, IsValidName(name), "name %q", name)
	}

	invalid := []string{
		"",
		"   ",
		"ab",
		strings.Repeat("a", 101),
		"team@home",
		"50%",
		"a/b",
		"café!",
	}
	for _, name := range invalid {
		err := ValidateName(name)
		require.Error(t, err, "name %q", name)
		assert.True(t, IsKind(err, KindValidation), "name %q", name)
		assert.False(t, IsValidName(name), "name %q", name)
	}
}

func TestValidateNameCarriesField(t *testing.T) {
	err := ValidateName("")
	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "name", de.Field)
	assert.Equal(t, KindValidation, de.Kind)
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription(""))
	assert.NoError(t, ValidateDescription(strings.Repeat("d", 500)))
	assert.Error(t, ValidateDescription(strings.Repeat("d", 501)))
}

func TestValidateOwnerID(t *testing.T) {
	assert.NoError(t, ValidateOwnerID(1))
	assert.Error(t, ValidateOwnerID(0))
	assert.Error(t, ValidateOwnerID(-3))
}

func TestValidateWorkspace(t *testing.T) {
	ws, err := NewWorkspace("Engineering", "desc", 7)
	require.NoError(t, err)
	assert.NoError(t, ValidateWorkspace(ws))

	assert.Error(t, ValidateWorkspace(nil))

	broken := *ws
	broken.OwnerID = 0
	assert.Error(t, ValidateWorkspace(&broken))
}

func TestValidateNameChange(t *testing.T) {
	assert.NoError(t, ValidateNameChange("Old Name", "New Name"))
	assert.Error(t, ValidateNameChange("Same", "Same"))
	assert.Error(t, ValidateNameChange("Old", "!!"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Engineering Team", NormalizeName("  Engineering \t  Team  "))
	assert.Equal(t, "a b c", NormalizeName("a  b   c"))
	assert.Equal(t, "", NormalizeName("   "))
}
