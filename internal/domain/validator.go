package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	nameMinLength        = 3
	nameMaxLength        = 100
	descriptionMaxLength = 500
)

// Letters, digits, whitespace, hyphens, underscores and dots.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)

// ValidateName enforces the workspace name rules, failing fast on the first
// violation: non-blank, trimmed length within [3,100], allowed characters
// only.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "workspace name is required")
	}

	trimmed := strings.TrimSpace(name)
	if len(trimmed) < nameMinLength {
		return NewValidationError("name", fmt.Sprintf("name must have at least %d characters, got %d", nameMinLength, len(trimmed)))
	}
	if len(trimmed) > nameMaxLength {
		return NewValidationError("name", fmt.Sprintf("name must not exceed %d characters, got %d", nameMaxLength, len(trimmed)))
	}
	if !namePattern.MatchString(trimmed) {
		return NewValidationError("name", "name may only contain letters, digits, spaces, hyphens, underscores and dots")
	}
	return nil
}

// ValidateDescription allows an empty description but caps its length.
func ValidateDescription(description string) error {
	if description != "" && len(description) > descriptionMaxLength {
		return NewValidationError("description", fmt.Sprintf("description must not exceed %d characters, got %d", descriptionMaxLength, len(description)))
	}
	return nil
}

// ValidateOwnerID requires a positive owner reference.
func ValidateOwnerID(ownerID int64) error {
	if ownerID <= 0 {
		return NewValidationError("owner_id", fmt.Sprintf("owner id must be a positive number, got %d", ownerID))
	}
	return nil
}

// ValidateWorkspace runs all field rules against a whole aggregate.
func ValidateWorkspace(w *Workspace) error {
	if w == nil {
		return NewValidationError("workspace", "workspace must not be nil")
	}
	if err := ValidateName(w.Name); err != nil {
		return err
	}
	if err := ValidateDescription(w.Description); err != nil {
		return err
	}
	if err := ValidateOwnerID(w.OwnerID); err != nil {
		return err
	}
	if w.CreatedAt.IsZero() {
		return NewValidationError("created_at", "creation timestamp is required")
	}
	if w.UpdatedAt.IsZero() {
		return NewValidationError("updated_at", "update timestamp is required")
	}
	return nil
}

// ValidateNameChange checks a rename: the new name must be valid and actually
// different from the old one.
func ValidateNameChange(oldName, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}
	if oldName != "" && oldName == strings.TrimSpace(newName) {
		return NewValidationError("name", "new name is identical to the current one")
	}
	return nil
}

// IsValidName is the non-throwing variant of ValidateName, for speculative
// checks.
func IsValidName(name string) bool {
	return ValidateName(name) == nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName trims the name and collapses internal whitespace runs to
// single spaces.
func NormalizeName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), " ")
}
