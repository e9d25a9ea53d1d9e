package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgarciab/formspace/internal/api/response"
	"github.com/dgarciab/formspace/internal/domain"
)

func TestDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.NewValidationError("name", "name is too short"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", domain.NewNotFoundError("workspace", 7), http.StatusNotFound, "RESOURCE_NOT_FOUND"},
		{"duplicate", domain.NewDuplicateError("workspace already exists"), http.StatusConflict, "DUPLICATE_RESOURCE"},
		{"illegal state", domain.NewIllegalStateError("workspace already archived"), http.StatusUnprocessableEntity, "BUSINESS_RULE_VIOLATION"},
		{"wrapped", fmt.Errorf("use case failed: %w", domain.NewNotFoundError("form", 3)), http.StatusNotFound, "RESOURCE_NOT_FOUND"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.DomainError(rec, tc.err)

			if rec.Code != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, rec.Code)
			}

			var body struct {
				Success bool               `json:"success"`
				Error   response.ErrorBody `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if body.Success {
				t.Error("expected success to be false")
			}
			if body.Error.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, body.Error.Code)
			}
		})
	}
}

func TestDomainError_UnknownErrorIsOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	response.DomainError(rec, errors.New("connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body["error"] != "internal server error" {
		t.Errorf("expected opaque message, got %v", body["error"])
	}
}
