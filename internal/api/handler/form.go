package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dgarciab/formspace/internal/api/response"
	"github.com/dgarciab/formspace/internal/domain"
	"github.com/dgarciab/formspace/internal/service"
)

// FormHandler handles form aggregate endpoints
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// Create handles creating a draft form in a workspace
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	var input domain.FormCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	form, err := h.formService.Create(r.Context(), workspaceID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, form)
}

// List handles listing the forms of a workspace
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	forms, err := h.formService.ListByWorkspace(r.Context(), workspaceID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, forms)
}

// Get handles loading a full form aggregate
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	form, err := h.formService.GetByID(r.Context(), formID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, form)
}

// Update handles changing form title and description
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	var input domain.FormUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	form, err := h.formService.UpdateInfo(r.Context(), formID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, form)
}

// AddSection handles appending a section to a form
func (h *FormHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	var input domain.SectionAdd
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	form, err := h.formService.AddSection(r.Context(), formID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, form)
}

// AddQuestion handles appending a question to a section
func (h *FormHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	sectionID, ok := urlID(r, "sectionID")
	if !ok {
		response.BadRequest(w, "invalid section ID")
		return
	}

	var input domain.QuestionAdd
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	form, err := h.formService.AddQuestion(r.Context(), formID, sectionID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, form)
}

// AddOption handles attaching an option to a choice question
func (h *FormHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	questionID, ok := urlID(r, "questionID")
	if !ok {
		response.BadRequest(w, "invalid question ID")
		return
	}

	var input domain.OptionAdd
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	form, err := h.formService.AddOption(r.Context(), formID, questionID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, form)
}

// Publish handles the draft -> published transition
func (h *FormHandler) Publish(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	form, err := h.formService.Publish(r.Context(), formID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, form)
}

// Archive handles moving a form to its terminal state
func (h *FormHandler) Archive(w http.ResponseWriter, r *http.Request) {
	formID, ok := urlID(r, "formID")
	if !ok {
		response.BadRequest(w, "invalid form ID")
		return
	}

	form, err := h.formService.Archive(r.Context(), formID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, form)
}
