package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dgarciab/formspace/internal/api/response"
	"github.com/dgarciab/formspace/internal/domain"
	"github.com/dgarciab/formspace/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func urlID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	return id, err == nil && id > 0
}

// WorkspaceHandler handles workspace endpoints
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// Create handles workspace creation
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.WorkspaceCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, workspace)
}

// List handles listing workspaces, optionally filtered by owner
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if owner := r.URL.Query().Get("owner_id"); owner != "" {
		ownerID, err := strconv.ParseInt(owner, 10, 64)
		if err != nil {
			response.BadRequest(w, "invalid owner_id")
			return
		}

		workspaces, err := h.workspaceService.ListByOwner(r.Context(), ownerID)
		if err != nil {
			response.DomainError(w, err)
			return
		}
		response.OK(w, workspaces)
		return
	}

	workspaces, err := h.workspaceService.List(r.Context())
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, workspaces)
}

// Get handles getting a workspace by ID
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	workspace, err := h.workspaceService.GetByID(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, workspace)
}

// Update handles updating a workspace
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	var input domain.WorkspaceUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	workspace, err := h.workspaceService.Update(r.Context(), id, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, workspace)
}

// Archive handles archiving a workspace
func (h *WorkspaceHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	workspace, err := h.workspaceService.Archive(r.Context(), id)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, workspace)
}

// Delete handles logically deleting a workspace
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	if err := h.workspaceService.Delete(r.Context(), id); err != nil {
		response.DomainError(w, err)
		return
	}

	response.NoContent(w)
}
