package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dgarciab/formspace/internal/api/response"
	"github.com/dgarciab/formspace/internal/domain"
	"github.com/dgarciab/formspace/internal/service"
)

// MemberHandler handles workspace membership endpoints
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Add handles joining a user to a workspace
func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	var input domain.MemberAdd
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	member, err := h.memberService.Add(r.Context(), workspaceID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Created(w, member)
}

// List handles listing workspace members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	members, err := h.memberService.List(r.Context(), workspaceID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, members)
}

// Count handles counting workspace members
func (h *MemberHandler) Count(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	count, err := h.memberService.Count(r.Context(), workspaceID)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, map[string]int{"count": count})
}

// UpdateRole handles changing a member's role
func (h *MemberHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	userID, ok := urlID(r, "userID")
	if !ok {
		response.BadRequest(w, "invalid user ID")
		return
	}

	var input domain.MemberRoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	member, err := h.memberService.UpdateRole(r.Context(), workspaceID, userID, input)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.OK(w, member)
}

// Remove handles removing a member from a workspace
func (h *MemberHandler) Remove(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := urlID(r, "workspaceID")
	if !ok {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	userID, ok := urlID(r, "userID")
	if !ok {
		response.BadRequest(w, "invalid user ID")
		return
	}

	if err := h.memberService.Remove(r.Context(), workspaceID, userID); err != nil {
		response.DomainError(w, err)
		return
	}

	response.NoContent(w)
}
