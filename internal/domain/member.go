package domain

import (
	"context"
	"time"
)

// WorkspaceRole is the closed set of roles a member can hold.
type WorkspaceRole string

const (
	RoleOwner  WorkspaceRole = "OWNER"
	RoleAdmin  WorkspaceRole = "ADMIN"
	RoleEditor WorkspaceRole = "EDITOR"
	RoleViewer WorkspaceRole = "VIEWER"
)

// IsValid reports whether the role is one of the known values.
func (r WorkspaceRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// ParseRole converts a raw string into a WorkspaceRole.
func ParseRole(s string) (WorkspaceRole, error) {
	role := WorkspaceRole(s)
	if !role.IsValid() {
		return "", NewValidationError("role", "unknown workspace role: "+s)
	}
	return role, nil
}

// WorkspaceMember binds a user to a workspace with a role. It is its own
// aggregate: it references the workspace by id instead of living inside it.
// Uniqueness of (WorkspaceID, UserID) is enforced by the store, not here.
type WorkspaceMember struct {
	ID          int64         `json:"id"`
	WorkspaceID int64         `json:"workspace_id"`
	UserID      int64         `json:"user_id"`
	Role        WorkspaceRole `json:"role"`
	JoinedAt    time.Time     `json:"joined_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewWorkspaceMember builds a membership. Both ids must be positive and the
// role must be a known value.
func NewWorkspaceMember(workspaceID, userID int64, role WorkspaceRole) (*WorkspaceMember, error) {
	if workspaceID <= 0 {
		return nil, NewValidationError("workspace_id", "workspace id is required and must be positive")
	}
	if userID <= 0 {
		return nil, NewValidationError("user_id", "user id is required and must be positive")
	}
	if !role.IsValid() {
		return nil, NewValidationError("role", "role is required")
	}

	now := time.Now()
	return &WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		JoinedAt:    now,
		UpdatedAt:   now,
	}, nil
}

// UpdateRole overwrites the role unconditionally. Assigning the same role is
// allowed and still bumps UpdatedAt.
func (m *WorkspaceMember) UpdateRole(newRole WorkspaceRole) error {
	if !newRole.IsValid() {
		return NewValidationError("role", "unknown workspace role: "+string(newRole))
	}
	m.Role = newRole
	m.UpdatedAt = time.Now()
	return nil
}

// MemberAdd represents membership creation data.
type MemberAdd struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Role   string `json:"role" validate:"required,oneof=OWNER ADMIN EDITOR VIEWER"`
}

// MemberRoleUpdate represents a role change.
type MemberRoleUpdate struct {
	Role string `json:"role" validate:"required,oneof=OWNER ADMIN EDITOR VIEWER"`
}

// MemberRepository is the persistence port for workspace memberships.
// FindByWorkspaceIDAndUserID backs the one-row-per-pair invariant.
type MemberRepository interface {
	FindByID(ctx context.Context, id int64) (*WorkspaceMember, error)
	FindByWorkspaceIDAndUserID(ctx context.Context, workspaceID, userID int64) (*WorkspaceMember, error)
	FindByWorkspaceID(ctx context.Context, workspaceID int64) ([]WorkspaceMember, error)
	CountByWorkspaceID(ctx context.Context, workspaceID int64) (int, error)
	Save(ctx context.Context, member *WorkspaceMember) error
	Delete(ctx context.Context, id int64) error
}
