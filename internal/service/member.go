package service

import (
	"context"
	"fmt"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/rs/zerolog/log"
)

// MemberService orchestrates workspace membership use cases. The
// one-row-per-(workspace, user) invariant lives here and in the store's
// unique constraint, not in the entity.
type MemberService struct {
	workspaces domain.WorkspaceRepository
	members    domain.MemberRepository
	events     domain.EventPublisher
	tx         Transactor
}

// NewMemberService creates a new member service.
func NewMemberService(workspaces domain.WorkspaceRepository, members domain.MemberRepository, events domain.EventPublisher, tx Transactor) *MemberService {
	return &MemberService{workspaces: workspaces, members: members, events: events, tx: tx}
}

// Add joins a user to a workspace. Fails when the workspace is missing or the
// user already is a member.
func (s *MemberService) Add(ctx context.Context, workspaceID int64, input domain.MemberAdd) (*domain.WorkspaceMember, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	member, err := domain.NewWorkspaceMember(workspaceID, input.UserID, role)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		workspace, err := s.workspaces.FindByID(ctx, workspaceID)
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace == nil {
			return domain.NewNotFoundError("workspace", workspaceID)
		}

		existing, err := s.members.FindByWorkspaceIDAndUserID(ctx, workspaceID, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if existing != nil {
			return domain.NewDuplicateError(fmt.Sprintf("user %d is already a member of workspace %d", input.UserID, workspaceID))
		}

		if err := s.members.Save(ctx, member); err != nil {
			return fmt.Errorf("failed to save member: %w", err)
		}

		return s.events.Publish(ctx, domain.MemberAdded{
			MemberID:    member.ID,
			WorkspaceID: member.WorkspaceID,
			UserID:      member.UserID,
			Role:        member.Role,
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("workspace_id", member.WorkspaceID).
		Int64("user_id", member.UserID).
		Str("role", string(member.Role)).
		Msg("member added to workspace")
	return member, nil
}

// GetByID loads a membership row.
func (s *MemberService) GetByID(ctx context.Context, id int64) (*domain.WorkspaceMember, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, domain.NewNotFoundError("member", id)
	}
	return member, nil
}

// List returns the members of a workspace.
func (s *MemberService) List(ctx context.Context, workspaceID int64) ([]domain.WorkspaceMember, error) {
	exists, err := s.workspaces.Exists(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("workspace", workspaceID)
	}

	members, err := s.members.FindByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Count returns the number of members in a workspace.
func (s *MemberService) Count(ctx context.Context, workspaceID int64) (int, error) {
	count, err := s.members.CountByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

// UpdateRole overwrites a member's role. Re-assigning the current role is
// allowed and still moves updated_at.
func (s *MemberService) UpdateRole(ctx context.Context, workspaceID, userID int64, input domain.MemberRoleUpdate) (*domain.WorkspaceMember, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	var member *domain.WorkspaceMember
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		member, err = s.members.FindByWorkspaceIDAndUserID(ctx, workspaceID, userID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.NewNotFoundByError("member", fmt.Sprintf("user %d in workspace %d", userID, workspaceID))
		}

		if err := member.UpdateRole(role); err != nil {
			return err
		}

		if err := s.members.Save(ctx, member); err != nil {
			return fmt.Errorf("failed to save member: %w", err)
		}

		return s.events.Publish(ctx, domain.MemberRoleUpdated{
			MemberID:    member.ID,
			WorkspaceID: member.WorkspaceID,
			UserID:      member.UserID,
			Role:        member.Role,
		})
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

// Remove physically deletes a membership row.
func (s *MemberService) Remove(ctx context.Context, workspaceID, userID int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.members.FindByWorkspaceIDAndUserID(ctx, workspaceID, userID)
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member == nil {
			return domain.NewNotFoundByError("member", fmt.Sprintf("user %d in workspace %d", userID, workspaceID))
		}

		if err := s.members.Delete(ctx, member.ID); err != nil {
			return fmt.Errorf("failed to delete member: %w", err)
		}

		return s.events.Publish(ctx, domain.MemberRemoved{
			MemberID:    member.ID,
			WorkspaceID: member.WorkspaceID,
			UserID:      member.UserID,
		})
	})
}
