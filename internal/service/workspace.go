package service

import (
	"context"
	"fmt"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/rs/zerolog/log"
)

// WorkspaceService orchestrates workspace use cases: load, validate, check
// cross-aggregate invariants, mutate through the aggregate, persist, emit one
// event per successful mutation.
type WorkspaceService struct {
	workspaces domain.WorkspaceRepository
	events     domain.EventPublisher
	tx         Transactor
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(workspaces domain.WorkspaceRepository, events domain.EventPublisher, tx Transactor) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces, events: events, tx: tx}
}

// Create validates the command, enforces name uniqueness and persists a new
// active workspace.
func (s *WorkspaceService) Create(ctx context.Context, input domain.WorkspaceCreate) (*domain.Workspace, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	workspace, err := domain.NewWorkspace(input.Name, input.Description, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateWorkspace(workspace); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.workspaces.FindByName(ctx, workspace.Name)
		if err != nil {
			return fmt.Errorf("failed to check workspace name: %w", err)
		}
		if existing != nil {
			return domain.NewDuplicateError("workspace with name " + workspace.Name + " already exists")
		}

		if err := s.workspaces.Save(ctx, workspace); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}

		return s.events.Publish(ctx, domain.WorkspaceCreated{
			WorkspaceID: workspace.ID,
			Name:        workspace.Name,
			OwnerID:     workspace.OwnerID,
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("workspace_id", workspace.ID).Str("name", workspace.Name).Msg("workspace created")
	return workspace, nil
}

// GetByID loads a workspace or fails with a not-found error.
func (s *WorkspaceService) GetByID(ctx context.Context, id int64) (*domain.Workspace, error) {
	workspace, err := s.workspaces.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, domain.NewNotFoundError("workspace", id)
	}
	return workspace, nil
}

// List returns every workspace.
func (s *WorkspaceService) List(ctx context.Context) ([]domain.Workspace, error) {
	workspaces, err := s.workspaces.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// ListByOwner returns the workspaces owned by a user.
func (s *WorkspaceService) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Workspace, error) {
	workspaces, err := s.workspaces.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces by owner: %w", err)
	}
	return workspaces, nil
}

// Update renames a workspace after re-checking name uniqueness against other
// rows.
func (s *WorkspaceService) Update(ctx context.Context, id int64, input domain.WorkspaceUpdate) (*domain.Workspace, error) {
	var workspace *domain.Workspace

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		workspace, err = s.workspaces.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace == nil {
			return domain.NewNotFoundError("workspace", id)
		}

		sameName, err := s.workspaces.FindByName(ctx, domain.NormalizeName(input.Name))
		if err != nil {
			return fmt.Errorf("failed to check workspace name: %w", err)
		}
		if sameName != nil && sameName.ID != workspace.ID {
			return domain.NewDuplicateError("workspace with name " + input.Name + " already exists")
		}

		if err := workspace.UpdateInfo(input.Name, input.Description, input.OwnerID); err != nil {
			return err
		}

		if err := s.workspaces.Save(ctx, workspace); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}

		return s.events.Publish(ctx, domain.WorkspaceUpdated{
			WorkspaceID: workspace.ID,
			Name:        workspace.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	return workspace, nil
}

// Archive moves a workspace to its terminal archived state.
func (s *WorkspaceService) Archive(ctx context.Context, id int64) (*domain.Workspace, error) {
	var workspace *domain.Workspace

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		workspace, err = s.workspaces.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace == nil {
			return domain.NewNotFoundError("workspace", id)
		}

		if err := workspace.Archive(); err != nil {
			return err
		}

		if err := s.workspaces.Save(ctx, workspace); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}

		return s.events.Publish(ctx, domain.WorkspaceArchived{
			WorkspaceID: workspace.ID,
			Name:        workspace.Name,
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("workspace_id", workspace.ID).Msg("workspace archived")
	return workspace, nil
}

// Delete performs the logical delete: the workspace stays on record with
// active switched off.
func (s *WorkspaceService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		workspace, err := s.workspaces.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace == nil {
			return domain.NewNotFoundError("workspace", id)
		}

		workspace.Deactivate()

		if err := s.workspaces.Save(ctx, workspace); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}

		return s.events.Publish(ctx, domain.WorkspaceDeleted{WorkspaceID: workspace.ID})
	})
}
