package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/jackc/pgx/v5"
)

// WorkspaceRepository handles workspace data access
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

const workspaceColumns = `id, name, description, owner_id, active, archived, created_at, updated_at`

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var workspace domain.Workspace
	err := row.Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.Description,
		&workspace.OwnerID,
		&workspace.Active,
		&workspace.Archived,
		&workspace.CreatedAt,
		&workspace.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &workspace, nil
}

// FindByID retrieves a workspace by ID
func (r *WorkspaceRepository) FindByID(ctx context.Context, id int64) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE id = $1`

	workspace, err := scanWorkspace(r.db.conn(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return workspace, nil
}

// FindByName retrieves a workspace by its exact name
func (r *WorkspaceRepository) FindByName(ctx context.Context, name string) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE name = $1`

	workspace, err := scanWorkspace(r.db.conn(ctx).QueryRow(ctx, query, name))
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace by name: %w", err)
	}
	return workspace, nil
}

// FindByOwnerID retrieves all workspaces owned by a user
func (r *WorkspaceRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.conn(ctx).Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces by owner: %w", err)
	}
	defer rows.Close()

	return collectWorkspaces(rows)
}

// FindAll retrieves every workspace
func (r *WorkspaceRepository) FindAll(ctx context.Context) ([]domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces ORDER BY created_at DESC`

	rows, err := r.db.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	return collectWorkspaces(rows)
}

func collectWorkspaces(rows pgx.Rows) ([]domain.Workspace, error) {
	var workspaces []domain.Workspace
	for rows.Next() {
		var workspace domain.Workspace
		if err := rows.Scan(
			&workspace.ID,
			&workspace.Name,
			&workspace.Description,
			&workspace.OwnerID,
			&workspace.Active,
			&workspace.Archived,
			&workspace.CreatedAt,
			&workspace.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, workspace)
	}
	return workspaces, rows.Err()
}

// Save inserts the workspace when its ID is zero and updates it otherwise.
// On insert the generated ID is written back into the entity.
func (r *WorkspaceRepository) Save(ctx context.Context, workspace *domain.Workspace) error {
	if workspace.ID == 0 {
		query := `
			INSERT INTO workspaces (name, description, owner_id, active, archived, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err := r.db.conn(ctx).QueryRow(ctx, query,
			workspace.Name,
			workspace.Description,
			workspace.OwnerID,
			workspace.Active,
			workspace.Archived,
			workspace.CreatedAt,
			workspace.UpdatedAt,
		).Scan(&workspace.ID)
		if err != nil {
			return fmt.Errorf("failed to insert workspace: %w", err)
		}
		return nil
	}

	query := `
		UPDATE workspaces
		SET name = $2, description = $3, owner_id = $4, active = $5, archived = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.db.conn(ctx).Exec(ctx, query,
		workspace.ID,
		workspace.Name,
		workspace.Description,
		workspace.OwnerID,
		workspace.Active,
		workspace.Archived,
		workspace.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}
	return nil
}

// Delete removes a workspace row
func (r *WorkspaceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM workspaces WHERE id = $1`

	if _, err := r.db.conn(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}

// Exists checks whether a workspace row exists
func (r *WorkspaceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM workspaces WHERE id = $1)`

	var exists bool
	if err := r.db.conn(ctx).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check workspace: %w", err)
	}
	return exists, nil
}
