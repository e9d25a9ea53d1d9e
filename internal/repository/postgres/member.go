package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/jackc/pgx/v5"
)

// MemberRepository handles workspace membership data access. The table holds
// a UNIQUE (workspace_id, user_id) constraint backing the one-row-per-pair
// invariant the service checks optimistically.
type MemberRepository struct {
	db *DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *DB) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `id, workspace_id, user_id, role, joined_at, updated_at`

func scanMember(row pgx.Row) (*domain.WorkspaceMember, error) {
	var member domain.WorkspaceMember
	err := row.Scan(
		&member.ID,
		&member.WorkspaceID,
		&member.UserID,
		&member.Role,
		&member.JoinedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindByID retrieves a membership by ID
func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*domain.WorkspaceMember, error) {
	query := `SELECT ` + memberColumns + ` FROM workspace_members WHERE id = $1`

	member, err := scanMember(r.db.conn(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// FindByWorkspaceIDAndUserID retrieves the membership of a user in a workspace
func (r *MemberRepository) FindByWorkspaceIDAndUserID(ctx context.Context, workspaceID, userID int64) (*domain.WorkspaceMember, error) {
	query := `SELECT ` + memberColumns + ` FROM workspace_members WHERE workspace_id = $1 AND user_id = $2`

	member, err := scanMember(r.db.conn(ctx).QueryRow(ctx, query, workspaceID, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// FindByWorkspaceID retrieves all members of a workspace
func (r *MemberRepository) FindByWorkspaceID(ctx context.Context, workspaceID int64) ([]domain.WorkspaceMember, error) {
	query := `SELECT ` + memberColumns + ` FROM workspace_members WHERE workspace_id = $1 ORDER BY joined_at`

	rows, err := r.db.conn(ctx).Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []domain.WorkspaceMember
	for rows.Next() {
		var member domain.WorkspaceMember
		if err := rows.Scan(
			&member.ID,
			&member.WorkspaceID,
			&member.UserID,
			&member.Role,
			&member.JoinedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// CountByWorkspaceID counts the members of a workspace
func (r *MemberRepository) CountByWorkspaceID(ctx context.Context, workspaceID int64) (int, error) {
	query := `SELECT COUNT(*) FROM workspace_members WHERE workspace_id = $1`

	var count int
	if err := r.db.conn(ctx).QueryRow(ctx, query, workspaceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

// Save inserts the membership when its ID is zero and updates it otherwise
func (r *MemberRepository) Save(ctx context.Context, member *domain.WorkspaceMember) error {
	if member.ID == 0 {
		query := `
			INSERT INTO workspace_members (workspace_id, user_id, role, joined_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := r.db.conn(ctx).QueryRow(ctx, query,
			member.WorkspaceID,
			member.UserID,
			member.Role,
			member.JoinedAt,
			member.UpdatedAt,
		).Scan(&member.ID)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
		return nil
	}

	query := `UPDATE workspace_members SET role = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.conn(ctx).Exec(ctx, query, member.ID, member.Role, member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// Delete removes a membership row
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM workspace_members WHERE id = $1`

	if _, err := r.db.conn(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
