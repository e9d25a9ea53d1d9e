package domain

import (
	"context"
	"time"
)

// Workspace is a named container owning forms and memberships. Identity is
// assigned by the store on first save; ID == 0 means not yet persisted.
type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"owner_id"`
	Active      bool      `json:"active"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewWorkspace builds an active, unarchived workspace. Name, description and
// owner rules are enforced here; name uniqueness is a repository concern.
func NewWorkspace(name, description string, ownerID int64) (*Workspace, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	if err := ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Workspace{
		Name:        NormalizeName(name),
		Description: description,
		OwnerID:     ownerID,
		Active:      true,
		Archived:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Archive moves the workspace to its terminal state. Archiving twice is a
// business-rule violation, not a no-op.
func (w *Workspace) Archive() error {
	if w.Archived {
		return NewIllegalStateError("workspace is already archived")
	}
	w.Archived = true
	w.Active = false
	w.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo replaces name, description and owner after re-running the field
// rules. Uniqueness of the new name is checked by the use case.
func (w *Workspace) UpdateInfo(name, description string, ownerID int64) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateDescription(description); err != nil {
		return err
	}
	if err := ValidateOwnerID(ownerID); err != nil {
		return err
	}

	w.Name = NormalizeName(name)
	w.Description = description
	w.OwnerID = ownerID
	w.UpdatedAt = time.Now()
	return nil
}

// Deactivate is the logical delete: the row stays, active flips off.
func (w *Workspace) Deactivate() {
	w.Active = false
	w.UpdatedAt = time.Now()
}

// WorkspaceCreate represents workspace creation data.
type WorkspaceCreate struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	OwnerID     int64  `json:"owner_id" validate:"required,gt=0"`
}

// WorkspaceUpdate represents workspace update data. All fields are replaced.
type WorkspaceUpdate struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	OwnerID     int64  `json:"owner_id" validate:"required,gt=0"`
}

// WorkspaceRepository is the persistence port for workspaces. Save inserts
// when ID is zero and updates otherwise; lookups return (nil, nil) on no row.
type WorkspaceRepository interface {
	FindByID(ctx context.Context, id int64) (*Workspace, error)
	FindByName(ctx context.Context, name string) (*Workspace, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]Workspace, error)
	FindAll(ctx context.Context) ([]Workspace, error)
	Save(ctx context.Context, workspace *Workspace) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventPublisher is the outbound port for domain events. Publishing is
// fire-and-forget from the core's point of view; delivery guarantees belong
// to the transport.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
