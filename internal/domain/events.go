package domain

// EventKind identifies a domain event variant.
type EventKind string

const (
	EventWorkspaceCreated  EventKind = "workspace.created"
	EventWorkspaceUpdated  EventKind = "workspace.updated"
	EventWorkspaceArchived EventKind = "workspace.archived"
	EventWorkspaceDeleted  EventKind = "workspace.deleted"
	EventMemberAdded       EventKind = "workspace.member_added"
	EventMemberRoleUpdated EventKind = "workspace.member_role_updated"
	EventMemberRemoved     EventKind = "workspace.member_removed"
	EventFormCreated       EventKind = "form.created"
	EventFormUpdated       EventKind = "form.updated"
	EventFormPublished     EventKind = "form.published"
	EventFormArchived      EventKind = "form.archived"
)

// Event is an immutable fact emitted after a successful state change. The set
// of variants is closed: only the types below implement it.
type Event interface {
	Kind() EventKind
	AggregateID() int64
	isDomainEvent()
}

type WorkspaceCreated struct {
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
	OwnerID     int64  `json:"owner_id"`
}

type WorkspaceUpdated struct {
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
}

type WorkspaceArchived struct {
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
}

type WorkspaceDeleted struct {
	WorkspaceID int64 `json:"workspace_id"`
}

type MemberAdded struct {
	MemberID    int64         `json:"member_id"`
	WorkspaceID int64         `json:"workspace_id"`
	UserID      int64         `json:"user_id"`
	Role        WorkspaceRole `json:"role"`
}

type MemberRoleUpdated struct {
	MemberID    int64         `json:"member_id"`
	WorkspaceID int64         `json:"workspace_id"`
	UserID      int64         `json:"user_id"`
	Role        WorkspaceRole `json:"role"`
}

type MemberRemoved struct {
	MemberID    int64 `json:"member_id"`
	WorkspaceID int64 `json:"workspace_id"`
	UserID      int64 `json:"user_id"`
}

type FormCreated struct {
	FormID      int64  `json:"form_id"`
	WorkspaceID int64  `json:"workspace_id"`
	Title       string `json:"title"`
}

type FormUpdated struct {
	FormID      int64  `json:"form_id"`
	WorkspaceID int64  `json:"workspace_id"`
	Title       string `json:"title"`
}

type FormPublishedEvent struct {
	FormID      int64 `json:"form_id"`
	WorkspaceID int64 `json:"workspace_id"`
}

type FormArchivedEvent struct {
	FormID      int64 `json:"form_id"`
	WorkspaceID int64 `json:"workspace_id"`
}

func (e WorkspaceCreated) Kind() EventKind  { return EventWorkspaceCreated }
func (e WorkspaceUpdated) Kind() EventKind  { return EventWorkspaceUpdated }
func (e WorkspaceArchived) Kind() EventKind { return EventWorkspaceArchived }
func (e WorkspaceDeleted) Kind() EventKind  { return EventWorkspaceDeleted }
func (e MemberAdded) Kind() EventKind       { return EventMemberAdded }
func (e MemberRoleUpdated) Kind() EventKind { return EventMemberRoleUpdated }
func (e MemberRemoved) Kind() EventKind     { return EventMemberRemoved }
func (e FormCreated) Kind() EventKind       { return EventFormCreated }
func (e FormUpdated) Kind() EventKind       { return EventFormUpdated }
func (e FormPublishedEvent) Kind() EventKind     { return EventFormPublished }
func (e FormArchivedEvent) Kind() EventKind      { return EventFormArchived }

func (e WorkspaceCreated) AggregateID() int64  { return e.WorkspaceID }
func (e WorkspaceUpdated) AggregateID() int64  { return e.WorkspaceID }
func (e WorkspaceArchived) AggregateID() int64 { return e.WorkspaceID }
func (e WorkspaceDeleted) AggregateID() int64  { return e.WorkspaceID }
func (e MemberAdded) AggregateID() int64       { return e.MemberID }
func (e MemberRoleUpdated) AggregateID() int64 { return e.MemberID }
func (e MemberRemoved) AggregateID() int64     { return e.MemberID }
func (e FormCreated) AggregateID() int64       { return e.FormID }
func (e FormUpdated) AggregateID() int64       { return e.FormID }
func (e FormPublishedEvent) AggregateID() int64     { return e.FormID }
func (e FormArchivedEvent) AggregateID() int64      { return e.FormID }

func (WorkspaceCreated) isDomainEvent()  {}
func (WorkspaceUpdated) isDomainEvent()  {}
func (WorkspaceArchived) isDomainEvent() {}
func (WorkspaceDeleted) isDomainEvent()  {}
func (MemberAdded) isDomainEvent()       {}
func (MemberRoleUpdated) isDomainEvent() {}
func (MemberRemoved) isDomainEvent()     {}
func (FormCreated) isDomainEvent()       {}
func (FormUpdated) isDomainEvent()       {}
func (FormPublishedEvent) isDomainEvent()     {}
func (FormArchivedEvent) isDomainEvent()      {}
