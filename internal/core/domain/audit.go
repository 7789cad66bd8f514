package domain

import "time"

// Audit actions recorded by the async pipeline.
const (
	AuditUserSignup  = "user.signup"
	AuditUserSignin  = "user.signin"
	AuditUserSignout = "user.signout"
	AuditTodoCreated = "todo.created"
	AuditTodoUpdated = "todo.updated"
	AuditTodoToggled = "todo.toggled"
	AuditTodoDeleted = "todo.deleted"
)

// AuditEvent is a best-effort trail entry. SubjectID identifies the affected
// resource (a todo id, or the user id itself for auth actions).
type AuditEvent struct {
	ID        string
	UserID    string
	Action    string
	SubjectID string
	CreatedAt time.Time
}
