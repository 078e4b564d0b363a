package bootstrap

import "context"

// AuditLog records a lifecycle event of the process itself, like startup
// and shutdown. Request-level logging lives in the middleware.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
