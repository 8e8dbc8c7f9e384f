package auditlogs

import "context"

// AuditLogService records and lists audit entries
type AuditLogService interface {
	// Record writes an entry for the actor in ctx. Failures are logged, never returned.
	Record(ctx context.Context, action, resourceType, resourceID string, metadata map[string]interface{})
	// List returns entries newest first
	List(ctx context.Context, query *AuditLogQuery) ([]*AuditLog, int64, error)
}

// AuditLogRepository defines the interface for AuditLog-related operations
type AuditLogRepository interface {
	Create(ctx context.Context, entry *AuditLog) error
	List(ctx context.Context, query *AuditLogQuery) ([]*AuditLog, int64, error)
}
