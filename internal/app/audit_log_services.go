package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/google/uuid"
)

// auditLogService implements the AuditLogService interface
type auditLogService struct {
	repo   auditlogs.AuditLogRepository
	logger logger.Logger
}

// NewAuditLogService creates a new instance of AuditLogService
func NewAuditLogService(repo auditlogs.AuditLogRepository, logger logger.Logger) (auditlogs.AuditLogService, error) {
	return &auditLogService{
		repo:   repo,
		logger: logger,
	}, nil
}

// Record writes an audit entry for the actor stored in ctx. A missing actor records a system action.
func (s *auditLogService) Record(ctx context.Context, action, resourceType, resourceID string, metadata map[string]interface{}) {
	entry := &auditlogs.AuditLog{
		ID:           uuid.NewString(),
		Action:       action,
		ResourceType: resourceType,
		Metadata:     metadata,
		CreatedAt:    time.Now().UTC(),
	}
	if resourceID != "" {
		entry.ResourceID = stringPtr(resourceID)
	}
	if actor := auditlogs.ActorFromContext(ctx); actor != nil {
		if actor.UserID != "" {
			entry.UserID = stringPtr(actor.UserID)
		}
		entry.IPAddress = strutil.Truncate(actor.IPAddress, 64)
		entry.UserAgent = strutil.Truncate(actor.UserAgent, 500)
	}

	if err := entry.Validate(); err != nil {
		s.logger.Error("Invalid audit entry for ", action, ": ", err)
		return
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record audit entry for ", action, ": ", err)
	}
}

// List returns audit entries newest first
func (s *auditLogService) List(ctx context.Context, query *auditlogs.AuditLogQuery) ([]*auditlogs.AuditLog, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, 0, errs.Invalid("from", "from must not be after to")
	}

	entries, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, total, nil
}
