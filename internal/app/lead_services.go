package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/google/uuid"
)

// leadService implements the LeadService interface
type leadService struct {
	repo      leads.LeadRepository
	audit     auditlogs.AuditLogService
	notifier  notifications.NotificationService
	publisher events.Publisher
	logger    logger.Logger
}

// NewLeadService creates a new instance of LeadService
func NewLeadService(
	repo leads.LeadRepository,
	audit auditlogs.AuditLogService,
	notifier notifications.NotificationService,
	publisher events.Publisher,
	logger logger.Logger,
) (leads.LeadService, error) {
	return &leadService{
		repo:      repo,
		audit:     audit,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Submit stores a contact form submission as a new lead and notifies the admins.
// Submissions with a filled honeypot are dropped before validation and yield (nil, nil).
func (s *leadService) Submit(ctx context.Context, in *leads.LeadInput, ipAddress, userAgent string) (*leads.Lead, error) {
	if in.IsSpam() {
		s.logger.Info("Dropped contact form submission with filled honeypot from ", ipAddress)
		return nil, nil
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lead := &leads.Lead{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     users.NormalizeEmail(in.Email),
		Phone:     in.Phone,
		Company:   in.Company,
		Subject:   in.Subject,
		Message:   strings.TrimSpace(in.Message),
		Source:    in.Source,
		Status:    leads.StatusNew,
		IPAddress: strutil.Truncate(ipAddress, 64),
		UserAgent: strutil.Truncate(userAgent, 500),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionLeadCreated, auditlogs.ResourceLead, lead.ID, map[string]interface{}{"email": lead.Email})

	title := fmt.Sprintf("New lead from %s", lead.Name)
	message := lead.Message
	if lead.Subject != nil && *lead.Subject != "" {
		message = *lead.Subject
	}
	if err := s.notifier.NotifyAdmins(ctx, notifications.TypeLeadCreated, title, message, stringPtr("/admin/leads/"+lead.ID)); err != nil {
		s.logger.Error("Failed to notify admins about lead ", lead.ID, ": ", err)
	}
	publishEvent(ctx, s.publisher, s.logger, events.SubjectLeadCreated, lead)

	return lead, nil
}

// List returns leads newest first
func (s *leadService) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Lead, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, query)
}

// GetByID returns a lead
func (s *leadService) GetByID(ctx context.Context, leadID string) (*leads.Lead, error) {
	return s.repo.GetByID(ctx, leadID)
}

// Update changes the status and notes of a lead
func (s *leadService) Update(ctx context.Context, leadID string, in *leads.LeadUpdate) (*leads.Lead, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	metadata := map[string]interface{}{}
	if in.Status != nil && *in.Status != lead.Status {
		metadata["from_status"] = lead.Status
		metadata["to_status"] = *in.Status
		lead.Status = *in.Status
	}
	if in.Notes != nil {
		lead.Notes = emptyToNil(*in.Notes)
		metadata["notes_changed"] = true
	}
	lead.UpdatedAt = time.Now().UTC()

	if err := lead.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionLeadUpdated, auditlogs.ResourceLead, lead.ID, metadata)
	return lead, nil
}

// Delete removes a lead
func (s *leadService) Delete(ctx context.Context, leadID string) error {
	if err := s.repo.DeleteByID(ctx, leadID); err != nil {
		return err
	}

	s.audit.Record(ctx, auditlogs.ActionLeadDeleted, auditlogs.ResourceLead, leadID, nil)
	return nil
}
