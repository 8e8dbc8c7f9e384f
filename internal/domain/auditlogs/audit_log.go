package auditlogs

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Actions recorded by the services
const (
	ActionLogin           = "auth.login"
	ActionRegister        = "auth.register"
	ActionPasswordChanged = "auth.password_changed"

	ActionPostCreated       = "post.created"
	ActionPostUpdated       = "post.updated"
	ActionPostDeleted       = "post.deleted"
	ActionPostPublished     = "post.published"
	ActionPostUnpublished   = "post.unpublished"
	ActionPostAutoPublished = "post.auto_published"

	ActionProjectCreated = "project.created"
	ActionProjectUpdated = "project.updated"
	ActionProjectDeleted = "project.deleted"

	ActionLeadCreated = "lead.created"
	ActionLeadUpdated = "lead.updated"
	ActionLeadDeleted = "lead.deleted"

	ActionCommentModerated = "comment.moderated"
	ActionCommentDeleted   = "comment.deleted"

	ActionUploadCreated = "upload.created"
	ActionUploadDeleted = "upload.deleted"
)

// Resource types
const (
	ResourceUser    = "user"
	ResourcePost    = "post"
	ResourceProject = "project"
	ResourceLead    = "lead"
	ResourceComment = "comment"
	ResourceUpload  = "upload"
)

// AuditLog entity. A nil UserID marks a system action.
type AuditLog struct {
	ID           string                 `json:"id" validate:"required,uuid4"`
	UserID       *string                `json:"user_id,omitempty" validate:"omitempty,uuid4"`
	Action       string                 `json:"action" validate:"required,max=100"`
	ResourceType string                 `json:"resource_type" validate:"required,max=50"`
	ResourceID   *string                `json:"resource_id,omitempty" validate:"omitempty,max=100"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	IPAddress    string                 `json:"ip_address" validate:"max=64"`
	UserAgent    string                 `json:"user_agent" validate:"max=500"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Validate for validating AuditLog struct
func (a *AuditLog) Validate() error {
	return validators.ValidateStruct(a)
}

// AuditLogQuery filters audit log listings
type AuditLogQuery struct {
	UserID       string     `form:"user_id" validate:"omitempty,uuid4"`
	Action       string     `form:"action" validate:"max=100"`
	ResourceType string     `form:"resource_type" validate:"max=50"`
	ResourceID   string     `form:"resource_id" validate:"max=100"`
	From         *time.Time `form:"-"`
	To           *time.Time `form:"-"`
	common.Page
}

// Validate for validating AuditLogQuery struct
func (q *AuditLogQuery) Validate() error {
	return validators.ValidateStruct(q)
}
