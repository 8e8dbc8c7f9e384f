package notifications

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Notification types
const (
	TypeLeadCreated    = "lead.created"
	TypeCommentCreated = "comment.created"
	TypePostPublished  = "post.published"
)

// Notification entity, owned by a single user
type Notification struct {
	ID        string     `json:"id" validate:"required,uuid4"`
	UserID    string     `json:"user_id" validate:"required,uuid4"`
	Type      string     `json:"type" validate:"required,max=50"`
	Title     string     `json:"title" validate:"required,max=200"`
	Message   string     `json:"message" validate:"max=1000"`
	Link      *string    `json:"link,omitempty" validate:"omitempty,max=500"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return validators.ValidateStruct(n)
}

// NotificationQuery filters a user's notifications
type NotificationQuery struct {
	UserID string `form:"-" validate:"required,uuid4"`
	Unread bool   `form:"unread"`
	common.Page
}

// Validate for validating NotificationQuery struct
func (q *NotificationQuery) Validate() error {
	return validators.ValidateStruct(q)
}
