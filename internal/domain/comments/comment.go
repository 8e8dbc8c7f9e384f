package comments

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Comment statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusSpam     = "spam"
)

// Comment entity. Replies reference their parent on the same post.
type Comment struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	PostID      string    `json:"post_id" validate:"required,uuid4"`
	ParentID    *string   `json:"parent_id,omitempty" validate:"omitempty,uuid4"`
	AuthorName  string    `json:"author_name" validate:"required,min=1,max=80"`
	AuthorEmail string    `json:"author_email" validate:"required,email,max=254"`
	Content     string    `json:"content" validate:"required,min=1,max=2000"`
	Status      string    `json:"status" validate:"required,oneof=pending approved rejected spam"`
	IPAddress   string    `json:"ip_address" validate:"max=64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate for validating Comment struct
func (c *Comment) Validate() error {
	return validators.ValidateStruct(c)
}

// CommentInput is a public comment submission
type CommentInput struct {
	PostID      string  `json:"post_id" validate:"required,uuid4"`
	ParentID    *string `json:"parent_id" validate:"omitempty,uuid4"`
	AuthorName  string  `json:"author_name" validate:"required,min=1,max=80"`
	AuthorEmail string  `json:"author_email" validate:"required,email,max=254"`
	Content     string  `json:"content" validate:"required,min=1,max=2000"`
}

// Validate for validating CommentInput struct
func (in *CommentInput) Validate() error {
	return validators.ValidateStruct(in)
}

// StatusUpdate moderates a comment
type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected spam"`
}

// Validate for validating StatusUpdate struct
func (in *StatusUpdate) Validate() error {
	return validators.ValidateStruct(in)
}

// CommentQuery filters comment listings
type CommentQuery struct {
	PostID string `form:"post_id" validate:"omitempty,uuid4"`
	Status string `form:"status" validate:"omitempty,oneof=pending approved rejected spam"`
	common.Page
}

// Validate for validating CommentQuery struct
func (q *CommentQuery) Validate() error {
	return validators.ValidateStruct(q)
}
