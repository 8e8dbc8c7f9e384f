package leads

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Lead statuses
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusArchived  = "archived"
)

// Lead entity: a contact form submission
type Lead struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Name      string    `json:"name" validate:"required,min=1,max=120"`
	Email     string    `json:"email" validate:"required,email,max=254"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,max=40"`
	Company   *string   `json:"company,omitempty" validate:"omitempty,max=120"`
	Subject   *string   `json:"subject,omitempty" validate:"omitempty,max=200"`
	Message   string    `json:"message" validate:"required,min=1,max=5000"`
	Source    *string   `json:"source,omitempty" validate:"omitempty,max=100"`
	Status    string    `json:"status" validate:"required,oneof=new contacted qualified converted archived"`
	Notes     *string   `json:"notes,omitempty" validate:"omitempty,max=5000"`
	IPAddress string    `json:"ip_address" validate:"max=64"`
	UserAgent string    `json:"user_agent" validate:"max=500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate for validating Lead struct
func (l *Lead) Validate() error {
	return validators.ValidateStruct(l)
}

// LeadInput is a public contact form submission.
// Website is a honeypot field that humans never fill in.
type LeadInput struct {
	Name    string  `json:"name" validate:"required,min=1,max=120"`
	Email   string  `json:"email" validate:"required,email,max=254"`
	Phone   *string `json:"phone" validate:"omitempty,max=40"`
	Company *string `json:"company" validate:"omitempty,max=120"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"required,min=1,max=5000"`
	Source  *string `json:"source" validate:"omitempty,max=100"`
	Website string  `json:"website"`
}

// Validate for validating LeadInput struct
func (in *LeadInput) Validate() error {
	return validators.ValidateStruct(in)
}

// IsSpam reports whether the honeypot was filled
func (in *LeadInput) IsSpam() bool {
	return in.Website != ""
}

// LeadUpdate changes the pipeline status and notes of a lead
type LeadUpdate struct {
	Status *string `json:"status" validate:"omitempty,oneof=new contacted qualified converted archived"`
	Notes  *string `json:"notes" validate:"omitempty,max=5000"`
}

// Validate for validating LeadUpdate struct
func (in *LeadUpdate) Validate() error {
	return validators.ValidateStruct(in)
}

// LeadQuery filters lead listings
type LeadQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=new contacted qualified converted archived"`
	Search string `form:"search" validate:"max=200"`
	common.Page
}

// Validate for validating LeadQuery struct
func (q *LeadQuery) Validate() error {
	return validators.ValidateStruct(q)
}
