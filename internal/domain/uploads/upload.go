package uploads

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Upload entity: metadata of a stored file
type Upload struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	FileName     string    `json:"file_name" validate:"required,min=1,max=255"`
	OriginalName string    `json:"original_name" validate:"required,min=1,max=255"`
	MimeType     string    `json:"mime_type" validate:"required,max=100"`
	Size         int64     `json:"size" validate:"required,min=1"`
	URL          string    `json:"url" validate:"required,max=500"`
	UserID       string    `json:"user_id" validate:"required,uuid4"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate for validating Upload struct
func (u *Upload) Validate() error {
	return validators.ValidateStruct(u)
}

// UploadQuery filters upload listings
type UploadQuery struct {
	MimeType string `form:"mime_type" validate:"max=100"`
	common.Page
}

// Validate for validating UploadQuery struct
func (q *UploadQuery) Validate() error {
	return validators.ValidateStruct(q)
}
