package uploads

import (
	"context"
	"mime/multipart"
)

// UploadService defines file upload operations.
type UploadService interface {
	// Upload checks size and sniffed MIME type, stores the file under a
	// sanitised unique name and persists its metadata.
	Upload(ctx context.Context, file *multipart.FileHeader, userID string) (*Upload, error)
	List(ctx context.Context, query *UploadQuery) ([]*Upload, int64, error)
	// Delete removes the stored file and its metadata
	Delete(ctx context.Context, uploadID string) error
}

// UploadRepository defines the interface for Upload-related operations
type UploadRepository interface {
	Create(ctx context.Context, upload *Upload) error
	GetByID(ctx context.Context, uploadID string) (*Upload, error)
	DeleteByID(ctx context.Context, uploadID string) error
	List(ctx context.Context, query *UploadQuery) ([]*Upload, int64, error)
}

// UploadConnector stores file content
type UploadConnector interface {
	// Save writes data under fileName
	Save(ctx context.Context, fileName string, data []byte) error
	// Delete removes fileName; a missing file is not an error
	Delete(ctx context.Context, fileName string) error
}
