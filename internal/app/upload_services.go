package app

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// uploadService implements the UploadService interface
type uploadService struct {
	repo      uploads.UploadRepository
	connector uploads.UploadConnector
	audit     auditlogs.AuditLogService
	settings  config.UploadSettings
	logger    logger.Logger
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(
	repo uploads.UploadRepository,
	connector uploads.UploadConnector,
	audit auditlogs.AuditLogService,
	settings *config.UploadSettings,
	logger logger.Logger,
) (uploads.UploadService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &uploadService{
		repo:      repo,
		connector: connector,
		audit:     audit,
		settings:  *settings,
		logger:    logger,
	}, nil
}

// Upload validates size and sniffed content type, stores the file under
// "<ksuid>-<sanitised name>" and persists its metadata.
func (s *uploadService) Upload(ctx context.Context, file *multipart.FileHeader, userID string) (*uploads.Upload, error) {
	if file == nil {
		return nil, errs.Invalid("file", "file is required")
	}
	if file.Size <= 0 {
		return nil, errs.Invalid("file", "file is empty")
	}
	if file.Size > s.settings.MaxSizeBytes {
		return nil, errs.Invalid("file", "file exceeds the maximum size of %d bytes", s.settings.MaxSizeBytes)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.settings.MaxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) == 0 {
		return nil, errs.Invalid("file", "file is empty")
	}
	if int64(len(data)) > s.settings.MaxSizeBytes {
		return nil, errs.Invalid("file", "file exceeds the maximum size of %d bytes", s.settings.MaxSizeBytes)
	}

	detected := mimetype.Detect(data)
	if !s.allowed(detected) {
		return nil, errs.Invalid("file", "file type %s is not allowed", detected.String())
	}
	mediaType, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		mediaType = detected.String()
	}

	originalName := strutil.Truncate(file.Filename, 255)
	if originalName == "" {
		originalName = "file" + detected.Extension()
	}
	fileName := ksuid.New().String() + "-" + strutil.SanitizeFileName(file.Filename, detected.Extension())
	fileName = strutil.Truncate(fileName, 255)

	if err := s.connector.Save(ctx, fileName, data); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	upload := &uploads.Upload{
		ID:           uuid.NewString(),
		FileName:     fileName,
		OriginalName: originalName,
		MimeType:     mediaType,
		Size:         int64(len(data)),
		URL:          s.publicURL(fileName),
		UserID:       userID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := upload.Validate(); err != nil {
		s.discard(ctx, fileName)
		return nil, err
	}
	if err := s.repo.Create(ctx, upload); err != nil {
		s.discard(ctx, fileName)
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionUploadCreated, auditlogs.ResourceUpload, upload.ID, map[string]interface{}{
		"file_name": upload.FileName,
		"mime_type": upload.MimeType,
		"size":      upload.Size,
	})
	s.logger.Info("Stored upload ", upload.FileName, " (", upload.MimeType, ", ", upload.Size, " bytes)")

	return upload, nil
}

// List returns uploads newest first
func (s *uploadService) List(ctx context.Context, query *uploads.UploadQuery) ([]*uploads.Upload, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, query)
}

// Delete removes the stored file and its metadata. A file already missing on disk is not an error.
func (s *uploadService) Delete(ctx context.Context, uploadID string) error {
	upload, err := s.repo.GetByID(ctx, uploadID)
	if err != nil {
		return err
	}

	if err := s.connector.Delete(ctx, upload.FileName); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	if err := s.repo.DeleteByID(ctx, uploadID); err != nil {
		return err
	}

	s.audit.Record(ctx, auditlogs.ActionUploadDeleted, auditlogs.ResourceUpload, uploadID, map[string]interface{}{"file_name": upload.FileName})
	return nil
}

func (s *uploadService) allowed(detected *mimetype.MIME) bool {
	for _, allowed := range s.settings.AllowedMimeTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

func (s *uploadService) publicURL(fileName string) string {
	if s.settings.PublicPath == "/" {
		return "/" + fileName
	}
	return s.settings.PublicPath + "/" + fileName
}

func (s *uploadService) discard(ctx context.Context, fileName string) {
	if err := s.connector.Delete(ctx, fileName); err != nil {
		s.logger.Warn("Failed to remove orphaned file ", fileName, ": ", err)
	}
}
