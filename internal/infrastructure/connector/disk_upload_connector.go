package connector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// diskUploadConnector stores uploaded files in a local directory
type diskUploadConnector struct {
	dir    string
	logger logger.Logger
}

// NewDiskUploadConnector creates the upload directory when missing and returns a connector writing into it
func NewDiskUploadConnector(dir string, logger logger.Logger) (uploads.UploadConnector, error) {
	if dir == "" {
		return nil, errors.New("upload directory must be set")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &diskUploadConnector{dir: dir, logger: logger}, nil
}

func (c *diskUploadConnector) path(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	return filepath.Join(c.dir, fileName), nil
}

func (c *diskUploadConnector) Save(ctx context.Context, fileName string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := c.path(fileName)
	if err != nil {
		return err
	}

	// O_EXCL so an existing file is never overwritten
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return fmt.Errorf("failed to close file: %w", err)
	}

	c.logger.Info("Stored upload ", fileName)
	return nil
}

func (c *diskUploadConnector) Delete(ctx context.Context, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := c.path(fileName)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	c.logger.Info("Deleted upload ", fileName)
	return nil
}
