package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/backoffice/pkg/result"
)

// Error codes emitted by the uploads module.
const (
	ErrInvalidUploadData   = "INVALID_UPLOAD_DATA"
	ErrUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	ErrUploadFailed        = "UPLOAD_FAILED"
	ErrFileNotFound        = "FILE_NOT_FOUND"
	ErrDeleteFailed        = "DELETE_FAILED"
)

// UploadedFile describes a stored file.
type UploadedFile struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// Service stores uploaded images on local disk under a generated name.
type Service struct {
	logger    *zap.Logger
	dir       string
	urlPrefix string
	maxBytes  int64
}

// NewService creates an uploads service and ensures the storage
// directory exists. maxSizeMB of 0 defaults to 10.
func NewService(logger *zap.Logger, dir, urlPrefix string, maxSizeMB int64) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	if maxSizeMB == 0 {
		maxSizeMB = 10
	}
	return &Service{
		logger:    logger,
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxSizeMB << 20,
	}, nil
}

// Dir returns the storage directory, used for static file serving.
func (s *Service) Dir() string {
	return s.dir
}

// SaveImage persists an image buffer under a timestamped name and returns
// its public URL. Non-image content types are rejected.
func (s *Service) SaveImage(data []byte, originalName, mimeType string) result.Result {
	if len(data) == 0 || originalName == "" {
		return result.Fail(ErrInvalidUploadData)
	}
	if int64(len(data)) > s.maxBytes {
		return result.Fail(ErrInvalidUploadData)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return result.Fail(ErrUnsupportedFileType)
	}

	// Base keeps path separators out of the generated name.
	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	path := filepath.Join(s.dir, fileName)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("failed to write upload", zap.String("path", path), zap.Error(err))
		return result.Fail(ErrUploadFailed)
	}

	return result.OK(UploadedFile{
		FileName: fileName,
		FileURL:  s.urlPrefix + "/" + fileName,
		MimeType: mimeType,
		Size:     int64(len(data)),
	})
}

// DeleteFile removes a previously stored file by name.
func (s *Service) DeleteFile(fileName string) result.Result {
	path := filepath.Join(s.dir, filepath.Base(fileName))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return result.Fail(ErrFileNotFound)
	}
	if err := os.Remove(path); err != nil {
		s.logger.Error("failed to delete upload", zap.String("path", path), zap.Error(err))
		return result.Fail(ErrDeleteFailed)
	}
	return result.OK(map[string]string{"fileName": fileName})
}
