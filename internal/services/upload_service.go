package services

import (
	"context"
	"io"
	"strings"

	"github.com/abcmusiclibrary/backend/internal/apperrors"
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/policy"
	"github.com/abcmusiclibrary/backend/internal/storage"
	"go.uber.org/zap"
)

// allowedContentTypes maps each declared file type to the content types
// accepted for it. Anything outside this table is rejected.
var allowedContentTypes = map[string][]string{
	"pdf":   {"application/pdf"},
	"audio": {"audio/mpeg", "audio/mp3", "audio/wav"},
	"image": {"image/jpeg", "image/png", "image/webp"},
}

// uploadService implements the file upload gateway. The store keeps the
// blob; nothing about an upload is recorded anywhere else. Linking the
// returned URL to a catalog entry is the caller's separate step.
type uploadService struct {
	store  storage.ObjectStore
	logger *zap.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(store storage.ObjectStore, logger *zap.Logger) *uploadService {
	return &uploadService{
		store:  store,
		logger: logger,
	}
}

// Upload validates and stores a blob on behalf of the actor. Validation
// happens entirely before the store is touched: a rejected upload leaves
// no partial object behind.
func (s *uploadService) Upload(ctx context.Context, actor *models.User, fileType, filename, contentType string, size int64, r io.Reader) (*models.UploadResult, error) {
	if err := policy.Authorize(actor.Role, policy.OpCreateContent, actor.ID, ""); err != nil {
		return nil, err
	}

	allowed, ok := allowedContentTypes[fileType]
	if !ok {
		return nil, apperrors.Validationf("unknown file type %q", fileType)
	}
	if !contentTypeAllowed(contentType, allowed) {
		return nil, apperrors.Validationf("content type %q not allowed for file type %q", contentType, fileType)
	}
	if strings.TrimSpace(filename) == "" {
		return nil, apperrors.Validationf("filename cannot be empty")
	}
	if size <= 0 {
		return nil, apperrors.Validationf("file cannot be empty")
	}

	key := storage.DeriveKey(actor.ID, filename)
	url, err := s.store.Put(ctx, key, contentType, r)
	if err != nil {
		s.logger.Error("failed to store upload",
			zap.String("userId", actor.ID),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, apperrors.Upstream(err)
	}

	s.logger.Info("file uploaded",
		zap.String("userId", actor.ID),
		zap.String("key", key),
		zap.Int64("size", size),
	)

	return &models.UploadResult{
		Key:         key,
		URL:         url,
		Size:        size,
		ContentType: contentType,
	}, nil
}

func contentTypeAllowed(contentType string, allowed []string) bool {
	for _, a := range allowed {
		if contentType == a {
			return true
		}
	}
	return false
}
