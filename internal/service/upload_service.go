package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
	"github.com/sefazor/galbi-backend/pkg/storage"
	"github.com/sefazor/galbi-backend/pkg/utils"
	"go.uber.org/zap"
)

type UploadService struct {
	store    *repository.Store
	files    storage.FileStorage
	maxBytes int64
	logger   *zap.Logger
}

func NewUploadService(store *repository.Store, files storage.FileStorage, maxBytes int64, logger *zap.Logger) *UploadService {
	return &UploadService{
		store:    store,
		files:    files,
		maxBytes: maxBytes,
		logger:   logger.Named("upload"),
	}
}

// Upload stores an image for userID. The content type is sniffed from the
// bytes; the client supplied header is ignored.
func (s *UploadService) Upload(ctx context.Context, userID uint, file *multipart.FileHeader) (*models.UploadedImage, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	var r io.Reader = src
	if s.maxBytes > 0 {
		r = io.LimitReader(src, s.maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoFile
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	mime := mimetype.Detect(data)
	contentType := strings.SplitN(mime.String(), ";", 2)[0]
	if !utils.SupportedImageType(contentType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, contentType)
	}

	key := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), mime.Extension())
	url, err := s.files.Save(ctx, key, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	upload := &models.UploadedImage{
		UserID:       userID,
		ImageURL:     url,
		OriginalName: filepath.Base(file.Filename),
		Size:         int64(len(data)),
		MimeType:     contentType,
		StorageKey:   key,
	}
	if err := s.store.Uploads.Create(ctx, upload); err != nil {
		if delErr := s.files.Delete(context.Background(), key); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("key", key), zap.Error(delErr))
		}
		return nil, fmt.Errorf("record upload: %w", err)
	}

	s.logger.Info("image uploaded",
		zap.Uint("user_id", userID),
		zap.Uint("upload_id", upload.ID),
		zap.String("mime_type", contentType),
		zap.Int64("size", upload.Size),
	)
	return upload, nil
}

func (s *UploadService) ListMine(ctx context.Context, userID uint) ([]models.UploadedImage, error) {
	return s.store.Uploads.ListByUser(ctx, userID)
}

func (s *UploadService) Get(ctx context.Context, userID, uploadID uint) (*models.UploadedImage, error) {
	upload, err := s.store.Uploads.GetByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	if upload.UserID != userID {
		return nil, ErrUploadNotFound
	}
	return upload, nil
}
