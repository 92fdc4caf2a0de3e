package repository

import (
	"context"

	"github.com/sefazor/galbi-backend/internal/models"
	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) Create(ctx context.Context, upload *models.UploadedImage) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *UploadRepository) GetByID(ctx context.Context, id uint) (*models.UploadedImage, error) {
	var upload models.UploadedImage
	if err := r.db.WithContext(ctx).First(&upload, id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepository) ListByUser(ctx context.Context, userID uint) ([]models.UploadedImage, error) {
	uploads := []models.UploadedImage{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&uploads).Error
	return uploads, err
}
