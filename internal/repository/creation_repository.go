package repository

import (
	"context"

	"github.com/sefazor/galbi-backend/internal/models"
	"gorm.io/gorm"
)

type CreationRepository struct {
	db *gorm.DB
}

func NewCreationRepository(db *gorm.DB) *CreationRepository {
	return &CreationRepository{db: db}
}

func (r *CreationRepository) Create(ctx context.Context, creation *models.Creation) error {
	return r.db.WithContext(ctx).Create(creation).Error
}

// CreateBatch inserts all creations in one statement.
func (r *CreationRepository) CreateBatch(ctx context.Context, creations []*models.Creation) error {
	if len(creations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(creations).Error
}

func (r *CreationRepository) GetByID(ctx context.Context, id uint) (*models.Creation, error) {
	var creation models.Creation
	if err := r.db.WithContext(ctx).First(&creation, id).Error; err != nil {
		return nil, err
	}
	return &creation, nil
}

// List returns creations matching filter, newest first.
func (r *CreationRepository) List(ctx context.Context, filter models.CreationFilter) ([]models.Creation, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultCreationLimit
	}
	if limit > models.MaxCreationLimit {
		limit = models.MaxCreationLimit
	}

	q := r.db.WithContext(ctx).Model(&models.Creation{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}

	creations := []models.Creation{}
	err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&creations).Error
	return creations, err
}

func (r *CreationRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Creation{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
