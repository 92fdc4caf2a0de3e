package repository

import (
	"context"
	"fmt"

	"github.com/sefazor/galbi-backend/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ConsumeGeneration takes one free generation from a non-premium user. The
// conditional update keeps concurrent requests from driving the count below
// zero. Premium users are left untouched.
func (r *UserRepository) ConsumeGeneration(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_premium = ? AND generations_remaining > 0", id, false).
		UpdateColumn("generations_remaining", gorm.Expr("generations_remaining - 1"))
	if res.Error != nil {
		return fmt.Errorf("consume generation: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsPremium {
		return nil
	}
	return ErrNoGenerationsLeft
}

// SetPremium marks the user premium with unlimited generations.
func (r *UserRepository) SetPremium(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_premium":            true,
		"generations_remaining": models.UnlimitedGenerations,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
