package repository

import (
	"context"
	"fmt"

	"github.com/sefazor/galbi-backend/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if !payment.Status.Valid() {
		return fmt.Errorf("invalid payment status %q", payment.Status)
	}
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID uint) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&payments).Error
	return payments, err
}

// UpdateStatus is the only mutation a payment record allows.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, status models.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid payment status %q", status)
	}
	res := r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
