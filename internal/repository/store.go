package repository

import (
	"context"

	"github.com/sefazor/galbi-backend/internal/models"
	"gorm.io/gorm"
)

// Store groups the repositories over one database handle. Inside
// Transaction every repository shares the transaction.
type Store struct {
	db        *gorm.DB
	Users     *UserRepository
	Creations *CreationRepository
	Uploads   *UploadRepository
	Payments  *PaymentRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Users:     NewUserRepository(db),
		Creations: NewCreationRepository(db),
		Uploads:   NewUploadRepository(db),
		Payments:  NewPaymentRepository(db),
	}
}

// Transaction runs fn in a database transaction, rolling back when fn returns an error.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// RecordGeneration consumes one generation for userID and stores the
// creations produced by it. Either both happen or neither does.
func (s *Store) RecordGeneration(ctx context.Context, userID uint, creations []*models.Creation) (*models.User, error) {
	var user *models.User
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.Users.ConsumeGeneration(ctx, userID); err != nil {
			return err
		}
		for _, c := range creations {
			c.UserID = userID
		}
		if err := tx.Creations.CreateBatch(ctx, creations); err != nil {
			return err
		}
		var err error
		user, err = tx.Users.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CompleteUpgrade records a completed payment and makes the user premium.
func (s *Store) CompleteUpgrade(ctx context.Context, userID uint, amount int, currency string) (*models.Payment, *models.User, error) {
	payment := &models.Payment{
		UserID:   userID,
		Amount:   amount,
		Currency: currency,
		Status:   models.PaymentStatusCompleted,
	}

	var user *models.User
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.Users.SetPremium(ctx, userID); err != nil {
			return err
		}
		if err := tx.Payments.Create(ctx, payment); err != nil {
			return err
		}
		var err error
		user, err = tx.Users.GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return payment, user, nil
}
