package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
	"github.com/sefazor/galbi-backend/pkg/email"
	"go.uber.org/zap"
)

type PaymentConfig struct {
	PriceCents int
	Currency   string
}

// PaymentService simulates the premium upgrade: no processor is contacted and
// every payment is recorded as completed.
type PaymentService struct {
	store  *repository.Store
	mailer Mailer
	cfg    PaymentConfig
	logger *zap.Logger
}

func NewPaymentService(store *repository.Store, mailer Mailer, cfg PaymentConfig, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		store:  store,
		mailer: mailer,
		cfg:    cfg,
		logger: logger.Named("payment"),
	}
}

func (s *PaymentService) Upgrade(ctx context.Context, userID uint) (*models.UpgradeResponse, error) {
	payment, user, err := s.store.CompleteUpgrade(ctx, userID, s.cfg.PriceCents, s.cfg.Currency)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("complete upgrade: %w", err)
	}

	s.logger.Info("user upgraded to premium",
		zap.Uint("user_id", user.ID),
		zap.Uint("payment_id", payment.ID),
		zap.Int("amount", payment.Amount),
		zap.String("currency", payment.Currency),
	)

	go func(to, name string, r email.Receipt) {
		if err := s.mailer.SendPremiumReceipt(to, name, r); err != nil {
			s.logger.Warn("receipt email failed", zap.Uint("payment_id", r.PaymentID), zap.Error(err))
		}
	}(user.Email, user.Username, email.Receipt{
		PaymentID:   payment.ID,
		AmountCents: payment.Amount,
		Currency:    payment.Currency,
		PaidAt:      payment.CreatedAt,
	})

	return &models.UpgradeResponse{
		Payment: *payment,
		User:    models.NewUserResponse(user),
	}, nil
}

func (s *PaymentService) History(ctx context.Context, userID uint) ([]models.Payment, error) {
	return s.store.Payments.ListByUser(ctx, userID)
}

// Get returns one of the user's payments. Payments of other users are
// reported as not found.
func (s *PaymentService) Get(ctx context.Context, userID, paymentID uint) (*models.Payment, error) {
	payment, err := s.store.Payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.UserID != userID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}
