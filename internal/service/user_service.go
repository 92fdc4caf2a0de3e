package service

import (
	"context"
	"errors"

	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
)

type UserService struct {
	store *repository.Store
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Quota(ctx context.Context, id uint) (*models.QuotaResponse, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.store.Creations.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.QuotaResponse{
		IsPremium:            user.IsPremium,
		Unlimited:            user.IsPremium,
		GenerationsRemaining: user.GenerationsRemaining,
		Creations:            count,
	}, nil
}
