package service

import (
	"context"
	"errors"

	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
)

type CreationService struct {
	store *repository.Store
}

func NewCreationService(store *repository.Store) *CreationService {
	return &CreationService{store: store}
}

func (s *CreationService) List(ctx context.Context, filter models.CreationFilter) ([]models.Creation, error) {
	return s.store.Creations.List(ctx, filter)
}

func (s *CreationService) Get(ctx context.Context, id uint) (*models.Creation, error) {
	creation, err := s.store.Creations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCreationNotFound
		}
		return nil, err
	}
	return creation, nil
}
