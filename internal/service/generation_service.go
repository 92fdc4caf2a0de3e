package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
	"github.com/sefazor/galbi-backend/pkg/artgen"
	"github.com/sefazor/galbi-backend/pkg/storage"
	"go.uber.org/zap"
)

const svgContentType = "image/svg+xml"

type GenerationService struct {
	store     *repository.Store
	generator *artgen.Generator
	// files is nil when generated images are stored inline as data URIs.
	files  storage.FileStorage
	logger *zap.Logger
}

func NewGenerationService(store *repository.Store, generator *artgen.Generator, files storage.FileStorage, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		store:     store,
		generator: generator,
		files:     files,
		logger:    logger.Named("generation"),
	}
}

// Generate2D renders req.NumImages artworks and stores them as creations of
// userID, consuming one generation.
func (s *GenerationService) Generate2D(ctx context.Context, userID uint, req models.Art2DGenerationRequest) ([]models.Creation, *models.User, error) {
	req.ApplyDefaults()
	if err := s.checkQuota(ctx, userID); err != nil {
		return nil, nil, err
	}

	images := s.generator.Art2DBatch(art2DOptions(req), req.NumImages)
	creations := make([]*models.Creation, 0, len(images))
	for range images {
		creations = append(creations, &models.Creation{
			Type:     models.CreationType2D,
			Prompt:   req.Prompt,
			Settings: req.Settings(),
		})
	}

	user, err := s.record(ctx, userID, images, creations)
	if err != nil {
		return nil, nil, err
	}

	out := make([]models.Creation, len(creations))
	for i, c := range creations {
		out[i] = *c
	}
	s.logger.Info("2d art generated",
		zap.Uint("user_id", userID),
		zap.String("style", req.Style),
		zap.Int("images", len(out)),
	)
	return out, user, nil
}

// Generate3D renders one model placeholder and stores it as a creation.
func (s *GenerationService) Generate3D(ctx context.Context, userID uint, req models.Model3DGenerationRequest) (*models.Creation, *models.User, error) {
	req.ApplyDefaults()
	if err := s.checkQuota(ctx, userID); err != nil {
		return nil, nil, err
	}

	img := s.generator.Model3D(model3DOptions(req))
	creation := &models.Creation{
		Type:     models.CreationType3D,
		Prompt:   req.Prompt,
		Settings: req.Settings(),
	}

	user, err := s.record(ctx, userID, []artgen.Image{img}, []*models.Creation{creation})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("3d model generated",
		zap.Uint("user_id", userID),
		zap.String("model_type", req.ModelType),
		zap.String("template", img.Template),
	)
	return creation, user, nil
}

// Preview2D renders artworks without storing them or touching any quota.
func (s *GenerationService) Preview2D(req models.Art2DGenerationRequest) models.PreviewResponse {
	req.ApplyDefaults()
	images := s.generator.Art2DBatch(art2DOptions(req), req.NumImages)
	uris := make([]string, len(images))
	for i, img := range images {
		uris[i] = img.DataURI()
	}
	return models.PreviewResponse{Images: uris, Settings: req.Settings()}
}

func (s *GenerationService) Preview3D(req models.Model3DGenerationRequest) models.PreviewResponse {
	req.ApplyDefaults()
	img := s.generator.Model3D(model3DOptions(req))
	return models.PreviewResponse{Images: []string{img.DataURI()}, Settings: req.Settings()}
}

// checkQuota rejects early so exhausted users never pay for rendering. The
// authoritative check is the conditional update in RecordGeneration.
func (s *GenerationService) checkQuota(ctx context.Context, userID uint) error {
	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.HasQuota() {
		return ErrQuotaExhausted
	}
	return nil
}

func (s *GenerationService) record(ctx context.Context, userID uint, images []artgen.Image, creations []*models.Creation) (*models.User, error) {
	keys, err := s.storeImages(ctx, images, creations)
	if err != nil {
		return nil, err
	}

	user, err := s.store.RecordGeneration(ctx, userID, creations)
	if err != nil {
		s.cleanup(keys)
		switch {
		case errors.Is(err, repository.ErrNoGenerationsLeft):
			return nil, ErrQuotaExhausted
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("record generation: %w", err)
	}
	return user, nil
}

// storeImages sets each creation's ImageURL, writing the SVG to file storage
// when configured. It returns the keys written.
func (s *GenerationService) storeImages(ctx context.Context, images []artgen.Image, creations []*models.Creation) ([]string, error) {
	if s.files == nil {
		for i, img := range images {
			creations[i].ImageURL = img.DataURI()
		}
		return nil, nil
	}

	keys := make([]string, 0, len(images))
	for i, img := range images {
		key := fmt.Sprintf("%s/%s.svg", creations[i].Type, uuid.NewString())
		url, err := s.files.Save(ctx, key, svgContentType, []byte(img.SVG))
		if err != nil {
			s.cleanup(keys)
			return nil, fmt.Errorf("store generated image: %w", err)
		}
		keys = append(keys, key)
		creations[i].ImageURL = url
	}
	return keys, nil
}

func (s *GenerationService) cleanup(keys []string) {
	for _, key := range keys {
		// the request context may already be cancelled
		if err := s.files.Delete(context.Background(), key); err != nil {
			s.logger.Warn("failed to remove orphaned image", zap.String("key", key), zap.Error(err))
		}
	}
}

func art2DOptions(req models.Art2DGenerationRequest) artgen.Art2DOptions {
	return artgen.Art2DOptions{
		Prompt:      req.Prompt,
		Style:       req.Style,
		AspectRatio: req.AspectRatio,
		ColorScheme: req.ColorScheme,
		Complexity:  req.Complexity,
	}
}

func model3DOptions(req models.Model3DGenerationRequest) artgen.Model3DOptions {
	return artgen.Model3DOptions{
		Prompt:         req.Prompt,
		ModelType:      req.ModelType,
		Style:          req.Style,
		DetailLevel:    req.DetailLevel,
		TextureQuality: req.TextureQuality,
	}
}
