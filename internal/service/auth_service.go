package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/repository"
	"github.com/sefazor/galbi-backend/pkg/bcrypt"
	jwtPkg "github.com/sefazor/galbi-backend/pkg/jwt"
	"go.uber.org/zap"
)

type AuthConfig struct {
	FreeGenerations int
	// PasswordCost defaults to bcrypt.DefaultCost.
	PasswordCost int
}

type AuthService struct {
	store  *repository.Store
	tokens *jwtPkg.Manager
	mailer Mailer
	cfg    AuthConfig
	logger *zap.Logger
}

func NewAuthService(store *repository.Store, tokens *jwtPkg.Manager, mailer Mailer, cfg AuthConfig, logger *zap.Logger) *AuthService {
	if cfg.PasswordCost == 0 {
		cfg.PasswordCost = bcrypt.DefaultCost
	}
	return &AuthService{
		store:  store,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
		logger: logger.Named("auth"),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)

	exists, err := s.store.Users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.HashPasswordCost(req.Password, s.cfg.PasswordCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:             username,
		Email:                strings.TrimSpace(req.Email),
		Password:             hashedPassword,
		GenerationsRemaining: s.cfg.FreeGenerations,
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))

	go func(to, name string, free int) {
		if err := s.mailer.SendWelcomeEmail(to, name, free); err != nil {
			s.logger.Warn("welcome email failed", zap.String("username", name), zap.Error(err))
		}
	}(user.Email, user.Username, user.GenerationsRemaining)

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.store.Users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		s.logger.Debug("login rejected", zap.String("username", user.Username))
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}
	return &models.AuthResponse{
		Token: token,
		User:  models.NewUserResponse(user),
	}, nil
}
