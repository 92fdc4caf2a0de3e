package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sefazor/galbi-backend/internal/config"
	"github.com/sefazor/galbi-backend/internal/handler"
	"github.com/sefazor/galbi-backend/internal/repository"
	"github.com/sefazor/galbi-backend/internal/service"
	"github.com/sefazor/galbi-backend/pkg/artgen"
	"github.com/sefazor/galbi-backend/pkg/bcrypt"
	"github.com/sefazor/galbi-backend/pkg/database"
	"github.com/sefazor/galbi-backend/pkg/email"
	jwtPkg "github.com/sefazor/galbi-backend/pkg/jwt"
	"github.com/sefazor/galbi-backend/pkg/logger"
	"github.com/sefazor/galbi-backend/pkg/qrcode"
	"github.com/sefazor/galbi-backend/pkg/storage"
	"github.com/sefazor/galbi-backend/pkg/utils"
	"go.uber.org/zap"
)

const (
	tokenIssuer = "galbi"
	// room for multipart framing on top of the file itself
	bodyOverhead = 1 << 20
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to create logger: ", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Open(database.Options{
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	store := repository.NewStore(db)

	// Storage
	uploads, err := newFileStorage(ctx, cfg, cfg.UploadDir, "/uploads")
	if err != nil {
		return err
	}
	var generated storage.FileStorage
	if cfg.PersistGeneratedFiles {
		if generated, err = newFileStorage(ctx, cfg, cfg.GeneratedDir, "/generated"); err != nil {
			return err
		}
	}

	emailService := email.NewEmailService(email.Config{
		APIKey:      cfg.Email.ResendAPIKey,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		AppURL:      cfg.PublicBaseURL,
	}, zlog)
	qrService := qrcode.NewQRService(cfg.PublicBaseURL + "/creations/")
	tokens := jwtPkg.NewManager(cfg.JWTSecret, tokenIssuer, cfg.TokenTTL)
	validator := utils.NewValidator()

	// Services
	userService := service.NewUserService(store)
	creationService := service.NewCreationService(store)
	authService := service.NewAuthService(store, tokens, emailService, service.AuthConfig{
		FreeGenerations: cfg.FreeGenerations,
		PasswordCost:    bcrypt.DefaultCost,
	}, zlog)
	generationService := service.NewGenerationService(store, artgen.New(nil), generated, zlog)
	uploadService := service.NewUploadService(store, uploads, cfg.MaxUploadBytes, zlog)
	paymentService := service.NewPaymentService(store, emailService, service.PaymentConfig{
		PriceCents: cfg.PremiumPriceCents,
		Currency:   cfg.PaymentCurrency,
	}, zlog)

	app := fiber.New(fiber.Config{
		AppName:      "galbi",
		ErrorHandler: handler.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes) + bodyOverhead,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.StorageDriver == config.StorageLocal {
		app.Static("/uploads", cfg.UploadDir)
		if cfg.PersistGeneratedFiles {
			app.Static("/generated", cfg.GeneratedDir)
		}
	}

	handler.SetupRoutes(app, handler.Handlers{
		Auth: handler.NewAuthHandler(authService, userService, validator, handler.CookieConfig{
			Secure: cfg.CookieSecure,
			TTL:    tokens.TTL(),
		}),
		User:       handler.NewUserHandler(userService, creationService),
		Creation:   handler.NewCreationHandler(creationService, qrService),
		Generation: handler.NewGenerationHandler(generationService, validator),
		Upload:     handler.NewUploadHandler(uploadService),
		Payment:    handler.NewPaymentHandler(paymentService),
	}, tokens, userService)

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("storage", cfg.StorageDriver),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func newFileStorage(ctx context.Context, cfg *config.Config, dir, urlPrefix string) (storage.FileStorage, error) {
	if cfg.StorageDriver == config.StorageS3 {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s3Storage, nil
	}
	local, err := storage.NewLocalStorage(dir, urlPrefix)
	if err != nil {
		return nil, err
	}
	return local, nil
}
