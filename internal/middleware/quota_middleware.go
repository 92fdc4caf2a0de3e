package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
)

// UserLookup loads users for the quota gate.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// RequireQuota rejects users without generations left. It must run after
// AuthMiddleware.
func RequireQuota(users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized"))
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not found"))
			}
			return err
		}

		if !user.HasQuota() {
			return c.Status(fiber.StatusForbidden).JSON(models.PaymentRequiredResponse("Generation limit reached"))
		}
		return c.Next()
	}
}
