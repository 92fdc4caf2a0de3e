package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	jwtPkg "github.com/sefazor/galbi-backend/pkg/jwt"
)

// SessionCookie carries the auth token for browser clients.
const SessionCookie = "galbi_session"

const localUserID = "userID"

// TokenValidator checks an auth token.
type TokenValidator interface {
	ValidateToken(token string) (*jwtPkg.Claims, error)
}

// AuthMiddleware accepts a session cookie or an Authorization bearer header
// and stores the user id in the request locals.
func AuthMiddleware(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, problem := tokenFromRequest(c)
		if problem != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(problem))
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid or expired token"))
		}

		c.Locals(localUserID, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and never rejects.
func OptionalAuth(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, problem := tokenFromRequest(c); problem == "" {
			if claims, err := tokens.ValidateToken(token); err == nil {
				c.Locals(localUserID, claims.UserID)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id, if any.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localUserID).(uint)
	return id, ok && id != 0
}

// tokenFromRequest returns the raw token, or a client facing reason why
// there is none.
func tokenFromRequest(c *fiber.Ctx) (token, problem string) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", "Invalid authorization header format"
		}
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), ""
	}
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie, ""
	}
	return "", "Unauthorized"
}
