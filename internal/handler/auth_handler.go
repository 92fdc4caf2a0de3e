package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/middleware"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
	"github.com/sefazor/galbi-backend/pkg/utils"
)

type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
	validator   *utils.Validator
	cookie      CookieConfig
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, validator *utils.Validator, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validator:   validator,
		cookie:      cookie,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	resp, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Username already exists"))
		}
		return err
	}

	h.setSession(c, resp.Token)
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "Registration successful"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid username or password"))
		}
		return err
	}

	h.setSession(c, resp.Token)
	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(models.SuccessResponse(nil, "Logout successful"))
}

// CurrentUser expects OptionalAuth in front of it.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not authenticated"))
	}

	user, err := h.userService.GetByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Not authenticated"))
		}
		return err
	}

	return c.JSON(models.SuccessResponse(models.NewUserResponse(user), ""))
}

func (h *AuthHandler) setSession(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookie.TTL),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
