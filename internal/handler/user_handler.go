package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
)

type UserHandler struct {
	userService     *service.UserService
	creationService *service.CreationService
}

func NewUserHandler(userService *service.UserService, creationService *service.CreationService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		creationService: creationService,
	}
}

func (h *UserHandler) GetQuota(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	quota, err := h.userService.Quota(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return unauthorized(c)
		}
		return err
	}
	return c.JSON(models.SuccessResponse(quota, ""))
}

func (h *UserHandler) GetMyCreations(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	filter, msg := creationFilter(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msg))
	}
	filter.UserID = userID

	creations, err := h.creationService.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse(creations, "Creations retrieved successfully"))
}
