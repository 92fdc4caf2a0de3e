package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
	"github.com/sefazor/galbi-backend/pkg/utils"
)

type GenerationHandler struct {
	generationService *service.GenerationService
	validator         *utils.Validator
}

func NewGenerationHandler(generationService *service.GenerationService, validator *utils.Validator) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		validator:         validator,
	}
}

func (h *GenerationHandler) Generate2D(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.Art2DGenerationRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	creations, _, err := h.generationService.Generate2D(c.UserContext(), userID, req)
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(models.SuccessResponse(creations, "Art generated successfully"))
}

func (h *GenerationHandler) Generate3D(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req models.Model3DGenerationRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}

	creation, _, err := h.generationService.Generate3D(c.UserContext(), userID, req)
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(models.SuccessResponse(creation, "Model generated successfully"))
}

func (h *GenerationHandler) Preview2D(c *fiber.Ctx) error {
	var req models.Art2DGenerationRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	return c.JSON(models.SuccessResponse(h.generationService.Preview2D(req), ""))
}

func (h *GenerationHandler) Preview3D(c *fiber.Ctx) error {
	var req models.Model3DGenerationRequest
	if ok, err := bindJSON(c, h.validator, &req); !ok {
		return err
	}
	return c.JSON(models.SuccessResponse(h.generationService.Preview3D(req), ""))
}

func generationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrQuotaExhausted):
		return c.Status(fiber.StatusForbidden).JSON(models.PaymentRequiredResponse("Generation limit reached"))
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not found"))
	}
	return err
}
