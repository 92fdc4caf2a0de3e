package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
	"github.com/sefazor/galbi-backend/pkg/qrcode"
)

type CreationHandler struct {
	creationService *service.CreationService
	qr              *qrcode.QRService
}

func NewCreationHandler(creationService *service.CreationService, qr *qrcode.QRService) *CreationHandler {
	return &CreationHandler{
		creationService: creationService,
		qr:              qr,
	}
}

func (h *CreationHandler) List(c *fiber.Ctx) error {
	filter, msg := creationFilter(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msg))
	}

	if raw := c.Query("userId"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid userId"))
		}
		filter.UserID = uint(userID)
	}

	creations, err := h.creationService.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse(creations, "Creations retrieved successfully"))
}

func (h *CreationHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ID format"))
	}

	creation, err := h.creationService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrCreationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Creation not found"))
		}
		return err
	}
	return c.JSON(models.SuccessResponse(creation, ""))
}

// QRCode serves a PNG share code linking to the creation.
func (h *CreationHandler) QRCode(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ID format"))
	}

	if _, err := h.creationService.Get(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrCreationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Creation not found"))
		}
		return err
	}

	png, err := h.qr.CreationQRCode(id, c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}

// creationFilter reads the type and limit query parameters.
func creationFilter(c *fiber.Ctx) (models.CreationFilter, string) {
	filter := models.CreationFilter{Limit: models.DefaultCreationLimit}

	if raw := c.Query("type"); raw != "" {
		t := models.CreationType(raw)
		if !t.Valid() {
			return filter, "Invalid type, expected 2d or 3d"
		}
		filter.Type = t
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return filter, "Invalid limit"
		}
		filter.Limit = limit
	}
	return filter, ""
}
