package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
)

const uploadField = "image"

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	file, err := c.FormFile(uploadField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	upload, err := h.uploadService.Upload(c.UserContext(), userID, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFile):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
		case errors.Is(err, service.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse("File size too large"))
		case errors.Is(err, service.ErrUnsupportedFile):
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(models.ErrorResponse(err.Error()))
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(upload, "Image uploaded successfully"))
}

func (h *UploadHandler) List(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	uploads, err := h.uploadService.ListMine(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse(uploads, ""))
}

func (h *UploadHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ID format"))
	}

	upload, err := h.uploadService.Get(c.UserContext(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrUploadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Upload not found"))
		}
		return err
	}
	return c.JSON(models.SuccessResponse(upload, ""))
}
