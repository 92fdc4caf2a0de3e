package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create runs the simulated premium upgrade.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.paymentService.Upgrade(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return unauthorized(c)
		}
		return err
	}
	return c.JSON(models.SuccessResponse(resp, "Payment successful"))
}

func (h *PaymentHandler) History(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	payments, err := h.paymentService.History(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse(payments, ""))
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ID format"))
	}

	payment, err := h.paymentService.Get(c.UserContext(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Payment not found"))
		}
		return err
	}
	return c.JSON(models.SuccessResponse(payment, ""))
}
