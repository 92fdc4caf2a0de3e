package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/galbi-backend/internal/middleware"
	"github.com/sefazor/galbi-backend/internal/models"
	"github.com/sefazor/galbi-backend/pkg/utils"
)

var errUnauthenticated = errors.New("User not authenticated")

// bindJSON parses the body into dst and validates it. On failure the 400
// response has already been written and the returned bool is false.
func bindJSON(c *fiber.Ctx, v *utils.Validator, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := v.Struct(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse("Invalid request data", utils.FieldErrors(err)))
	}
	return true, nil
}

func currentUser(c *fiber.Ctx) (uint, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, errUnauthenticated
	}
	return id, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(errUnauthenticated.Error()))
}

func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ErrorHandler renders errors no handler dealt with. Fiber errors keep their
// status, anything else is a 500 with the raw message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(models.ErrorResponse(err.Error()))
}
