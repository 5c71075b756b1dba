package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/webstore/catalog-api/pkg/auth"
	"github.com/webstore/catalog-api/pkg/product"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Map translates a domain error into a response status and message.
// Everything outside the table is an internal error; its cause belongs in
// the server log, never in the response body.
func Map(err error) (int, string) {
	var validation product.ErrValidation
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error()
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusBadRequest, "user already exists"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, product.ErrNotFound):
		return http.StatusNotFound, "product not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
