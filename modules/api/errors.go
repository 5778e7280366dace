package api

import (
	"errors"
	"strings"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/gofiber/fiber/v2"
)

var errInvalidJSON = &domain.ValidationError{Message: domain.MsgInvalidJSON}

// errorHandler renders every error returned by a handler as {"detail": ...}.
func (m *APIModule) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error."

	var ve *domain.ValidationError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		code = fiber.StatusBadRequest
		message = ve.Message
	case errors.Is(err, domain.ErrNotFound):
		code = fiber.StatusNotFound
		message = domain.ErrNotFound.Error()
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
		if code == fiber.StatusNotFound {
			message = "Not found."
		}
	default:
		m.logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(ErrorResponse{Detail: message})
}

// methodNotAllowed answers any method outside allowed with 405 and an Allow header.
func methodNotAllowed(allowed ...string) fiber.Handler {
	allow := strings.Join(allowed, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(ErrorResponse{
			Detail: `Method "` + c.Method() + `" not allowed.`,
		})
	}
}
