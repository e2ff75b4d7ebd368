package utils

import (
	"errors"
	"log"

	apperrors "paygate/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// Forbidden sends a JSON error response with status 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusForbidden, fiber.Map{"error": message})
}

// RespondError renders err as {error, code, details}. Anything that is not a
// DomainError is logged and reported as an internal error with its message as details.
func RespondError(c *fiber.Ctx, err error) error {
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		de = apperrors.ErrInternal.WithDetails(err.Error())
	}

	body := fiber.Map{
		"error": de.Message,
		"code":  de.Code,
	}
	if de.Details != "" {
		body["details"] = de.Details
	}
	return Respond(c, apperrors.StatusOf(de), body)
}
