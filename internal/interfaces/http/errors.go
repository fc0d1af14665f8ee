package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bikeshop-api/internal/application/dto"
	"github.com/jhoicas/bikeshop-api/internal/domain"
)

// errorCode traduce un error de dominio a su código de respuesta.
// Devuelve "" si err no es un error de cliente.
func errorCode(err error) string {
	var ve *domain.ValidationError
	var pe *domain.PersistenceError
	switch {
	case errors.As(err, &ve):
		return "VALIDATION"
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return "USER_EXISTS"
	case errors.Is(err, domain.ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrMissingBikeFields):
		return "MISSING_FIELDS"
	case errors.As(err, &pe):
		return "PERSISTENCE"
	}
	return ""
}

// writeError responde 400 {code, message} para errores de dominio y 500 para el resto.
// En el 500 no se expone la causa.
func writeError(c *fiber.Ctx, err error) error {
	if code := errorCode(err); code != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: what + ": " + domain.ErrNotFound.Error()})
}
