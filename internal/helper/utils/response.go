package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sekolahdev/admission_service/internal/domain"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// create a generic response function for success
func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseDomainError maps the error taxonomy onto HTTP statuses so every
// handler renders failures the same way. Missing-field errors include the
// full field list.
func ResponseDomainError(ctx *fiber.Ctx, err error) error {
	if mf, ok := domain.AsMissingFields(err); ok {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":          err.Error(),
			"missing_fields": mf.Fields,
		})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrFieldNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrDuplicateApplication):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrPayloadTooLarge):
		status = fiber.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrApplicationLocked):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrRegistrationClosed):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidField):
		status = fiber.StatusBadRequest
	}
	return ResponseError(ctx, status, err.Error())
}
