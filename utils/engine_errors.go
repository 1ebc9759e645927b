package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/salonbook/salon-app/engine"
)

// RespondEngineError maps the engine's error taxonomy to HTTP responses
// so every failure kind stays distinguishable at the boundary:
// validation 400, conflict 409, state 422, store 503 (retryable).
func RespondEngineError(c *fiber.Ctx, err error) error {
	var validationErr *engine.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid booking request",
			Error:   validationErr.Error(),
		})
	}

	var conflictErr *engine.ConflictError
	if errors.As(err, &conflictErr) {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Message: "Time slot not available, please pick another employee or time",
			Error:   conflictErr.Error(),
		})
	}

	var stateErr *engine.StateError
	if errors.As(err, &stateErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "Status change not allowed",
			Error:   stateErr.Error(),
		})
	}

	var storeErr *engine.StoreError
	if errors.As(err, &storeErr) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: "Storage temporarily unavailable, please retry",
			Error:   storeErr.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Unexpected error",
		Error:   err.Error(),
	})
}
