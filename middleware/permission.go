package middleware

import (
	"errors"

	"eduverse/engine"

	"github.com/gofiber/fiber/v2"
)

// RequireCapability returns a middleware that passes only when the engine
// grants the current user the capability. Role logic stays in the engine;
// handlers never branch on roles themselves.
func RequireCapability(e *engine.Engine, capability engine.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		if !e.Can(userID, capability) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}

// EngineErrorResponse maps an engine error to the response envelope:
// missing entities are 404, rejected input 422, anything else 500.
func EngineErrorResponse(c *fiber.Ctx, err error, fallbackMessage string) error {
	if errors.Is(err, engine.ErrNotFound) {
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	}
	if engine.IsValidation(err) {
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	}
	return JsonResponse(c, fiber.StatusInternalServerError, false, fallbackMessage, nil)
}
