package sessionValidator

import (
	"eduverse/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Login validates the user-switch request
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID string `json:"user_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.UserID = strings.TrimSpace(reqData.UserID)
		if reqData.UserID == "" {
			errors["user_id"] = "User ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
