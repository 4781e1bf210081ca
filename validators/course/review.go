package courseValidator

import (
	"eduverse/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AddReview validates a course review request
func AddReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Comment = strings.TrimSpace(reqData.Comment)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if len(reqData.Comment) > 2000 {
			errors["comment"] = "Comment must be at most 2000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
