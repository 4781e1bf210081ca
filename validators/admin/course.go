package adminValidator

import (
	"eduverse/middleware"
	"eduverse/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// courseBody parses and checks the shared fields of course create/update
// requests, stashing the result for the controller.
func courseBody(c *fiber.Ctx) error {
	reqData := new(models.Course)

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Description = strings.TrimSpace(reqData.Description)
	reqData.Category = strings.TrimSpace(reqData.Category)

	if reqData.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(reqData.Title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	if reqData.Description == "" {
		errors["description"] = "Description is required!"
	}

	for i, lesson := range reqData.Lessons {
		if strings.TrimSpace(lesson.Title) == "" {
			errors["lessons"] = "Every lesson needs a title!"
			break
		}
		if lesson.Type != models.LessonVideo && lesson.Type != models.LessonText {
			errors["lessons"] = "Lesson type must be VIDEO or TEXT!"
			break
		}
		if lesson.DurationMinutes < 0 {
			errors["lessons"] = "Lesson duration cannot be negative!"
			break
		}
		reqData.Lessons[i].Title = strings.TrimSpace(lesson.Title)
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedCourse", reqData)
	return c.Next()
}

// CreateCourse validates the course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return courseBody(c)
	}
}

// UpdateCourse validates the course update request
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("id")) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		return courseBody(c)
	}
}
