package courseValidator

import (
	"eduverse/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the enroll request path parameter
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		return c.Next()
	}
}

// CompleteLesson validates the lesson completion path parameters
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("course_id"))
		lessonID := strings.TrimSpace(c.Params("lesson_id"))

		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		if lessonID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}
		return c.Next()
	}
}
