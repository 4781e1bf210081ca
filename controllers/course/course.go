package controllers

import (
	"eduverse/engine"
	"eduverse/middleware"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the user-facing course endpoints.
type Controller struct {
	Engine *engine.Engine
}

func NewController(e *engine.Engine) *Controller {
	return &Controller{Engine: e}
}

// GetAllCourses lists the course catalog.
func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	courses := ctl.Engine.Courses()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourseDetails returns one course with its reviews and, when the caller
// is enrolled, their enrollment.
func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Params("id")
	course, found := ctl.Engine.CourseByID(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	response := fiber.Map{
		"course":  course,
		"reviews": ctl.Engine.ReviewsForCourse(courseID),
	}
	if enrollment, enrolled := ctl.Engine.EnrollmentFor(userID, courseID); enrolled {
		response["enrollment"] = enrollment
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", response)
}

// GetCourseReviews lists a course's reviews in the order they were left.
func (ctl *Controller) GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Params("id")
	if _, found := ctl.Engine.CourseByID(courseID); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reviews := ctl.Engine.ReviewsForCourse(courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": reviews,
		"total":   len(reviews),
	})
}
