package controllers

import (
	"eduverse/middleware"
	"eduverse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// EnrollInCourse enrolls the current user. A repeated enroll returns the
// existing enrollment unchanged.
func (ctl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Params strings alias fasthttp's request buffer; the engine stores the
	// id, so it must be copied before the buffer is recycled.
	courseID := utils.CopyString(c.Params("id"))
	enrollment, err := ctl.Engine.Enroll(userID, courseID)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to enroll in course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// CompleteLesson marks a lesson complete and returns the updated enrollment.
func (ctl *Controller) CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Both ids end up stored (the lesson id in CompletedLessons), so copy
	// them out of the request buffer.
	courseID := utils.CopyString(c.Params("course_id"))
	lessonID := utils.CopyString(c.Params("lesson_id"))

	enrollment, err := ctl.Engine.CompleteLesson(userID, courseID, lessonID)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to complete lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as complete!", enrollment)
}

// GetUserEnrollmentsList gets all enrollments for the current user, joined
// with their course for display.
func (ctl *Controller) GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithCourse struct {
		models.Enrollment
		CourseTitle    string `json:"course_title"`
		CourseCategory string `json:"course_category"`
		TotalLessons   int    `json:"total_lessons"`
	}

	enrollments := ctl.Engine.EnrollmentsForUser(userID)
	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		result[i] = EnrollmentWithCourse{Enrollment: e}
		if course, found := ctl.Engine.CourseByID(e.CourseID); found {
			result[i].CourseTitle = course.Title
			result[i].CourseCategory = course.Category
			result[i].TotalLessons = len(course.Lessons)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// GetUserProgress gets the user's progress in a course.
func (ctl *Controller) GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Params("course_id")
	course, found := ctl.Engine.CourseByID(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollment, enrolled := ctl.Engine.EnrollmentFor(userID, courseID)
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":    enrollment,
		"completed_ids": enrollment.CompletedLessons,
		"total_lessons": len(course.Lessons),
	})
}
