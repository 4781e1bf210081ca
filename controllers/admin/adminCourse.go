package controllers

import (
	"eduverse/middleware"
	"eduverse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// CreateCourse adds a course to the catalog. Lesson and attachment ids are
// assigned by the engine when missing.
func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.Engine.AddCourse(*reqData)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse replaces the course with the matching id.
func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	// The id is stored with the course, so copy it out of the request buffer.
	reqData.ID = utils.CopyString(c.Params("id"))

	course, err := ctl.Engine.UpdateCourse(*reqData)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}
