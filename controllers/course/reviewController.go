package controllers

import (
	"eduverse/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// AddReview leaves a review on a course. A user may review the same course
// more than once; every review is kept.
func (ctl *Controller) AddReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Copied because the review stores the course id past this request.
	courseID := utils.CopyString(c.Params("id"))
	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review, err := ctl.Engine.AddReview(userID, courseID, reqData.Rating, reqData.Comment)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to add review!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review added successfully!", review)
}
