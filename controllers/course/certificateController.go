package controllers

import (
	"eduverse/middleware"
	"eduverse/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserCertificates gets all certificates for the current user
func (ctl *Controller) GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		models.Certificate
		CourseTitle string `json:"course_title"`
	}

	certificates := ctl.Engine.CertificatesForUser(userID)
	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateWithCourse{Certificate: cert}
		if course, found := ctl.Engine.CourseByID(cert.CourseID); found {
			result[i].CourseTitle = course.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}
