package controllers

import (
	"eduverse/middleware"
	"eduverse/utils"

	"github.com/gofiber/fiber/v2"
)

// ExportEnrollmentReport streams an xlsx report of all enrollments.
func (ctl *Controller) ExportEnrollmentReport(c *fiber.Ctx) error {
	report, err := utils.BuildEnrollmentReport(ctl.Engine.Snapshot())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build report!", nil)
	}
	defer report.Close()

	buf, err := report.WriteToBuffer()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build report!", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="enrollments.xlsx"`)
	return c.SendStream(buf)
}
