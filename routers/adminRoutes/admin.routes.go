package adminRoutes

import (
	controllers "eduverse/controllers/admin"
	"eduverse/engine"
	"eduverse/middleware"
	validators "eduverse/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up user and course management routes
func SetupAdminRoutes(app *fiber.App, e *engine.Engine) {
	ctl := controllers.NewController(e)

	adminGroup := app.Group("/admin")

	// User management (admin only)
	adminGroup.Post("/users", middleware.JWTMiddleware, middleware.RequireCapability(e, engine.CapManageUsers), validators.CreateUser(), ctl.CreateUser)
	adminGroup.Get("/users", middleware.JWTMiddleware, middleware.RequireCapability(e, engine.CapManageUsers), ctl.GetAllUsers)

	// Course management (instructors and admins)
	adminGroup.Post("/courses", middleware.JWTMiddleware, middleware.RequireCapability(e, engine.CapManageCourses), validators.CreateCourse(), ctl.CreateCourse)
	adminGroup.Put("/courses/:id", middleware.JWTMiddleware, middleware.RequireCapability(e, engine.CapManageCourses), validators.UpdateCourse(), ctl.UpdateCourse)

	// Reporting (admin only)
	adminGroup.Get("/reports/enrollments.xlsx", middleware.JWTMiddleware, middleware.RequireCapability(e, engine.CapManageUsers), ctl.ExportEnrollmentReport)
}
