package sessionRoutes

import (
	controllers "eduverse/controllers/session"
	"eduverse/engine"
	"eduverse/middleware"
	validators "eduverse/validators/session"

	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes sets up the user-switcher session routes
func SetupSessionRoutes(app *fiber.App, e *engine.Engine) {
	ctl := controllers.NewController(e)

	sessionGroup := app.Group("/session")
	sessionGroup.Post("/login", validators.Login(), ctl.Login)
	sessionGroup.Post("/logout", middleware.JWTMiddleware, ctl.Logout)
	sessionGroup.Get("/me", middleware.JWTMiddleware, ctl.Me)
}
