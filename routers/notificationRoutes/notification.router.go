package notificationRoutes

import (
	controllers "eduverse/controllers/notification"
	"eduverse/engine"
	"eduverse/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the notification routes
func SetupNotificationRoutes(app *fiber.App, e *engine.Engine) {
	ctl := controllers.NewController(e)

	notificationGroup := app.Group("/notifications")
	notificationGroup.Get("/", middleware.JWTMiddleware, ctl.GetNotifications)
	notificationGroup.Post("/:id/read", middleware.JWTMiddleware, ctl.MarkAsRead)
}
