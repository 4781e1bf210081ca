package controllers

import (
	"eduverse/engine"
	"eduverse/middleware"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the notification endpoints.
type Controller struct {
	Engine *engine.Engine
}

func NewController(e *engine.Engine) *Controller {
	return &Controller{Engine: e}
}

// GetNotifications lists the current user's notifications, newest first.
func (ctl *Controller) GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notifications := ctl.Engine.NotificationsForUser(userID)
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"total":         len(notifications),
		"unread":        unread,
	})
}

// MarkAsRead flips a notification to read. An unknown id changes nothing.
func (ctl *Controller) MarkAsRead(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Params("id")
	if err := ctl.Engine.MarkNotificationAsRead(notificationID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", nil)
}
