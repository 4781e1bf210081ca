package controllers

import (
	"eduverse/engine"
	"eduverse/middleware"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the session endpoints. The engine is injected, not held
// in a package global.
type Controller struct {
	Engine *engine.Engine
}

func NewController(e *engine.Engine) *Controller {
	return &Controller{Engine: e}
}

// Login switches the session to the requested user and returns a token.
// No password is involved; an unknown user id fails closed.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		UserID string `json:"user_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.Engine.Login(reqData.UserID)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to log in!")
	}

	token, err := middleware.GenerateJWT(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate session token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout clears the current session user.
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	if err := ctl.Engine.Logout(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log out!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Me returns the user the token identifies.
func (ctl *Controller) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, found := ctl.Engine.UserByID(userID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}
