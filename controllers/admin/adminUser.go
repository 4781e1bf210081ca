package controllers

import (
	"eduverse/engine"
	"eduverse/middleware"
	"eduverse/models"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the admin and instructor management endpoints.
type Controller struct {
	Engine *engine.Engine
}

func NewController(e *engine.Engine) *Controller {
	return &Controller{Engine: e}
}

// CreateUser adds a platform user. Emails must be unique.
func (ctl *Controller) CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		AvatarURL string `json:"avatar_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.Engine.AddUser(models.User{
		Name:      reqData.Name,
		Email:     reqData.Email,
		Role:      models.UserRole(reqData.Role),
		AvatarURL: reqData.AvatarURL,
	})
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to create user!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

// GetAllUsers lists every platform user.
func (ctl *Controller) GetAllUsers(c *fiber.Ctx) error {
	users := ctl.Engine.Users()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"total": len(users),
	})
}
