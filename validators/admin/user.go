package adminValidator

import (
	"eduverse/middleware"
	"eduverse/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CreateUser validates the admin create-user request
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name      string `json:"name"`
			Email     string `json:"email"`
			Role      string `json:"role"`
			AvatarURL string `json:"avatar_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Role = strings.TrimSpace(reqData.Role)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Email is not valid!"
		}

		if reqData.Role == "" {
			reqData.Role = string(models.RoleStudent)
		} else if !models.ValidRole(models.UserRole(reqData.Role)) {
			errors["role"] = "Role must be STUDENT, INSTRUCTOR, or ADMIN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
