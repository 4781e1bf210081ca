package courseValidator

import (
	"eduverse/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz validates a quiz submission request. Answer/question count
// matching is checked against the quiz by the engine.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("id"))
		if quizID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz ID is required!", nil)
		}

		reqData := new(struct {
			Answers []int `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		for _, a := range reqData.Answers {
			// -1 marks an unanswered question
			if a < -1 {
				errors["answers"] = "Answer indices must be -1 or a valid option index!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizSubmission", reqData)
		return c.Next()
	}
}
