package controllers

import (
	"eduverse/engine"
	"eduverse/middleware"
	"eduverse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// GetQuiz returns a quiz with the correct answers stripped, the way content
// is served to students.
func (ctl *Controller) GetQuiz(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(string); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Params("id")
	quiz, found := ctl.Engine.QuizByID(quizID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	// Hide the answer key from students taking the quiz.
	questions := make([]models.Question, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = q
		questions[i].CorrectAnswerIndex = -1
	}
	quiz.Questions = questions

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// SubmitQuiz records a scored attempt. The score is computed server-side;
// a passing score on a fully completed course earns the certificate.
func (ctl *Controller) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Copied because the attempt stores the quiz id past this request.
	quizID := utils.CopyString(c.Params("id"))
	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers []int `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	attempt, err := ctl.Engine.SubmitQuiz(userID, quizID, reqData.Answers)
	if err != nil {
		return middleware.EngineErrorResponse(c, err, "Failed to submit quiz!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt": attempt,
		"passed":  attempt.Score >= engine.PassThreshold,
	})
}

// GetQuizAttempts lists the current user's attempts at a quiz.
func (ctl *Controller) GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Params("id")
	if _, found := ctl.Engine.QuizByID(quizID); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	attempts := ctl.Engine.QuizAttemptsForUser(userID, quizID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
		"total":    len(attempts),
	})
}
