package courseRoutes

import (
	controllers "eduverse/controllers/course"
	"eduverse/engine"
	"eduverse/middleware"
	validators "eduverse/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course, quiz, and certificate routes
func SetupCourseRoutes(app *fiber.App, e *engine.Engine) {
	ctl := controllers.NewController(e)

	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, ctl.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, ctl.GetCourseDetails)

	// Enrollment and lesson progress
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.RequireCapability(e, engine.CapEnroll), validators.EnrollCourse(), ctl.EnrollInCourse)
	courseGroup.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.CompleteLesson(), ctl.CompleteLesson)
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, ctl.GetUserProgress)

	// Reviews
	courseGroup.Get("/:id/reviews", middleware.JWTMiddleware, ctl.GetCourseReviews)
	courseGroup.Post("/:id/reviews", middleware.JWTMiddleware, validators.AddReview(), ctl.AddReview)

	// Quizzes
	quizGroup := app.Group("/quiz")
	quizGroup.Get("/:id", middleware.JWTMiddleware, ctl.GetQuiz)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), ctl.SubmitQuiz)
	quizGroup.Get("/:id/attempts", middleware.JWTMiddleware, ctl.GetQuizAttempts)

	// Per-user views
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, ctl.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, ctl.GetUserCertificates)
}
