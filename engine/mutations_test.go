package engine

import (
	"testing"

	"eduverse/models"
	"eduverse/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrolledNotifications(e *Engine, userID string) []models.Notification {
	var out []models.Notification
	for _, n := range e.NotificationsForUser(userID) {
		if n.Message == "You have enrolled in a new course!" {
			out = append(out, n)
		}
	}
	return out
}

// addQuizlessCourse creates a three-lesson course with no quiz attached and
// returns it with its assigned lesson ids.
func addQuizlessCourse(t *testing.T, e *Engine) models.Course {
	t.Helper()
	course, err := e.AddCourse(models.Course{
		Title:       "Practical Go",
		Description: "A three lesson course with no final quiz.",
		Category:    "Programming",
		Lessons: []models.Lesson{
			{Title: "Setup", Type: models.LessonText, Content: "Install the toolchain.", DurationMinutes: 5},
			{Title: "Syntax", Type: models.LessonText, Content: "Read some code.", DurationMinutes: 10},
			{Title: "Testing", Type: models.LessonText, Content: "Write a test.", DurationMinutes: 15},
		},
	})
	require.NoError(t, err)
	require.Len(t, course.Lessons, 3)
	return course
}

func TestEnrollIsIdempotent(t *testing.T) {
	e := newTestEngine(t)

	first, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Progress)
	assert.Empty(t, first.CompletedLessons)

	second, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// one enrollment, one "enrolled" notification
	assert.Len(t, e.EnrollmentsForUser("user-1"), 1)
	assert.Len(t, enrolledNotifications(e, "user-1"), 1)
}

func TestEnrollUnknownReferences(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Enroll("user-nope", "course-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.Enroll("user-1", "course-nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, e.EnrollmentsForUser("user-1"))
}

func TestCompleteLessonProgressRounding(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)

	// course-1 has 3 lessons: 1/3 -> 33, 2/3 -> 67, 3/3 -> 100
	enrollment, err := e.CompleteLesson("user-1", "course-1", "l1-1")
	require.NoError(t, err)
	assert.Equal(t, 33, enrollment.Progress)

	enrollment, err = e.CompleteLesson("user-1", "course-1", "l1-2")
	require.NoError(t, err)
	assert.Equal(t, 67, enrollment.Progress)

	// completing the same lesson twice changes nothing
	enrollment, err = e.CompleteLesson("user-1", "course-1", "l1-2")
	require.NoError(t, err)
	assert.Equal(t, 67, enrollment.Progress)
	assert.Len(t, enrollment.CompletedLessons, 2)

	enrollment, err = e.CompleteLesson("user-1", "course-1", "l1-3")
	require.NoError(t, err)
	assert.Equal(t, 100, enrollment.Progress)

	// course-1 has a quiz, so full lesson progress alone earns nothing
	assert.Empty(t, e.CertificatesForUser("user-1"))
}

func TestCompleteLessonRequiresEnrollmentAndLesson(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.CompleteLesson("user-1", "course-1", "l1-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.Enroll("user-1", "course-1")
	require.NoError(t, err)

	// a lesson id from another course is rejected, keeping the
	// completed set a subset of the course's lessons
	_, err = e.CompleteLesson("user-1", "course-1", "l2-1")
	assert.ErrorIs(t, err, ErrNotFound)

	enrollment, _ := e.EnrollmentFor("user-1", "course-1")
	assert.Empty(t, enrollment.CompletedLessons)
}

func TestQuizlessCourseIssuesCertificateOnFinalLesson(t *testing.T) {
	e := newTestEngine(t)
	course := addQuizlessCourse(t, e)

	_, err := e.Enroll("user-1", course.ID)
	require.NoError(t, err)

	_, err = e.CompleteLesson("user-1", course.ID, course.Lessons[0].ID)
	require.NoError(t, err)
	_, err = e.CompleteLesson("user-1", course.ID, course.Lessons[1].ID)
	require.NoError(t, err)

	enrollment, _ := e.EnrollmentFor("user-1", course.ID)
	assert.Equal(t, 67, enrollment.Progress)
	assert.Empty(t, e.CertificatesForUser("user-1"))

	_, err = e.CompleteLesson("user-1", course.ID, course.Lessons[2].ID)
	require.NoError(t, err)

	certs := e.CertificatesForUser("user-1")
	require.Len(t, certs, 1)
	assert.Equal(t, course.ID, certs[0].CourseID)

	// calling completeLesson again afterwards must not issue a second one
	_, err = e.CompleteLesson("user-1", course.ID, course.Lessons[2].ID)
	require.NoError(t, err)
	assert.Len(t, e.CertificatesForUser("user-1"), 1)

	// and the congratulatory notification names the course
	var congrats int
	for _, n := range e.NotificationsForUser("user-1") {
		if n.Message == `Congratulations! You've earned a certificate for "Practical Go".` {
			congrats++
		}
	}
	assert.Equal(t, 1, congrats)
}

func TestIssueCertificateIsIdempotent(t *testing.T) {
	e := newTestEngine(t)

	e.mu.Lock()
	e.issueCertificateLocked("user-1", "course-1")
	e.issueCertificateLocked("user-1", "course-1")
	e.mu.Unlock()

	assert.Len(t, e.CertificatesForUser("user-1"), 1)
}

func completeAllLessons(t *testing.T, e *Engine, userID, courseID string) {
	t.Helper()
	course, found := e.CourseByID(courseID)
	require.True(t, found)
	for _, lesson := range course.Lessons {
		_, err := e.CompleteLesson(userID, courseID, lesson.ID)
		require.NoError(t, err)
	}
}

func TestSubmitQuizPassIssuesCertificate(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	completeAllLessons(t, e, "user-1", "course-1")

	attempt, err := e.SubmitQuiz("user-1", "quiz-1", []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 100, attempt.Score)

	certs := e.CertificatesForUser("user-1")
	require.Len(t, certs, 1)
	assert.Equal(t, "course-1", certs[0].CourseID)

	// a later failing attempt is recorded but earns nothing more
	attempt, err = e.SubmitQuiz("user-1", "quiz-1", []int{0, -1, -1})
	require.NoError(t, err)
	assert.Equal(t, 33, attempt.Score)
	assert.Len(t, e.QuizAttemptsForUser("user-1", "quiz-1"), 2)
	assert.Len(t, e.CertificatesForUser("user-1"), 1)
}

func TestSubmitQuizFailingScoreEarnsNothing(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	completeAllLessons(t, e, "user-1", "course-1")

	// 2 of 3 correct is 67, just under the pass threshold
	attempt, err := e.SubmitQuiz("user-1", "quiz-1", []int{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, 67, attempt.Score)
	assert.Empty(t, e.CertificatesForUser("user-1"))
}

func TestSubmitQuizIncompleteCourseEarnsNothing(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	_, err = e.CompleteLesson("user-1", "course-1", "l1-1")
	require.NoError(t, err)

	// perfect score, but lesson progress is below 100
	attempt, err := e.SubmitQuiz("user-1", "quiz-1", []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 100, attempt.Score)
	assert.Empty(t, e.CertificatesForUser("user-1"))

	// the attempt itself is still retained
	assert.Len(t, e.QuizAttemptsForUser("user-1", "quiz-1"), 1)
}

func TestSubmitQuizRejectsMalformedAnswers(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.SubmitQuiz("user-1", "quiz-1", []int{0})
	assert.True(t, IsValidation(err))
	assert.Empty(t, e.QuizAttemptsForUser("user-1", "quiz-1"))

	_, err = e.SubmitQuiz("user-1", "quiz-nope", []int{0})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitQuizWithoutEnrollmentRecordsAttemptOnly(t *testing.T) {
	e := newTestEngine(t)

	attempt, err := e.SubmitQuiz("user-2", "quiz-1", []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 100, attempt.Score)
	assert.Len(t, e.QuizAttemptsForUser("user-2", "quiz-1"), 1)
	assert.Empty(t, e.CertificatesForUser("user-2"))
}

func TestPrerequisiteEnforcement(t *testing.T) {
	e := newTestEngineWith(t, store.NewMemStore(), Options{EnforcePrerequisites: true})

	// course-2 requires course-1
	_, err := e.Enroll("user-1", "course-2")
	assert.True(t, IsValidation(err))

	_, err = e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	_, err = e.Enroll("user-1", "course-2")
	assert.True(t, IsValidation(err), "partial prerequisite progress is not enough")

	completeAllLessons(t, e, "user-1", "course-1")
	_, err = e.Enroll("user-1", "course-2")
	assert.NoError(t, err)
}

func TestAddReviewValidatesRating(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.AddReview("user-1", "course-1", 0, "way too low")
	assert.True(t, IsValidation(err))
	_, err = e.AddReview("user-1", "course-1", 6, "way too high")
	assert.True(t, IsValidation(err))
	_, err = e.AddReview("user-1", "course-nope", 4, "missing course")
	assert.ErrorIs(t, err, ErrNotFound)

	review, err := e.AddReview("user-1", "course-1", 4, "solid")
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.False(t, review.Date.IsZero())
}

func TestNotificationsAreNewestFirst(t *testing.T) {
	e := newTestEngine(t)

	first, err := e.AddNotification("user-1", "first", nil)
	require.NoError(t, err)
	second, err := e.AddNotification("user-1", "second", nil)
	require.NoError(t, err)

	notifications := e.NotificationsForUser("user-1")
	require.Len(t, notifications, 2)
	assert.Equal(t, second.ID, notifications[0].ID)
	assert.Equal(t, first.ID, notifications[1].ID)
}

func TestMarkNotificationAsRead(t *testing.T) {
	e := newTestEngine(t)

	n, err := e.AddNotification("user-1", "hello", nil)
	require.NoError(t, err)

	// unknown id: no error, no mutation
	require.NoError(t, e.MarkNotificationAsRead("notif-nope"))
	notifications := e.NotificationsForUser("user-1")
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsRead)

	require.NoError(t, e.MarkNotificationAsRead(n.ID))
	notifications = e.NotificationsForUser("user-1")
	assert.True(t, notifications[0].IsRead)
}

func TestAddUserEnforcesUniqueEmail(t *testing.T) {
	e := newTestEngine(t)

	user, err := e.AddUser(models.User{Name: "Eve Adams", Email: "eve@example.com", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	_, err = e.AddUser(models.User{Name: "Evil Eve", Email: "EVE@example.com", Role: models.RoleStudent})
	assert.True(t, IsValidation(err))

	_, err = e.AddUser(models.User{Name: "No Email", Email: "", Role: models.RoleStudent})
	assert.True(t, IsValidation(err))

	_, err = e.AddUser(models.User{Name: "Bad Role", Email: "bad@example.com", Role: "WIZARD"})
	assert.True(t, IsValidation(err))
}

func TestAddCourseAssignsIDs(t *testing.T) {
	e := newTestEngine(t)

	course, err := e.AddCourse(models.Course{
		Title:       "New Course",
		Description: "desc",
		Lessons: []models.Lesson{
			{Title: "Only lesson", Type: models.LessonText, Content: "text"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.NotEmpty(t, course.Lessons[0].ID)

	_, err = e.AddCourse(models.Course{Title: ""})
	assert.True(t, IsValidation(err))

	quizID := "quiz-nope"
	_, err = e.AddCourse(models.Course{Title: "Bad quiz ref", QuizID: &quizID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCourse(t *testing.T) {
	e := newTestEngine(t)

	course, found := e.CourseByID("course-3")
	require.True(t, found)
	course.Title = "UI/UX Design Principles, Second Edition"

	updated, err := e.UpdateCourse(course)
	require.NoError(t, err)
	assert.Equal(t, course.Title, updated.Title)

	fetched, _ := e.CourseByID("course-3")
	assert.Equal(t, course.Title, fetched.Title)

	course.ID = "course-nope"
	_, err = e.UpdateCourse(course)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseCannotBeItsOwnPrerequisite(t *testing.T) {
	e := newTestEngine(t)

	course, found := e.CourseByID("course-3")
	require.True(t, found)
	course.PrerequisiteCourseID = strptr("course-3")

	_, err := e.UpdateCourse(course)
	assert.True(t, IsValidation(err))

	// the stored course is untouched
	fetched, _ := e.CourseByID("course-3")
	assert.Nil(t, fetched.PrerequisiteCourseID)
}
