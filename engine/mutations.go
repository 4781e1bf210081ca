package engine

import (
	"fmt"
	"math"
	"strings"

	"eduverse/models"
)

// Enroll creates an enrollment with zero progress and notifies the user.
// Enrolling twice is a no-op that returns the existing enrollment and emits
// no second notification.
func (e *Engine) Enroll(userID, courseID string) (models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.userByID(userID); !ok {
		return models.Enrollment{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	course, ok := e.courseByID(courseID)
	if !ok {
		return models.Enrollment{}, fmt.Errorf("course %q: %w", courseID, ErrNotFound)
	}
	if existing, ok := e.enrollmentFor(userID, courseID); ok {
		return existing, nil
	}
	if e.enforcePrerequisites && course.PrerequisiteCourseID != nil {
		prereq, ok := e.enrollmentFor(userID, *course.PrerequisiteCourseID)
		if !ok || prereq.Progress < 100 {
			return models.Enrollment{}, validationErrorf("course %q requires completing its prerequisite first", course.Title)
		}
	}

	enrollment := models.Enrollment{
		UserID:           userID,
		CourseID:         courseID,
		Progress:         0,
		CompletedLessons: []string{},
	}
	e.enrollments = append(e.enrollments, enrollment)
	if err := e.persist(keyEnrollments, e.enrollments); err != nil {
		return enrollment, err
	}

	link := "/courses/" + courseID
	e.notifyLocked(userID, "You have enrolled in a new course!", &link)
	return enrollment, nil
}

// CompleteLesson marks a lesson done and recomputes progress as the rounded
// percentage of the course's lessons completed. Reaching 100 on a course
// without a quiz issues the certificate immediately.
func (e *Engine) CompleteLesson(userID, courseID, lessonID string) (models.Enrollment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	course, ok := e.courseByID(courseID)
	if !ok {
		return models.Enrollment{}, fmt.Errorf("course %q: %w", courseID, ErrNotFound)
	}
	idx := -1
	for i, en := range e.enrollments {
		if en.UserID == userID && en.CourseID == courseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Enrollment{}, fmt.Errorf("enrollment for user %q in course %q: %w", userID, courseID, ErrNotFound)
	}
	if _, ok := course.LessonByID(lessonID); !ok {
		return models.Enrollment{}, fmt.Errorf("lesson %q in course %q: %w", lessonID, courseID, ErrNotFound)
	}

	enrollment := e.enrollments[idx]
	if enrollment.Completed(lessonID) {
		return enrollment, nil
	}

	completed := append(append([]string{}, enrollment.CompletedLessons...), lessonID)
	progress := 0
	if len(course.Lessons) > 0 {
		progress = int(math.Round(float64(len(completed)) / float64(len(course.Lessons)) * 100))
	}

	updated := enrollment
	updated.CompletedLessons = completed
	updated.Progress = progress
	e.enrollments[idx] = updated
	if err := e.persist(keyEnrollments, e.enrollments); err != nil {
		return updated, err
	}

	if progress == 100 && course.QuizID == nil {
		e.issueCertificateLocked(userID, courseID)
	}
	return updated, nil
}

// SubmitQuiz scores the answers against the quiz and records the attempt.
// Repeated attempts are all retained. Passing (score >= PassThreshold) with
// a fully completed enrollment in the quiz's course earns the certificate.
// The score is computed here, never taken from the caller.
func (e *Engine) SubmitQuiz(userID, quizID string, answers []int) (models.QuizAttempt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.userByID(userID); !ok {
		return models.QuizAttempt{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	var quiz models.Quiz
	found := false
	for _, q := range e.quizzes {
		if q.ID == quizID {
			quiz, found = q, true
			break
		}
	}
	if !found {
		return models.QuizAttempt{}, fmt.Errorf("quiz %q: %w", quizID, ErrNotFound)
	}
	if len(answers) != len(quiz.Questions) {
		return models.QuizAttempt{}, validationErrorf("quiz %q has %d questions, got %d answers", quizID, len(quiz.Questions), len(answers))
	}

	correct := 0
	for i, q := range quiz.Questions {
		if answers[i] == q.CorrectAnswerIndex {
			correct++
		}
	}
	score := 0
	if len(quiz.Questions) > 0 {
		score = int(math.Round(float64(correct) / float64(len(quiz.Questions)) * 100))
	}

	attempt := models.QuizAttempt{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		Answers:     append([]int{}, answers...),
		SubmittedAt: e.now(),
	}
	e.quizAttempts = append(e.quizAttempts, attempt)
	if err := e.persist(keyQuizAttempts, e.quizAttempts); err != nil {
		return attempt, err
	}

	// At most one course references a given quiz.
	for _, course := range e.courses {
		if course.QuizID == nil || *course.QuizID != quizID {
			continue
		}
		enrollment, enrolled := e.enrollmentFor(userID, course.ID)
		if enrolled && enrollment.Progress == 100 && score >= PassThreshold {
			e.issueCertificateLocked(userID, course.ID)
		}
		break
	}
	return attempt, nil
}

// issueCertificateLocked enforces the at-most-one-per-(user,course)
// invariant: a second call finds the existing record and does nothing.
// Caller holds e.mu.
func (e *Engine) issueCertificateLocked(userID, courseID string) {
	for _, c := range e.certificates {
		if c.UserID == userID && c.CourseID == courseID {
			return
		}
	}
	course, ok := e.courseByID(courseID)
	if !ok {
		return
	}

	cert := models.Certificate{
		ID:        e.newID("cert"),
		UserID:    userID,
		CourseID:  courseID,
		IssueDate: e.now(),
	}
	e.certificates = append(e.certificates, cert)
	e.persist(keyCertificates, e.certificates)

	e.notifyLocked(userID, fmt.Sprintf("Congratulations! You've earned a certificate for %q.", course.Title), nil)
}

// AddReview appends a review with a fresh id and date. Out-of-range ratings
// are rejected; a user may review the same course more than once.
func (e *Engine) AddReview(userID, courseID string, rating int, comment string) (models.Review, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.userByID(userID); !ok {
		return models.Review{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	if _, ok := e.courseByID(courseID); !ok {
		return models.Review{}, fmt.Errorf("course %q: %w", courseID, ErrNotFound)
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, validationErrorf("rating must be between 1 and 5, got %d", rating)
	}

	review := models.Review{
		ID:       e.newID("review"),
		CourseID: courseID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
		Date:     e.now(),
	}
	e.reviews = append(e.reviews, review)
	if err := e.persist(keyReviews, e.reviews); err != nil {
		return review, err
	}
	return review, nil
}

// AddNotification prepends a notification so the log stays newest-first.
func (e *Engine) AddNotification(userID, message string, link *string) (models.Notification, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.userByID(userID); !ok {
		return models.Notification{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	n := e.notifyLocked(userID, message, link)
	return n, nil
}

// notifyLocked builds and prepends the notification. Persistence failures
// are logged inside persist; a lost notification never fails the operation
// that emitted it. Caller holds e.mu.
func (e *Engine) notifyLocked(userID, message string, link *string) models.Notification {
	n := models.Notification{
		ID:        e.newID("notif"),
		UserID:    userID,
		Message:   message,
		IsRead:    false,
		Timestamp: e.now(),
		Link:      link,
	}
	e.notifications = append([]models.Notification{n}, e.notifications...)
	e.persist(keyNotifications, e.notifications)
	return n
}

// MarkNotificationAsRead flips IsRead on the matching notification. An
// unknown id leaves the log untouched and reports no error.
func (e *Engine) MarkNotificationAsRead(notificationID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, n := range e.notifications {
		if n.ID == notificationID {
			if n.IsRead {
				return nil
			}
			updated := n
			updated.IsRead = true
			e.notifications[i] = updated
			return e.persist(keyNotifications, e.notifications)
		}
	}
	return nil
}

// AddUser appends a user with a fresh id. Emails are required and unique
// across the platform, compared case-insensitively.
func (e *Engine) AddUser(user models.User) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" {
		return models.User{}, validationErrorf("user name is required")
	}
	if user.Email == "" {
		return models.User{}, validationErrorf("user email is required")
	}
	if !models.ValidRole(user.Role) {
		return models.User{}, validationErrorf("unknown role %q", user.Role)
	}
	for _, u := range e.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, validationErrorf("email %q is already in use", user.Email)
		}
	}

	user.ID = e.newID("user")
	e.users = append(e.users, user)
	if err := e.persist(keyUsers, e.users); err != nil {
		return user, err
	}
	return user, nil
}

// AddCourse appends a course with a fresh id, assigning ids to any lessons
// and attachments that arrive without one.
func (e *Engine) AddCourse(course models.Course) (models.Course, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validateCourseLocked(&course); err != nil {
		return models.Course{}, err
	}
	course.ID = e.newID("course")
	e.courses = append(e.courses, course)
	if err := e.persist(keyCourses, e.courses); err != nil {
		return course, err
	}
	return course, nil
}

// UpdateCourse replaces the course with the matching id.
func (e *Engine) UpdateCourse(course models.Course) (models.Course, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, c := range e.courses {
		if c.ID == course.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Course{}, fmt.Errorf("course %q: %w", course.ID, ErrNotFound)
	}
	if err := e.validateCourseLocked(&course); err != nil {
		return models.Course{}, err
	}
	e.courses[idx] = course
	if err := e.persist(keyCourses, e.courses); err != nil {
		return course, err
	}
	return course, nil
}

// validateCourseLocked checks required fields and referenced entities, and
// fills in missing lesson/attachment ids. Caller holds e.mu.
func (e *Engine) validateCourseLocked(course *models.Course) error {
	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return validationErrorf("course title is required")
	}
	if course.QuizID != nil {
		found := false
		for _, q := range e.quizzes {
			if q.ID == *course.QuizID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("quiz %q: %w", *course.QuizID, ErrNotFound)
		}
	}
	if course.PrerequisiteCourseID != nil {
		if *course.PrerequisiteCourseID == course.ID {
			return validationErrorf("course %q cannot be its own prerequisite", course.Title)
		}
		if _, ok := e.courseByID(*course.PrerequisiteCourseID); !ok {
			return fmt.Errorf("prerequisite course %q: %w", *course.PrerequisiteCourseID, ErrNotFound)
		}
	}
	for i := range course.Lessons {
		if course.Lessons[i].ID == "" {
			course.Lessons[i].ID = e.newID("lesson")
		}
		for j := range course.Lessons[i].Attachments {
			if course.Lessons[i].Attachments[j].ID == "" {
				course.Lessons[i].Attachments[j].ID = e.newID("attach")
			}
		}
	}
	return nil
}
