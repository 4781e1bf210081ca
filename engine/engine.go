package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"eduverse/models"
	"eduverse/store"

	"github.com/google/uuid"
)

// PassThreshold is the quiz score (percent) required, together with 100%
// lesson progress, to earn a certificate through a quiz.
const PassThreshold = 70

// Store keys, one per entity collection plus the session pointer and the
// schema version stamp.
const (
	keyUsers         = "eduverse_users"
	keyCourses       = "eduverse_courses"
	keyQuizzes       = "eduverse_quizzes"
	keyEnrollments   = "eduverse_enrollments"
	keyQuizAttempts  = "eduverse_quiz_attempts"
	keyCertificates  = "eduverse_certificates"
	keyReviews       = "eduverse_reviews"
	keyNotifications = "eduverse_notifications"
	keyCurrentUser   = "eduverse_current_user"
	keySchemaVersion = "eduverse_schema_version"
)

// schemaVersion stamps the stored shape so a future layout change can detect
// and migrate old data instead of misreading it.
const schemaVersion = 1

// Options tunes engine behavior. The zero value gives production defaults.
type Options struct {
	// EnforcePrerequisites makes Enroll require a completed enrollment in a
	// course's prerequisite before enrolling. Off by default.
	EnforcePrerequisites bool
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
	// NewID overrides fresh-id generation, for tests. Ids must stay unique
	// for the process lifetime.
	NewID func(prefix string) string
}

// Engine owns every entity collection and the current-session user, and is
// the only place domain invariants are enforced. Handlers hold a reference
// to it; there are no package-level globals. The mutex makes each mutation's
// read-modify-write atomic under concurrent requests.
type Engine struct {
	mu sync.Mutex
	st store.Store

	users         []models.User
	courses       []models.Course
	quizzes       []models.Quiz
	enrollments   []models.Enrollment
	quizAttempts  []models.QuizAttempt
	certificates  []models.Certificate
	reviews       []models.Review
	notifications []models.Notification
	currentUserID string

	enforcePrerequisites bool
	now                  func() time.Time
	newID                func(prefix string) string
}

// New loads all collections from the store, seeding initial data on first
// run, and returns a ready engine.
func New(st store.Store, opts Options) (*Engine, error) {
	e := &Engine{
		st:                   st,
		enforcePrerequisites: opts.EnforcePrerequisites,
		now:                  opts.Clock,
		newID:                opts.NewID,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = func(prefix string) string { return prefix + "-" + uuid.NewString() }
	}

	if err := e.checkSchemaVersion(); err != nil {
		return nil, err
	}

	hasUsers := e.loadCollection(keyUsers, &e.users)
	hasCourses := e.loadCollection(keyCourses, &e.courses)
	hasQuizzes := e.loadCollection(keyQuizzes, &e.quizzes)
	e.loadCollection(keyEnrollments, &e.enrollments)
	e.loadCollection(keyQuizAttempts, &e.quizAttempts)
	e.loadCollection(keyCertificates, &e.certificates)
	e.loadCollection(keyReviews, &e.reviews)
	e.loadCollection(keyNotifications, &e.notifications)
	if err := st.Load(keyCurrentUser, &e.currentUserID); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("[ENGINE] failed to load %s, starting logged out: %v", keyCurrentUser, err)
	}

	// Seed whichever catalog collections are missing. On a true first run
	// that is all three; a store missing only some of them has lost data,
	// which is worth a warning before refilling the gaps.
	if !hasUsers || !hasCourses || !hasQuizzes {
		if hasUsers || hasCourses || hasQuizzes {
			log.Printf("[ENGINE] store is missing part of the catalog (users=%t courses=%t quizzes=%t), seeding the missing collections", hasUsers, hasCourses, hasQuizzes)
		}
		if err := e.seed(!hasUsers, !hasQuizzes, !hasCourses); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) checkSchemaVersion() error {
	var version int
	err := e.st.Load(keySchemaVersion, &version)
	if errors.Is(err, store.ErrNotFound) {
		return e.st.Save(keySchemaVersion, schemaVersion)
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("stored data has schema version %d, this build supports %d", version, schemaVersion)
	}
	return nil
}

// loadCollection fills dest from the store. A missing key leaves the default
// and reports false. A corrupt value is logged and the default kept; the bad
// document is overwritten on the next save.
func (e *Engine) loadCollection(key string, dest interface{}) bool {
	err := e.st.Load(key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[ENGINE] failed to load %s, falling back to empty collection: %v", key, err)
	}
	return false
}

func (e *Engine) persist(key string, value interface{}) error {
	if err := e.st.Save(key, value); err != nil {
		log.Printf("[ENGINE] failed to persist %s: %v", key, err)
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// ---- Session ----

// Login sets the current user. An unknown id fails closed: the session is
// left unchanged and ErrNotFound returned.
func (e *Engine) Login(userID string) (models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.userByID(userID)
	if !ok {
		return models.User{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	e.currentUserID = user.ID
	if err := e.persist(keyCurrentUser, e.currentUserID); err != nil {
		return user, err
	}
	return user, nil
}

// Logout clears the current user unconditionally.
func (e *Engine) Logout() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.currentUserID = ""
	return e.persist(keyCurrentUser, e.currentUserID)
}

// CurrentUser returns the logged-in user, if any.
func (e *Engine) CurrentUser() (models.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.currentUserID == "" {
		return models.User{}, false
	}
	return e.userByID(e.currentUserID)
}

// ---- Query accessors (pure) ----

func (e *Engine) UserByID(userID string) (models.User, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userByID(userID)
}

func (e *Engine) CourseByID(courseID string) (models.Course, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.courseByID(courseID)
}

func (e *Engine) QuizByID(quizID string) (models.Quiz, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, q := range e.quizzes {
		if q.ID == quizID {
			return q, true
		}
	}
	return models.Quiz{}, false
}

// EnrollmentFor looks up by the (userID, courseID) composite key; absence
// means "not enrolled".
func (e *Engine) EnrollmentFor(userID, courseID string) (models.Enrollment, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enrollmentFor(userID, courseID)
}

// ReviewsForCourse returns the course's reviews in insertion order.
func (e *Engine) ReviewsForCourse(courseID string) []models.Review {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Review
	for _, r := range e.reviews {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) Users() []models.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.User{}, e.users...)
}

func (e *Engine) Courses() []models.Course {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Course{}, e.courses...)
}

func (e *Engine) EnrollmentsForUser(userID string) []models.Enrollment {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Enrollment
	for _, en := range e.enrollments {
		if en.UserID == userID {
			out = append(out, en)
		}
	}
	return out
}

func (e *Engine) CertificatesForUser(userID string) []models.Certificate {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Certificate
	for _, c := range e.certificates {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// NotificationsForUser returns the user's notifications newest-first.
func (e *Engine) NotificationsForUser(userID string) []models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.Notification
	for _, n := range e.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (e *Engine) QuizAttemptsForUser(userID, quizID string) []models.QuizAttempt {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []models.QuizAttempt
	for _, a := range e.quizAttempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, a)
		}
	}
	return out
}

// Snapshot is a read-only copy of the full engine state, used by the backup
// scheduler and the admin report.
type Snapshot struct {
	Users         []models.User         `json:"users"`
	Courses       []models.Course       `json:"courses"`
	Quizzes       []models.Quiz         `json:"quizzes"`
	Enrollments   []models.Enrollment   `json:"enrollments"`
	QuizAttempts  []models.QuizAttempt  `json:"quiz_attempts"`
	Certificates  []models.Certificate  `json:"certificates"`
	Reviews       []models.Review       `json:"reviews"`
	Notifications []models.Notification `json:"notifications"`
	CurrentUserID string                `json:"current_user_id,omitempty"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Users:         append([]models.User{}, e.users...),
		Courses:       append([]models.Course{}, e.courses...),
		Quizzes:       append([]models.Quiz{}, e.quizzes...),
		Enrollments:   append([]models.Enrollment{}, e.enrollments...),
		QuizAttempts:  append([]models.QuizAttempt{}, e.quizAttempts...),
		Certificates:  append([]models.Certificate{}, e.certificates...),
		Reviews:       append([]models.Review{}, e.reviews...),
		Notifications: append([]models.Notification{}, e.notifications...),
		CurrentUserID: e.currentUserID,
	}
}

// RestoreSnapshot writes a snapshot's collections into st, replacing
// whatever the store holds. Used by the restore script; a running engine
// over the same store must be restarted to pick the data up.
func RestoreSnapshot(st store.Store, snapshot Snapshot) error {
	collections := map[string]interface{}{
		keyUsers:         snapshot.Users,
		keyCourses:       snapshot.Courses,
		keyQuizzes:       snapshot.Quizzes,
		keyEnrollments:   snapshot.Enrollments,
		keyQuizAttempts:  snapshot.QuizAttempts,
		keyCertificates:  snapshot.Certificates,
		keyReviews:       snapshot.Reviews,
		keyNotifications: snapshot.Notifications,
		keyCurrentUser:   snapshot.CurrentUserID,
	}
	for key, value := range collections {
		if err := st.Save(key, value); err != nil {
			return fmt.Errorf("restore %s: %w", key, err)
		}
	}
	return st.Save(keySchemaVersion, schemaVersion)
}

// ---- internal lookups, caller holds e.mu ----

func (e *Engine) userByID(userID string) (models.User, bool) {
	for _, u := range e.users {
		if u.ID == userID {
			return u, true
		}
	}
	return models.User{}, false
}

func (e *Engine) courseByID(courseID string) (models.Course, bool) {
	for _, c := range e.courses {
		if c.ID == courseID {
			return c, true
		}
	}
	return models.Course{}, false
}

func (e *Engine) enrollmentFor(userID, courseID string) (models.Enrollment, bool) {
	for _, en := range e.enrollments {
		if en.UserID == userID && en.CourseID == courseID {
			return en, true
		}
	}
	return models.Enrollment{}, false
}
