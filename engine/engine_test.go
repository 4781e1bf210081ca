package engine

import (
	"fmt"
	"testing"
	"time"

	"eduverse/models"
	"eduverse/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngineWith(t *testing.T, st store.Store, opts Options) *Engine {
	t.Helper()
	counter := 0
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	}
	if opts.NewID == nil {
		opts.NewID = func(prefix string) string {
			counter++
			return fmt.Sprintf("%s-t%d", prefix, counter)
		}
	}
	e, err := New(st, opts)
	require.NoError(t, err)
	return e
}

func newTestEngine(t *testing.T) *Engine {
	return newTestEngineWith(t, store.NewMemStore(), Options{})
}

func TestSeedOnFirstRun(t *testing.T) {
	e := newTestEngine(t)

	assert.Len(t, e.Users(), 4)
	assert.Len(t, e.Courses(), 3)

	course, found := e.CourseByID("course-1")
	require.True(t, found)
	assert.Len(t, course.Lessons, 3)
	require.NotNil(t, course.QuizID)
	assert.Equal(t, "quiz-1", *course.QuizID)

	// course-3 has no quiz attached
	course3, found := e.CourseByID("course-3")
	require.True(t, found)
	assert.Nil(t, course3.QuizID)
}

func TestLoginFailsClosedOnUnknownUser(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Login("user-nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, loggedIn := e.CurrentUser()
	assert.False(t, loggedIn)

	user, err := e.Login("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", user.Name)

	current, loggedIn := e.CurrentUser()
	assert.True(t, loggedIn)
	assert.Equal(t, "user-1", current.ID)

	require.NoError(t, e.Logout())
	_, loggedIn = e.CurrentUser()
	assert.False(t, loggedIn)
}

func TestStateSurvivesRestart(t *testing.T) {
	st := store.NewMemStore()
	e := newTestEngineWith(t, st, Options{})

	_, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	_, err = e.Login("user-1")
	require.NoError(t, err)

	// A fresh engine over the same store must see the same state, not
	// re-seed over it.
	reloaded := newTestEngineWith(t, st, Options{})
	enrollment, enrolled := reloaded.EnrollmentFor("user-1", "course-1")
	require.True(t, enrolled)
	assert.Equal(t, 0, enrollment.Progress)

	current, loggedIn := reloaded.CurrentUser()
	assert.True(t, loggedIn)
	assert.Equal(t, "user-1", current.ID)
	assert.Len(t, reloaded.Users(), 4)
}

func TestMissingCatalogCollectionsAreReseeded(t *testing.T) {
	st := store.NewMemStore()
	custom := []models.User{
		{ID: "user-x", Name: "Xavier Stone", Email: "xavier@example.com", Role: models.RoleAdmin},
	}
	require.NoError(t, st.Save("eduverse_users", custom))

	// users exist but courses and quizzes were lost; only the gaps are
	// refilled, the surviving collection is kept as is
	e := newTestEngineWith(t, st, Options{})
	users := e.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "user-x", users[0].ID)
	assert.Len(t, e.Courses(), 3)
	_, found := e.QuizByID("quiz-1")
	assert.True(t, found)
}

func TestSchemaVersionFromTheFuture(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Save("eduverse_schema_version", schemaVersion+1))

	_, err := New(st, Options{})
	assert.Error(t, err)
}

func TestCapabilities(t *testing.T) {
	e := newTestEngine(t)

	// user-1 student, user-3 instructor, user-4 admin
	assert.True(t, e.Can("user-1", CapEnroll))
	assert.False(t, e.Can("user-1", CapManageCourses))
	assert.False(t, e.Can("user-1", CapManageUsers))

	assert.True(t, e.Can("user-3", CapManageCourses))
	assert.False(t, e.Can("user-3", CapManageUsers))
	assert.False(t, e.Can("user-3", CapEnroll))

	assert.True(t, e.Can("user-4", CapManageUsers))
	assert.True(t, e.Can("user-4", CapManageCourses))

	assert.False(t, e.Can("user-nope", CapEnroll))
}

func TestReviewsForCourseKeepsInsertionOrder(t *testing.T) {
	e := newTestEngine(t)

	first, err := e.AddReview("user-1", "course-1", 5, "Great course")
	require.NoError(t, err)
	second, err := e.AddReview("user-2", "course-1", 3, "Decent")
	require.NoError(t, err)
	_, err = e.AddReview("user-1", "course-2", 4, "Other course")
	require.NoError(t, err)

	reviews := e.ReviewsForCourse("course-1")
	require.Len(t, reviews, 2)
	assert.Equal(t, first.ID, reviews[0].ID)
	assert.Equal(t, second.ID, reviews[1].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(t)

	snapshot := e.Snapshot()
	snapshot.Users[0].Name = "mutated"

	users := e.Users()
	assert.Equal(t, "Alice Johnson", users[0].Name)
	assert.Len(t, snapshot.Courses, 3)
	assert.Len(t, snapshot.Quizzes, 2)
}

func TestRestoreSnapshotIntoFreshStore(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Enroll("user-1", "course-1")
	require.NoError(t, err)
	_, err = e.Login("user-1")
	require.NoError(t, err)

	target := store.NewMemStore()
	require.NoError(t, RestoreSnapshot(target, e.Snapshot()))

	restored := newTestEngineWith(t, target, Options{})
	assert.Len(t, restored.Users(), 4)
	_, enrolled := restored.EnrollmentFor("user-1", "course-1")
	assert.True(t, enrolled)
	current, loggedIn := restored.CurrentUser()
	require.True(t, loggedIn)
	assert.Equal(t, "user-1", current.ID)
}

func TestUserByIDAbsence(t *testing.T) {
	e := newTestEngine(t)

	_, found := e.UserByID("user-nope")
	assert.False(t, found)
	_, found = e.CourseByID("course-nope")
	assert.False(t, found)
	_, found = e.QuizByID("quiz-nope")
	assert.False(t, found)
	_, enrolled := e.EnrollmentFor("user-1", "course-1")
	assert.False(t, enrolled)

	user, found := e.UserByID("user-1")
	require.True(t, found)
	assert.Equal(t, models.RoleStudent, user.Role)
}
