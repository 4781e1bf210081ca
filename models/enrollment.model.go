package models

// Enrollment links a user to a course. Identified by the (UserID, CourseID)
// pair; Progress is the rounded percentage of course lessons completed.
type Enrollment struct {
	UserID           string   `json:"user_id"`
	CourseID         string   `json:"course_id"`
	Progress         int      `json:"progress"` // 0-100
	CompletedLessons []string `json:"completed_lessons"`
}

// Completed reports whether lessonID has already been marked complete.
func (e *Enrollment) Completed(lessonID string) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
