package models

// LessonType marks how Lesson.Content is interpreted
type LessonType string

const (
	LessonVideo LessonType = "VIDEO" // Content is an embed URL
	LessonText  LessonType = "TEXT"  // Content is markdown text
)

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // free-form file type label
	URL  string `json:"url"`
}

type Lesson struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Type            LessonType   `json:"type"`
	Content         string       `json:"content"`
	DurationMinutes int          `json:"duration_minutes"`
	Attachments     []Attachment `json:"attachments"`
}

// Course owns its lessons; lesson order is the display order and the
// denominator for enrollment progress.
type Course struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	ThumbnailURL         string   `json:"thumbnail_url"`
	InstructorIDs        []string `json:"instructor_ids"`
	Lessons              []Lesson `json:"lessons"`
	QuizID               *string  `json:"quiz_id,omitempty"`
	PrerequisiteCourseID *string  `json:"prerequisite_course_id,omitempty"`
}

// LessonByID returns the lesson with the given id, if the course owns it.
func (c *Course) LessonByID(lessonID string) (Lesson, bool) {
	for _, l := range c.Lessons {
		if l.ID == lessonID {
			return l, true
		}
	}
	return Lesson{}, false
}
