package models

import "time"

// Certificate is the proof-of-completion record, issued at most once per
// (user, course) pair.
type Certificate struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	IssueDate time.Time `json:"issue_date"`
}
