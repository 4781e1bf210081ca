package models

import "time"

type Review struct {
	ID       string    `json:"id"`
	CourseID string    `json:"course_id"`
	UserID   string    `json:"user_id"`
	Rating   int       `json:"rating"` // 1-5
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}
