package models

import "time"

type Question struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// QuizAttempt is one scored submission. Answers holds the selected option
// index per question, -1 meaning unanswered. Every attempt is retained.
type QuizAttempt struct {
	UserID      string    `json:"user_id"`
	QuizID      string    `json:"quiz_id"`
	Score       int       `json:"score"` // percentage 0-100
	Answers     []int     `json:"answers"`
	SubmittedAt time.Time `json:"submitted_at"`
}
