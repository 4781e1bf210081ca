package models

import "time"

// Notification targets a single user. The notification log is kept
// newest-first; entries are never deleted, only marked read.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	Timestamp time.Time `json:"timestamp"`
	Link      *string   `json:"link,omitempty"`
}
