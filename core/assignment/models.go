package assignment

import "time"

type (
	// Assignment is a graded course task. Files is an ordered list of file
	// URLs/paths, always non-nil in API responses.
	Assignment struct {
		ID          int       `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		DueDate     string    `json:"due_date"` // YYYY-MM-DD
		Files       []string  `json:"files"`
		CreatedAt   time.Time `json:"created_at"` // UTC
		UpdatedAt   time.Time `json:"updated_at"` // UTC
	}

	// Comment is an assignment-scoped discussion comment. Comments are only
	// ever created and deleted, never updated.
	Comment struct {
		ID           int       `json:"id" db:"id"`
		AssignmentID int       `json:"assignment_id" db:"assignment_id"`
		Author       string    `json:"author" db:"author"`
		Text         string    `json:"text" db:"text"`
		CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
	}
)
