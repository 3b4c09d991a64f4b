package weekly

import "time"

type (
	// Week is one entry of the weekly course breakdown. Links is an ordered
	// list of resource URLs, always non-nil in API responses.
	Week struct {
		ID          int       `json:"id"`
		Title       string    `json:"title"`
		StartDate   string    `json:"start_date"` // YYYY-MM-DD
		Description string    `json:"description"`
		Links       []string  `json:"links"`
		CreatedAt   time.Time `json:"created_at"` // UTC
		UpdatedAt   time.Time `json:"updated_at"` // UTC
	}

	// Comment is a week-scoped discussion comment.
	Comment struct {
		ID        int       `json:"id" db:"id"`
		WeekID    int       `json:"week_id" db:"week_id"`
		Author    string    `json:"author" db:"author"`
		Text      string    `json:"text" db:"text"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	}
)
