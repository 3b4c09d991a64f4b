package discussion

import "time"

type (
	// Topic is a discussion board thread. The external key is the
	// caller-supplied topic identifier (e.g. "topic_1234567890").
	Topic struct {
		TopicID   string    `json:"topic_id" db:"topic_id"`
		Subject   string    `json:"subject" db:"subject"`
		Message   string    `json:"message" db:"message"`
		Author    string    `json:"author" db:"author"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	}

	// Reply belongs to a Topic and is removed with it.
	Reply struct {
		ReplyID   string    `json:"reply_id" db:"reply_id"`
		TopicID   string    `json:"topic_id" db:"topic_id"`
		Text      string    `json:"text" db:"text"`
		Author    string    `json:"author" db:"author"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	}
)
