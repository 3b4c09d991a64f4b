package discussion

import "courseboard/core"

type (
	NewTopic struct {
		TopicID string `json:"topic_id" validate:"required"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
		Author  string `json:"author" validate:"required"`
	}

	// UpdateTopic is the partial update payload; only non-nil fields are applied.
	UpdateTopic struct {
		TopicID string  `json:"topic_id" validate:"required"`
		Subject *string `json:"subject" validate:"omitempty"`
		Message *string `json:"message" validate:"omitempty"`
	}

	NewReply struct {
		ReplyID string `json:"reply_id" validate:"required"`
		TopicID string `json:"topic_id" validate:"required"`
		Text    string `json:"text" validate:"required"`
		Author  string `json:"author" validate:"required"`
	}
)

func (nt *NewTopic) Validate() error {
	nt.TopicID = core.Sanitize(nt.TopicID)
	nt.Subject = core.Sanitize(nt.Subject)
	nt.Message = core.Sanitize(nt.Message)
	nt.Author = core.Sanitize(nt.Author)
	return core.Validate.Struct(nt)
}

func (ut *UpdateTopic) Validate() error {
	ut.TopicID = core.Sanitize(ut.TopicID)
	if ut.Subject != nil {
		*ut.Subject = core.Sanitize(*ut.Subject)
	}
	if ut.Message != nil {
		*ut.Message = core.Sanitize(*ut.Message)
	}
	if err := core.Validate.Struct(ut); err != nil {
		return err
	}
	if ut.Subject == nil && ut.Message == nil {
		return core.NewValidationError(ErrNoFieldsToUpdate)
	}
	return nil
}

func (nr *NewReply) Validate() error {
	nr.ReplyID = core.Sanitize(nr.ReplyID)
	nr.TopicID = core.Sanitize(nr.TopicID)
	nr.Text = core.Sanitize(nr.Text)
	nr.Author = core.Sanitize(nr.Author)
	return core.Validate.Struct(nr)
}
