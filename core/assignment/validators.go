package assignment

import "courseboard/core"

type (
	NewAssignment struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		DueDate     string   `json:"due_date" validate:"required,ymddate"`
		Files       []string `json:"files"`
	}

	// UpdateAssignment is the partial update payload; only non-nil fields are applied.
	UpdateAssignment struct {
		ID          int       `json:"id" validate:"required"`
		Title       *string   `json:"title" validate:"omitempty"`
		Description *string   `json:"description" validate:"omitempty"`
		DueDate     *string   `json:"due_date" validate:"omitempty,ymddate"`
		Files       *[]string `json:"files"`
	}

	NewComment struct {
		AssignmentID int    `json:"assignment_id" validate:"required"`
		Author       string `json:"author" validate:"required"`
		Text         string `json:"text" validate:"required"`
	}
)

func (na *NewAssignment) Validate() error {
	na.Title = core.Sanitize(na.Title)
	na.Description = core.Sanitize(na.Description)
	na.DueDate = core.CleanString(na.DueDate)
	if na.Files == nil {
		na.Files = []string{}
	}
	return core.Validate.Struct(na)
}

func (ua *UpdateAssignment) Validate() error {
	if ua.Title != nil {
		*ua.Title = core.Sanitize(*ua.Title)
	}
	if ua.Description != nil {
		*ua.Description = core.Sanitize(*ua.Description)
	}
	if ua.DueDate != nil {
		*ua.DueDate = core.CleanString(*ua.DueDate)
	}
	if err := core.Validate.Struct(ua); err != nil {
		return err
	}
	if ua.Title == nil && ua.Description == nil && ua.DueDate == nil && ua.Files == nil {
		return core.NewValidationError(ErrNoFieldsToUpdate)
	}
	return nil
}

func (nc *NewComment) Validate() error {
	nc.Author = core.Sanitize(nc.Author)
	nc.Text = core.Sanitize(nc.Text)
	return core.Validate.Struct(nc)
}
