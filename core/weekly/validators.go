package weekly

import "courseboard/core"

type (
	NewWeek struct {
		Title       string   `json:"title" validate:"required"`
		StartDate   string   `json:"start_date" validate:"required,ymddate"`
		Description string   `json:"description" validate:"required"`
		Links       []string `json:"links"`
	}

	// UpdateWeek is the partial update payload; only non-nil fields are applied.
	UpdateWeek struct {
		ID          int       `json:"id" validate:"required"`
		Title       *string   `json:"title" validate:"omitempty"`
		StartDate   *string   `json:"start_date" validate:"omitempty,ymddate"`
		Description *string   `json:"description" validate:"omitempty"`
		Links       *[]string `json:"links"`
	}

	NewComment struct {
		WeekID int    `json:"week_id" validate:"required"`
		Author string `json:"author" validate:"required"`
		Text   string `json:"text" validate:"required"`
	}
)

func (nw *NewWeek) Validate() error {
	nw.Title = core.Sanitize(nw.Title)
	nw.StartDate = core.CleanString(nw.StartDate)
	nw.Description = core.Sanitize(nw.Description)
	if nw.Links == nil {
		nw.Links = []string{}
	}
	return core.Validate.Struct(nw)
}

func (uw *UpdateWeek) Validate() error {
	if uw.Title != nil {
		*uw.Title = core.Sanitize(*uw.Title)
	}
	if uw.StartDate != nil {
		*uw.StartDate = core.CleanString(*uw.StartDate)
	}
	if uw.Description != nil {
		*uw.Description = core.Sanitize(*uw.Description)
	}
	if err := core.Validate.Struct(uw); err != nil {
		return err
	}
	if uw.Title == nil && uw.StartDate == nil && uw.Description == nil && uw.Links == nil {
		return core.NewValidationError(ErrNoFieldsToUpdate)
	}
	return nil
}

func (nc *NewComment) Validate() error {
	nc.Author = core.Sanitize(nc.Author)
	nc.Text = core.Sanitize(nc.Text)
	return core.Validate.Struct(nc)
}
