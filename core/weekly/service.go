package weekly

import (
	"errors"
	"time"

	"courseboard/core"
)

var (
	ErrNotFound         = errors.New("Week not found")
	ErrCommentNotFound  = errors.New("Comment not found")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)

type (
	Repository interface {
		CreateWeek(w Week) (Week, error)
		// QueryWeeks applies QueryFilter.Search on title and description.
		QueryWeeks(filter core.QueryFilter) ([]Week, error)
		GetWeek(id int) (Week, error)
		UpdateWeek(w Week) (Week, error)
		// DeleteWeek removes the week and its comments in one transaction.
		DeleteWeek(id int) error

		// CreateComment fails with ErrNotFound when the week is missing.
		CreateComment(c Comment) (Comment, error)
		QueryComments(weekID int) ([]Comment, error)
		DeleteComment(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nw NewWeek) (Week, error) {
	now := time.Now().UTC()
	w := Week{
		Title:       nw.Title,
		StartDate:   nw.StartDate,
		Description: nw.Description,
		Links:       nw.Links,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if w.Links == nil {
		w.Links = []string{}
	}
	return svc.repo.CreateWeek(w)
}

func (svc *Service) Query(filter core.QueryFilter) ([]Week, error) {
	return svc.repo.QueryWeeks(filter)
}

func (svc *Service) GetByID(id int) (Week, error) {
	return svc.repo.GetWeek(id)
}

// Update applies non-nil fields and returns the freshly stored record.
func (svc *Service) Update(uw UpdateWeek) (Week, error) {
	w, err := svc.repo.GetWeek(uw.ID)
	if err != nil {
		return Week{}, err
	}
	if uw.Title != nil {
		w.Title = *uw.Title
	}
	if uw.StartDate != nil {
		w.StartDate = *uw.StartDate
	}
	if uw.Description != nil {
		w.Description = *uw.Description
	}
	if uw.Links != nil {
		w.Links = *uw.Links
		if w.Links == nil {
			w.Links = []string{}
		}
	}
	w.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateWeek(w)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteWeek(id)
}

func (svc *Service) CreateComment(nc NewComment) (Comment, error) {
	c := Comment{
		WeekID:    nc.WeekID,
		Author:    nc.Author,
		Text:      nc.Text,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateComment(c)
}

func (svc *Service) QueryComments(weekID int) ([]Comment, error) {
	return svc.repo.QueryComments(weekID)
}

func (svc *Service) DeleteComment(id int) error {
	return svc.repo.DeleteComment(id)
}
