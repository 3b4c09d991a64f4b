package assignment

import (
	"errors"
	"time"

	"courseboard/core"
)

var (
	ErrNotFound         = errors.New("Assignment not found")
	ErrCommentNotFound  = errors.New("Comment not found")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)

type (
	Repository interface {
		CreateAssignment(a Assignment) (Assignment, error)
		// QueryAssignments applies QueryFilter.Search on title and description.
		QueryAssignments(filter core.QueryFilter) ([]Assignment, error)
		GetAssignment(id int) (Assignment, error)
		UpdateAssignment(a Assignment) (Assignment, error)
		// DeleteAssignment removes the assignment and its comments in one transaction.
		DeleteAssignment(id int) error

		CreateComment(c Comment) (Comment, error)
		QueryComments(assignmentID int) ([]Comment, error)
		DeleteComment(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	now := time.Now().UTC()
	a := Assignment{
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		Files:       na.Files,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if a.Files == nil {
		a.Files = []string{}
	}
	return svc.repo.CreateAssignment(a)
}

func (svc *Service) Query(filter core.QueryFilter) ([]Assignment, error) {
	return svc.repo.QueryAssignments(filter)
}

func (svc *Service) GetByID(id int) (Assignment, error) {
	return svc.repo.GetAssignment(id)
}

func (svc *Service) Update(ua UpdateAssignment) (Assignment, error) {
	a, err := svc.repo.GetAssignment(ua.ID)
	if err != nil {
		return Assignment{}, err
	}
	if ua.Title != nil {
		a.Title = *ua.Title
	}
	if ua.Description != nil {
		a.Description = *ua.Description
	}
	if ua.DueDate != nil {
		a.DueDate = *ua.DueDate
	}
	if ua.Files != nil {
		a.Files = *ua.Files
		if a.Files == nil {
			a.Files = []string{}
		}
	}
	a.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateAssignment(a)
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteAssignment(id)
}

// CreateComment attaches a comment to an existing assignment; a missing
// parent yields ErrNotFound.
func (svc *Service) CreateComment(nc NewComment) (Comment, error) {
	c := Comment{
		AssignmentID: nc.AssignmentID,
		Author:       nc.Author,
		Text:         nc.Text,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateComment(c)
}

func (svc *Service) QueryComments(assignmentID int) ([]Comment, error) {
	return svc.repo.QueryComments(assignmentID)
}

func (svc *Service) DeleteComment(id int) error {
	return svc.repo.DeleteComment(id)
}
