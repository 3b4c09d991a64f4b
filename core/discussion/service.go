package discussion

import (
	"errors"
	"time"

	"courseboard/core"
)

var (
	ErrTopicNotFound    = errors.New("Topic not found")
	ErrTopicExists      = errors.New("Topic ID already exists")
	ErrParentNotFound   = errors.New("Parent topic not found")
	ErrReplyNotFound    = errors.New("Reply not found")
	ErrReplyExists      = errors.New("Reply ID already exists")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)

type (
	Repository interface {
		CreateTopic(t Topic) (Topic, error)
		// QueryTopics applies QueryFilter.Search on subject, message and author.
		QueryTopics(filter core.QueryFilter) ([]Topic, error)
		GetTopic(id string) (Topic, error)
		UpdateTopic(t Topic) (Topic, error)
		// DeleteTopic removes the topic and its replies in one transaction.
		DeleteTopic(id string) error

		// CreateReply fails with ErrParentNotFound when the topic is missing.
		CreateReply(r Reply) (Reply, error)
		QueryReplies(topicID string) ([]Reply, error)
		DeleteReply(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateTopic(nt NewTopic) (Topic, error) {
	t := Topic{
		TopicID:   nt.TopicID,
		Subject:   nt.Subject,
		Message:   nt.Message,
		Author:    nt.Author,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateTopic(t)
}

func (svc *Service) QueryTopics(filter core.QueryFilter) ([]Topic, error) {
	return svc.repo.QueryTopics(filter)
}

func (svc *Service) GetTopic(id string) (Topic, error) {
	return svc.repo.GetTopic(id)
}

func (svc *Service) UpdateTopic(ut UpdateTopic) (Topic, error) {
	t, err := svc.repo.GetTopic(ut.TopicID)
	if err != nil {
		return Topic{}, err
	}
	if ut.Subject != nil {
		t.Subject = *ut.Subject
	}
	if ut.Message != nil {
		t.Message = *ut.Message
	}
	return svc.repo.UpdateTopic(t)
}

func (svc *Service) DeleteTopic(id string) error {
	return svc.repo.DeleteTopic(id)
}

func (svc *Service) CreateReply(nr NewReply) (Reply, error) {
	r := Reply{
		ReplyID:   nr.ReplyID,
		TopicID:   nr.TopicID,
		Text:      nr.Text,
		Author:    nr.Author,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateReply(r)
}

// QueryReplies returns the topic's replies oldest first; an unknown topic id
// yields an empty list, not an error.
func (svc *Service) QueryReplies(topicID string) ([]Reply, error) {
	return svc.repo.QueryReplies(topicID)
}

func (svc *Service) DeleteReply(id string) error {
	return svc.repo.DeleteReply(id)
}
