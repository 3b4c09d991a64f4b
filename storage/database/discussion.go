package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"courseboard/core"
	"courseboard/core/discussion"
)

type discussionRepo struct {
	db *sqlx.DB
}

var _ discussion.Repository = (*discussionRepo)(nil)

func NewDiscussionRepository(db *sqlx.DB) discussion.Repository {
	return &discussionRepo{db: db}
}

func (repo *discussionRepo) CreateTopic(t discussion.Topic) (discussion.Topic, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO topics (topic_id, subject, message, author, created_at)
		 VALUES (:topic_id, :subject, :message, :author, :created_at)`, t,
	)
	if err != nil {
		if isUniqueViolation(err, "topics.topic_id") {
			return discussion.Topic{}, discussion.ErrTopicExists
		}
		return discussion.Topic{}, errors.Wrap(err, "creating topic")
	}
	return t, nil
}

func (repo *discussionRepo) QueryTopics(filter core.QueryFilter) ([]discussion.Topic, error) {
	query := `SELECT * FROM topics`
	args := []interface{}{}
	if filter.Search != "" {
		query += ` WHERE subject LIKE ? OR message LIKE ? OR author LIKE ?`
		term := "%" + filter.Search + "%"
		args = append(args, term, term, term)
	}
	query += orderingClause(filter.Ordering)

	topics := []discussion.Topic{}
	if err := repo.db.Select(&topics, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying topics")
	}
	return topics, nil
}

func (repo *discussionRepo) GetTopic(id string) (discussion.Topic, error) {
	var t discussion.Topic
	err := repo.db.Get(&t, `SELECT * FROM topics WHERE topic_id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return discussion.Topic{}, discussion.ErrTopicNotFound
		}
		return discussion.Topic{}, errors.Wrap(err, "getting topic")
	}
	return t, nil
}

func (repo *discussionRepo) UpdateTopic(t discussion.Topic) (discussion.Topic, error) {
	res, err := repo.db.NamedExec(
		`UPDATE topics SET subject = :subject, message = :message WHERE topic_id = :topic_id`, t,
	)
	if err != nil {
		return discussion.Topic{}, errors.Wrap(err, "updating topic")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return discussion.Topic{}, discussion.ErrTopicNotFound
	}
	return t, nil
}

func (repo *discussionRepo) DeleteTopic(id string) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "deleting topic")
	}
	defer tx.Rollback() // nolint:errcheck

	if _, err = tx.Exec(`DELETE FROM replies WHERE topic_id = ?`, id); err != nil {
		return errors.Wrap(err, "deleting topic replies")
	}
	res, err := tx.Exec(`DELETE FROM topics WHERE topic_id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting topic")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return discussion.ErrTopicNotFound
	}
	return errors.Wrap(tx.Commit(), "deleting topic")
}

func (repo *discussionRepo) CreateReply(r discussion.Reply) (discussion.Reply, error) {
	var exists bool
	err := repo.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM topics WHERE topic_id = ?)`, r.TopicID)
	if err != nil {
		return discussion.Reply{}, errors.Wrap(err, "creating reply")
	}
	if !exists {
		return discussion.Reply{}, discussion.ErrParentNotFound
	}
	_, err = repo.db.NamedExec(
		`INSERT INTO replies (reply_id, topic_id, text, author, created_at)
		 VALUES (:reply_id, :topic_id, :text, :author, :created_at)`, r,
	)
	if err != nil {
		if isUniqueViolation(err, "replies.reply_id") {
			return discussion.Reply{}, discussion.ErrReplyExists
		}
		return discussion.Reply{}, errors.Wrap(err, "creating reply")
	}
	return r, nil
}

func (repo *discussionRepo) QueryReplies(topicID string) ([]discussion.Reply, error) {
	replies := []discussion.Reply{}
	err := repo.db.Select(&replies,
		`SELECT * FROM replies WHERE topic_id = ? ORDER BY created_at ASC, reply_id ASC`, topicID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying replies")
	}
	return replies, nil
}

func (repo *discussionRepo) DeleteReply(id string) error {
	res, err := repo.db.Exec(`DELETE FROM replies WHERE reply_id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting reply")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return discussion.ErrReplyNotFound
	}
	return nil
}
