package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"courseboard/core"
	"courseboard/core/weekly"
)

type weeklyRepo struct {
	db *sqlx.DB
}

var _ weekly.Repository = (*weeklyRepo)(nil)

func NewWeeklyRepository(db *sqlx.DB) weekly.Repository {
	return &weeklyRepo{db: db}
}

type weekRow struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	StartDate   string    `db:"start_date"`
	Description string    `db:"description"`
	Links       string    `db:"links"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row weekRow) toWeek() (weekly.Week, error) {
	links := []string{}
	if row.Links != "" {
		if err := json.Unmarshal([]byte(row.Links), &links); err != nil {
			return weekly.Week{}, errors.Wrap(err, "decoding week links")
		}
	}
	return weekly.Week{
		ID:          row.ID,
		Title:       row.Title,
		StartDate:   row.StartDate,
		Description: row.Description,
		Links:       links,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func (repo *weeklyRepo) CreateWeek(w weekly.Week) (weekly.Week, error) {
	links, err := encodeStringList(w.Links)
	if err != nil {
		return weekly.Week{}, err
	}
	res, err := repo.db.Exec(
		`INSERT INTO weeks (title, start_date, description, links, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.Title, w.StartDate, w.Description, links, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return weekly.Week{}, errors.Wrap(err, "creating week")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return weekly.Week{}, errors.Wrap(err, "creating week")
	}
	w.ID = int(id)
	return w, nil
}

func (repo *weeklyRepo) QueryWeeks(filter core.QueryFilter) ([]weekly.Week, error) {
	query := `SELECT * FROM weeks`
	args := []interface{}{}
	if filter.Search != "" {
		query += ` WHERE title LIKE ? OR description LIKE ?`
		term := "%" + filter.Search + "%"
		args = append(args, term, term)
	}
	query += orderingClause(filter.Ordering)

	rows := []weekRow{}
	if err := repo.db.Select(&rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying weeks")
	}
	weeks := make([]weekly.Week, 0, len(rows))
	for _, row := range rows {
		w, err := row.toWeek()
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

func (repo *weeklyRepo) GetWeek(id int) (weekly.Week, error) {
	var row weekRow
	err := repo.db.Get(&row, `SELECT * FROM weeks WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return weekly.Week{}, weekly.ErrNotFound
		}
		return weekly.Week{}, errors.Wrap(err, "getting week")
	}
	return row.toWeek()
}

func (repo *weeklyRepo) UpdateWeek(w weekly.Week) (weekly.Week, error) {
	links, err := encodeStringList(w.Links)
	if err != nil {
		return weekly.Week{}, err
	}
	res, err := repo.db.Exec(
		`UPDATE weeks SET title = ?, start_date = ?, description = ?, links = ?, updated_at = ?
		 WHERE id = ?`,
		w.Title, w.StartDate, w.Description, links, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return weekly.Week{}, errors.Wrap(err, "updating week")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return weekly.Week{}, weekly.ErrNotFound
	}
	return w, nil
}

func (repo *weeklyRepo) DeleteWeek(id int) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "deleting week")
	}
	defer tx.Rollback() // nolint:errcheck

	if _, err = tx.Exec(`DELETE FROM week_comments WHERE week_id = ?`, id); err != nil {
		return errors.Wrap(err, "deleting week comments")
	}
	res, err := tx.Exec(`DELETE FROM weeks WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting week")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return weekly.ErrNotFound
	}
	return errors.Wrap(tx.Commit(), "deleting week")
}

func (repo *weeklyRepo) CreateComment(c weekly.Comment) (weekly.Comment, error) {
	var exists bool
	err := repo.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM weeks WHERE id = ?)`, c.WeekID)
	if err != nil {
		return weekly.Comment{}, errors.Wrap(err, "creating week comment")
	}
	if !exists {
		return weekly.Comment{}, weekly.ErrNotFound
	}
	res, err := repo.db.Exec(
		`INSERT INTO week_comments (week_id, author, text, created_at) VALUES (?, ?, ?, ?)`,
		c.WeekID, c.Author, c.Text, c.CreatedAt,
	)
	if err != nil {
		return weekly.Comment{}, errors.Wrap(err, "creating week comment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return weekly.Comment{}, errors.Wrap(err, "creating week comment")
	}
	c.ID = int(id)
	return c, nil
}

func (repo *weeklyRepo) QueryComments(weekID int) ([]weekly.Comment, error) {
	comments := []weekly.Comment{}
	err := repo.db.Select(&comments,
		`SELECT * FROM week_comments WHERE week_id = ? ORDER BY created_at ASC, id ASC`, weekID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying week comments")
	}
	return comments, nil
}

func (repo *weeklyRepo) DeleteComment(id int) error {
	res, err := repo.db.Exec(`DELETE FROM week_comments WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting week comment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return weekly.ErrCommentNotFound
	}
	return nil
}
