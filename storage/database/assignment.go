package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"courseboard/core"
	"courseboard/core/assignment"
)

type assignmentRepo struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*assignmentRepo)(nil)

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepo{db: db}
}

// assignmentRow maps the assignments table; files is a JSON-encoded string
// list decoded on the way out.
type assignmentRow struct {
	ID          int       `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     string    `db:"due_date"`
	Files       string    `db:"files"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row assignmentRow) toAssignment() (assignment.Assignment, error) {
	files := []string{}
	if row.Files != "" {
		if err := json.Unmarshal([]byte(row.Files), &files); err != nil {
			return assignment.Assignment{}, errors.Wrap(err, "decoding assignment files")
		}
	}
	return assignment.Assignment{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     row.DueDate,
		Files:       files,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func encodeStringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	enc, err := json.Marshal(list)
	if err != nil {
		return "", errors.Wrap(err, "encoding string list")
	}
	return string(enc), nil
}

func (repo *assignmentRepo) CreateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	files, err := encodeStringList(a.Files)
	if err != nil {
		return assignment.Assignment{}, err
	}
	res, err := repo.db.Exec(
		`INSERT INTO assignments (title, description, due_date, files, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.Title, a.Description, a.DueDate, files, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	a.ID = int(id)
	return a, nil
}

func (repo *assignmentRepo) QueryAssignments(filter core.QueryFilter) ([]assignment.Assignment, error) {
	query := `SELECT * FROM assignments`
	args := []interface{}{}
	if filter.Search != "" {
		query += ` WHERE title LIKE ? OR description LIKE ?`
		term := "%" + filter.Search + "%"
		args = append(args, term, term)
	}
	query += orderingClause(filter.Ordering)

	rows := []assignmentRow{}
	if err := repo.db.Select(&rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	assignments := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		a, err := row.toAssignment()
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func (repo *assignmentRepo) GetAssignment(id int) (assignment.Assignment, error) {
	var row assignmentRow
	err := repo.db.Get(&row, `SELECT * FROM assignments WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, errors.Wrap(err, "getting assignment")
	}
	return row.toAssignment()
}

func (repo *assignmentRepo) UpdateAssignment(a assignment.Assignment) (assignment.Assignment, error) {
	files, err := encodeStringList(a.Files)
	if err != nil {
		return assignment.Assignment{}, err
	}
	res, err := repo.db.Exec(
		`UPDATE assignments SET title = ?, description = ?, due_date = ?, files = ?, updated_at = ?
		 WHERE id = ?`,
		a.Title, a.Description, a.DueDate, files, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "updating assignment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return a, nil
}

func (repo *assignmentRepo) DeleteAssignment(id int) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	defer tx.Rollback() // nolint:errcheck

	if _, err = tx.Exec(`DELETE FROM assignment_comments WHERE assignment_id = ?`, id); err != nil {
		return errors.Wrap(err, "deleting assignment comments")
	}
	res, err := tx.Exec(`DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return assignment.ErrNotFound
	}
	return errors.Wrap(tx.Commit(), "deleting assignment")
}

func (repo *assignmentRepo) CreateComment(c assignment.Comment) (assignment.Comment, error) {
	var exists bool
	err := repo.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM assignments WHERE id = ?)`, c.AssignmentID)
	if err != nil {
		return assignment.Comment{}, errors.Wrap(err, "creating assignment comment")
	}
	if !exists {
		return assignment.Comment{}, assignment.ErrNotFound
	}
	res, err := repo.db.Exec(
		`INSERT INTO assignment_comments (assignment_id, author, text, created_at) VALUES (?, ?, ?, ?)`,
		c.AssignmentID, c.Author, c.Text, c.CreatedAt,
	)
	if err != nil {
		return assignment.Comment{}, errors.Wrap(err, "creating assignment comment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return assignment.Comment{}, errors.Wrap(err, "creating assignment comment")
	}
	c.ID = int(id)
	return c, nil
}

func (repo *assignmentRepo) QueryComments(assignmentID int) ([]assignment.Comment, error) {
	comments := []assignment.Comment{}
	err := repo.db.Select(&comments,
		`SELECT * FROM assignment_comments WHERE assignment_id = ? ORDER BY created_at ASC, id ASC`,
		assignmentID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying assignment comments")
	}
	return comments, nil
}

func (repo *assignmentRepo) DeleteComment(id int) error {
	res, err := repo.db.Exec(`DELETE FROM assignment_comments WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting assignment comment")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return assignment.ErrCommentNotFound
	}
	return nil
}
