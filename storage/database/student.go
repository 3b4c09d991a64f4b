package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"courseboard/core"
	"courseboard/core/student"
)

type studentRepo struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepo)(nil)

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepo{db: db}
}

func (repo *studentRepo) CreateStudent(stu student.Student) (student.Student, error) {
	_, err := repo.db.NamedExec(
		`INSERT INTO students (student_id, name, email, password_hash, created_at)
		 VALUES (:student_id, :name, :email, :password_hash, :created_at)`, stu,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "students.student_id"):
			return student.Student{}, student.ErrExists
		case isUniqueViolation(err, "students.email"):
			return student.Student{}, student.ErrEmailExists
		}
		return student.Student{}, errors.Wrap(err, "creating student")
	}
	return stu, nil
}

func (repo *studentRepo) QueryStudents(filter core.QueryFilter) ([]student.Student, error) {
	query := `SELECT * FROM students`
	args := []interface{}{}
	if filter.Search != "" {
		query += ` WHERE student_id LIKE ? OR name LIKE ? OR email LIKE ?`
		term := "%" + filter.Search + "%"
		args = append(args, term, term, term)
	}
	query += orderingClause(filter.Ordering)

	students := []student.Student{}
	if err := repo.db.Select(&students, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	return students, nil
}

func (repo *studentRepo) GetStudent(id string) (student.Student, error) {
	var stu student.Student
	err := repo.db.Get(&stu, `SELECT * FROM students WHERE student_id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, errors.Wrap(err, "getting student")
	}
	return stu, nil
}

func (repo *studentRepo) UpdateStudent(stu student.Student) (student.Student, error) {
	res, err := repo.db.NamedExec(
		`UPDATE students SET name = :name, email = :email WHERE student_id = :student_id`, stu,
	)
	if err != nil {
		if isUniqueViolation(err, "students.email") {
			return student.Student{}, student.ErrEmailExists
		}
		return student.Student{}, errors.Wrap(err, "updating student")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return stu, nil
}

func (repo *studentRepo) UpdateStudentPassword(id string, hash []byte) error {
	res, err := repo.db.Exec(`UPDATE students SET password_hash = ? WHERE student_id = ?`, hash, id)
	if err != nil {
		return errors.Wrap(err, "updating student password")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.ErrNotFound
	}
	return nil
}

func (repo *studentRepo) DeleteStudent(id string) error {
	res, err := repo.db.Exec(`DELETE FROM students WHERE student_id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.ErrNotFound
	}
	return nil
}
