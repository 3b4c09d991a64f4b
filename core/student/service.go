package student

import (
	"errors"
	"time"

	"courseboard/core"
)

var (
	ErrNotFound         = errors.New("Student not found")
	ErrExists           = errors.New("Student ID or email already exists")
	ErrEmailExists      = errors.New("Email already exists")
	ErrWrongPassword    = errors.New("Current password is incorrect")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)

type (
	Repository interface {
		CreateStudent(stu Student) (Student, error)
		// QueryStudents applies QueryFilter.Search on student_id, name and email.
		QueryStudents(filter core.QueryFilter) ([]Student, error)
		GetStudent(id string) (Student, error)
		UpdateStudent(stu Student) (Student, error)
		UpdateStudentPassword(id string, hash []byte) error
		DeleteStudent(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	stu := Student{
		ID:        ns.StudentID,
		Name:      ns.Name,
		Email:     ns.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := stu.SetPassword(ns.Password); err != nil {
		return Student{}, err
	}
	return svc.repo.CreateStudent(stu)
}

func (svc *Service) Query(filter core.QueryFilter) ([]Student, error) {
	return svc.repo.QueryStudents(filter)
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudent(id)
}

// Update applies partial update semantics: only non-nil fields of `us`
// overwrite the stored record.
func (svc *Service) Update(us UpdateStudent) (Student, error) {
	stu, err := svc.repo.GetStudent(us.StudentID)
	if err != nil {
		return Student{}, err
	}
	if us.Name != nil {
		stu.Name = *us.Name
	}
	if us.Email != nil {
		stu.Email = *us.Email
	}
	return svc.repo.UpdateStudent(stu)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteStudent(id)
}

// ChangePassword verifies the current password before hashing and storing
// the new one. A mismatch yields ErrWrongPassword.
func (svc *Service) ChangePassword(cp ChangePassword) error {
	stu, err := svc.repo.GetStudent(cp.StudentID)
	if err != nil {
		return err
	}
	if err := stu.CheckPassword(cp.CurrentPassword); err != nil {
		return ErrWrongPassword
	}
	if err := stu.SetPassword(cp.NewPassword); err != nil {
		return err
	}
	return svc.repo.UpdateStudentPassword(stu.ID, stu.PasswordHash)
}
