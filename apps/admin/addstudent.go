package main

import (
	"time"

	"courseboard/core"
	"courseboard/core/student"
)

// addStudent updates or creates a student.Student
func (cli *commandLine) addStudent(id, name, email, pwd string) error {
	id = core.CleanString(id)
	email = core.CleanString(email, true /* lower */)

	stu, err := cli.stuRepo.GetStudent(id)
	if err != nil {
		if err != student.ErrNotFound {
			return err
		}
		stu = student.Student{
			ID:        id,
			CreatedAt: time.Now().UTC(),
		}
		stu.Name = core.CleanString(name)
		stu.Email = email
		if err := stu.SetPassword(pwd); err != nil {
			return err
		}
		_, err = cli.stuRepo.CreateStudent(stu)
		return err
	}

	stu.Name = core.CleanString(name)
	stu.Email = email
	if _, err := cli.stuRepo.UpdateStudent(stu); err != nil {
		return err
	}
	if err := stu.SetPassword(pwd); err != nil {
		return err
	}
	return cli.stuRepo.UpdateStudentPassword(stu.ID, stu.PasswordHash)
}
