package main

func (cli *commandLine) resetPassword(id, pwd string) error {
	stu, err := cli.stuRepo.GetStudent(id)
	if err != nil {
		return err
	}
	if err := stu.SetPassword(pwd); err != nil {
		return err
	}
	return cli.stuRepo.UpdateStudentPassword(stu.ID, stu.PasswordHash)
}
