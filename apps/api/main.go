package main

import (
	"log"
	"os"

	echoapi "courseboard/apps/api/echo"
	"courseboard/core"
	"courseboard/core/assignment"
	"courseboard/core/discussion"
	"courseboard/core/student"
	"courseboard/core/weekly"
	logsvc "courseboard/services/logger"
	"courseboard/storage/database"
)

func main() {
	conf := core.NewConfig()

	// set up logging; error reporting is off outside QA/PROD
	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, conf.AppName+" ", log.LstdFlags), conf)
	logger.Enable(!(conf.Debug || conf.TestMode))

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Migrate(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Config:        conf,
			Logger:        logger,
			StudentSvc:    student.NewService(database.NewStudentRepository(db)),
			AssignmentSvc: assignment.NewService(database.NewAssignmentRepository(db)),
			DiscussionSvc: discussion.NewService(database.NewDiscussionRepository(db)),
			WeeklySvc:     weekly.NewService(database.NewWeeklyRepository(db)),
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
