package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
	logsvc "github.com/evaldez/assignment-tracker/services/logger"
	"github.com/evaldez/assignment-tracker/storage/database"
	sqlxrepos "github.com/evaldez/assignment-tracker/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("setting up database", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	assignment.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		svc:    assignment.NewService(sqlxrepos.NewAssignmentRepository(db), validate, translator),
		logger: logger,
		out:    os.Stdout,
	}
	err = cli.run(os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}
