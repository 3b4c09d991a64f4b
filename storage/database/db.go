package database

import (
	_ "embed"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"courseboard/core"
)

//go:embed schema.sql
var schema string

// Open connects to the SQLite database at path and enables foreign keys.
// A single connection is kept open so in-memory databases survive the pool.
func Open(conf *core.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", conf.Database.Path+"?_foreign_keys=on")
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates the schema if it does not exist yet.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on the
// given column ("table.column"). go-sqlite3 exposes no typed error for this,
// so the driver message is matched.
func isUniqueViolation(err error, constraint string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+constraint)
}

func orderingClause(ord core.DBOrdering) string {
	return " ORDER BY " + ord.String()
}
