package postgres

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the embedded reminder state schema to a postgres database
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.PostgresDialect{})

	return migrator.Migrate(SqlFiles, "sql")
}
