package infra_test

import (
	"github.com/matheuseschaves/supermarket-tracker/internal/infra"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// rawSQLite opens path without running any migration.
func rawSQLite(path string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: infra.DriverName, DSN: path})
}
