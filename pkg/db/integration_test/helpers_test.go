package test

import (
	"gorm.io/gorm"
	"liyu1981.xyz/smartfloors-service/pkg/db"
)

// openPostgres bypasses the singleton so the file test and this one can run
// in the same process.
func openPostgres() (*gorm.DB, error) {
	return gorm.Open(db.UsePostgresDialector(), &gorm.Config{})
}
