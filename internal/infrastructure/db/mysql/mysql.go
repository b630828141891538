package mysql

import (
	"fmt"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect returns a connected GORM DB. Error translation is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey and can be mapped
// to domain conflicts by the repositories.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the relational schema for all row types.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &appointmentRow{})
}
