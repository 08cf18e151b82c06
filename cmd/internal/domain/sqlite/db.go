package sqlite

import (
	"time"

	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.CheckIn{},
		&entity.Note{},
		&entity.Service{},
		&entity.Stylist{},
		&entity.InventoryItem{},
	)
	if err != nil {
		return nil, err
	}

	// Single connection: SQLite writes serialize anyway, and it makes
	// every queue read a consistent snapshot.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
