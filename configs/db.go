package configs

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lareserve-backend/entity"
)

// ConnectDB opens the SQLite database at dsn.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.AdminUser{}, &entity.Session{},
		&entity.MenuItem{},
		&entity.Review{},
		&entity.Reservation{},
		&entity.GalleryItem{},
		&entity.RestaurantInfo{},
	)
}
