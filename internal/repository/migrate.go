package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. The row models are unexported, so migration lives here rather than
// in the callers.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&categoryModel{},
		&itemModel{},
		&reservationModel{},
	)
}
