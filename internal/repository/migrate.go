package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the chart schema. Used by the seed
// command and the e2e suite; production deployments run SQL migrations
// instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roomModel{},
		&reservationModel{},
	)
}
