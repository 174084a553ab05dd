package db_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"itinerario/internal/infra"
	"itinerario/internal/models/db_models"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()

	err := db.AutoMigrate(
		&db_models.Venue{},
		&db_models.Trip{},
		&db_models.TripDay{},
		&db_models.TripActivity{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}
