package venue_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"itinerario/internal/api/controllers"
	"itinerario/internal/repositories"
	"itinerario/internal/services"
)

var Module = fx.Provide(
	ProvideVenueRepository,
	ProvideVenueService,
	ProvideVenueController)

func ProvideVenueRepository(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func ProvideVenueService(venueRepo repositories.VenueRepository) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo)
}

func ProvideVenueController(venueService services.VenueServiceInterface) *controllers.VenueController {
	return controllers.NewVenueController(venueService)
}
