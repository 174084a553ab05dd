package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"itinerario/internal/api/controllers"
	"itinerario/internal/repositories"
	"itinerario/internal/services"
	"itinerario/pkg/utils"
)

var Module = fx.Provide(
	ProvideTripRepository,
	ProvideLodgingSelector,
	ProvideActivitySelector,
	ProvideDayScheduler,
	ProvidePlannerService,
	ProvideTripController)

func ProvideTripRepository(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func ProvideLodgingSelector(
	venueRepo repositories.VenueRepository,
	suggestions utils.SuggestionClientInterface,
) services.LodgingSelectorInterface {
	return services.NewLodgingSelector(venueRepo, suggestions)
}

func ProvideActivitySelector(
	venueRepo repositories.VenueRepository,
	suggestions utils.SuggestionClientInterface,
) services.ActivitySelectorInterface {
	return services.NewActivitySelector(venueRepo, suggestions)
}

func ProvideDayScheduler(
	lodgingSelector services.LodgingSelectorInterface,
	activitySelector services.ActivitySelectorInterface,
	suggestions utils.SuggestionClientInterface,
	tripRepo repositories.TripRepository,
) services.DaySchedulerInterface {
	return services.NewDayScheduler(lodgingSelector, activitySelector, suggestions, tripRepo)
}

func ProvidePlannerService(
	suggestions utils.SuggestionClientInterface,
	tripRepo repositories.TripRepository,
	dayScheduler services.DaySchedulerInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(suggestions, tripRepo, dayScheduler)
}

func ProvideTripController(plannerService services.PlannerServiceInterface) *controllers.TripController {
	return controllers.NewTripController(plannerService)
}
