package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"itinerario/cmd/fx/db_fx"
	"itinerario/cmd/fx/suggestion_fx"
	"itinerario/cmd/fx/trip_fx"
	"itinerario/cmd/fx/venue_fx"
	"itinerario/internal/api/controllers"
	"itinerario/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		suggestion_fx.Module,
		venue_fx.Module,
		trip_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	venueController *controllers.VenueController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, venueController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	venueController *controllers.VenueController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("/plan", tripController.PlanTrip)
	tripsGroup.GET("/:tripId", tripController.GetTripById)

	venuesGroup := r.Group("/venues")
	venuesGroup.POST("/import", venueController.ImportVenues)
	venuesGroup.GET("", venueController.ListVenues)
}
