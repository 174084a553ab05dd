package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinerario/internal/models/request_models"
	"itinerario/internal/services"
	"itinerario/pkg/utils"
)

type TripController struct {
	plannerService services.PlannerServiceInterface
}

func NewTripController(plannerService services.PlannerServiceInterface) *TripController {
	return &TripController{
		plannerService: plannerService,
	}
}

func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := t.plannerService.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip planned successfully")
}

func (t *TripController) GetTripById(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	plan, err := t.plannerService.GetTripById(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip fetched successfully")
}
