package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmood/internal/models/request_models"
	"tripmood/internal/services"
	"tripmood/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a travel plan
// @Description Build a full plan for the destination, days and mood
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/itinerary [post]
func (p *PlanController) GenerateItinerary(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan := p.planService.GeneratePlan(c.Request.Context(), req)
	utils.RespondSuccess(c, plan, "Plan generated successfully")
}
