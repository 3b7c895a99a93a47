package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"tripmood/internal/catalog"
	"tripmood/internal/services"
	"tripmood/pkg/utils"
)

type LookupController struct {
	planService services.PlanServiceInterface
}

func NewLookupController(planService services.PlanServiceInterface) *LookupController {
	return &LookupController{
		planService: planService,
	}
}

// GetPlaces godoc
// @Summary Look up places for a city
// @Tags Lookups
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} utils.APIResponse
// @Router /api/places [get]
func (l *LookupController) GetPlaces(c *gin.Context) {
	city := c.Query("city")
	days, err := strconv.Atoi(c.DefaultQuery("days", "3"))
	if err != nil || days < 1 {
		days = 3
	}
	mood := c.Query("mood")

	var interests []string
	if raw := c.Query("interests"); raw != "" {
		interests = strings.Split(raw, ",")
	}

	places, err := l.planService.LookupPOIs(c.Request.Context(), city, days, interests, mood)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"places": places}, "Places fetched successfully")
}

// GetHotels godoc
// @Summary Look up hotels for a city
// @Tags Lookups
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} utils.APIResponse
// @Router /api/hotels [get]
func (l *LookupController) GetHotels(c *gin.Context) {
	city := c.Query("city")
	mood := c.Query("mood")

	budgetMin := parseBound(c.Query("budget_min"))
	budgetMax := parseBound(c.Query("budget_max"))

	hotels, err := l.planService.LookupHotels(c.Request.Context(), city, budgetMin, budgetMax, mood)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"hotels": hotels}, "Hotels fetched successfully")
}

// GetLocations godoc
// @Summary Location picker data
// @Tags Lookups
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/locations [get]
func (l *LookupController) GetLocations(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"locations":         catalog.Locations,
		"mood_to_interests": catalog.MoodInterests,
	}, "Locations fetched successfully")
}

func parseBound(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
