package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripmood/internal/models/request_models"
	"tripmood/internal/services"
	"tripmood/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func callerIdentity(c *gin.Context) (string, string) {
	accountID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	id, _ := accountID.(string)
	r, _ := role.(string)
	return id, r
}

// SaveTrip godoc
// @Summary Persist a generated plan
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/save [post]
func (t *TripController) SaveTrip(c *gin.Context) {
	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, _ := callerIdentity(c)
	id, err := t.tripService.SaveTrip(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unique_id": id}, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List saved trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/plans [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	accountID, role := callerIdentity(c)
	result, err := t.tripService.ListTrips(c.Request.Context(), accountID, role, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Fetch one saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/plans/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	accountID, role := callerIdentity(c)
	trip, err := t.tripService.GetTrip(c.Request.Context(), accountID, role, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a saved trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.UpdateTripRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/plans [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, role := callerIdentity(c)
	if err := t.tripService.UpdateTrip(c.Request.Context(), accountID, role, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/plans/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	accountID, role := callerIdentity(c)
	if err := t.tripService.DeleteTrip(c.Request.Context(), accountID, role, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
