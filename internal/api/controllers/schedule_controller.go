package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"namdo/internal/models/request_models"
	"namdo/internal/services"
	"namdo/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// RecommendSchedule godoc
// @Summary Generate a trip schedule from selected places
// @Description Build a multi-day itinerary around the selected favorite place names, validated against the place catalog
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.ScheduleRequest true "Trip parameters and selected place names"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules/recommend [post]
func (s *ScheduleController) RecommendSchedule(c *gin.Context) {
	var req request_models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := s.scheduleService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Schedule generated successfully")
}

// RecommendScheduleFromFavorites godoc
// @Summary Generate a trip schedule from the caller's saved favorites
// @Description Like the POST variant, but the selected places are the caller's entire saved favorite list
// @Tags Schedule
// @Produce json
// @Param start_date query string false "Trip start date (YYYY-MM-DD, default tomorrow)"
// @Param trip_days query int false "Trip length in days" default(3)
// @Param departure_place query string true "Departure place"
// @Param departure_time query string false "Departure time (HH:MM)" default(09:00)
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /schedules/recommend [get]
func (s *ScheduleController) RecommendScheduleFromFavorites(c *gin.Context) {
	tripDays, err := strconv.Atoi(c.DefaultQuery("trip_days", "3"))
	if err != nil || tripDays < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip_days")
		return
	}

	req := request_models.ScheduleRequest{
		StartDate:        c.DefaultQuery("start_date", time.Now().AddDate(0, 0, 1).Format("2006-01-02")),
		TripDays:         tripDays,
		DeparturePlace:   c.Query("departure_place"),
		DepartureTime:    c.DefaultQuery("departure_time", "09:00"),
		AdditionalPrompt: c.Query("additional_prompt"),
	}

	accountID := c.GetString("user_id")

	itinerary, err := s.scheduleService.GenerateFromFavorites(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Schedule generated successfully")
}
