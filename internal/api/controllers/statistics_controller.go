package controllers

import (
	"github.com/gin-gonic/gin"

	"holiday-api/internal/services"
	"holiday-api/pkg/utils"
)

type StatisticsController struct {
	statisticsService services.StatisticsServiceInterface
}

func NewStatisticsController(statisticsService services.StatisticsServiceInterface) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

// GetStatistics godoc
// @Summary Overall statistics
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/statistics [get]
func (s *StatisticsController) GetStatistics(c *gin.Context) {
	stats, err := s.statisticsService.GetStatistics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}

// GetStatisticsForDate godoc
// @Summary Participants on holiday per country for a day
// @Tags Statistics
// @Produce json
// @Param date path string true "Day as YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/statistics/date/{date} [get]
func (s *StatisticsController) GetStatisticsForDate(c *gin.Context) {
	day, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	stats, err := s.statisticsService.GetStatisticsForDate(c.Request.Context(), day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Statistics fetched successfully")
}
