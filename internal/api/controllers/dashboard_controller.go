package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportapp/internal/services"
	"sportapp/pkg/middleware"
	"sportapp/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the progress dashboard
// @Description Overall and 30-day totals, type distribution, the last 8 ISO weeks and the 5 newest sessions
// @Tags Progress
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.DashboardResponse}
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	report, err := p.dashboardService.BuildDashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}

// GetRecentSessions godoc
// @Summary List the newest workout sessions
// @Tags Progress
// @Produce json
// @Param limit query int false "Number of sessions" default(10) minimum(1) maximum(50)
// @Success 200 {object} utils.APIResponse{data=[]response_models.WorkoutSessionResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress/sessions [get]
func (p *DashboardController) GetRecentSessions(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			utils.RespondError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	sessions, err := p.dashboardService.RecentSessions(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "Sessions fetched successfully")
}
