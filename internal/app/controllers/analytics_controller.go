package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokoena/studenthub/internal/app/services"
)

// AnalyticsController serves the on-demand analytics snapshot
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetAnalytics returns a freshly computed analytics snapshot with insights
// @Summary Get analytics
// @Description Computes overview counts, distributions, trends and narrated insights over the current data
// @Tags analytics
// @Accept json
// @Produce json
// @Success 200 {object} models.Analytics "Analytics retrieved successfully"
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	// Never fails; a computation error yields the fallback payload
	ctx.JSON(http.StatusOK, c.analyticsService.GenerateAnalytics(ctx))
}
