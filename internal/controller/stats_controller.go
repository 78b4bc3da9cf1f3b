package controller

import (
	"edu_resources_backend/internal/service"
	"edu_resources_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *service.StatsService
}

func NewStatsController(stats *service.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// @Summary Admin dashboard statistics
// @Description Meta counts, publish status breakdown, view/download totals, top viewed resources, publications per month
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response{data=service.StatsOverview}
// @Security BearerAuth
// @Router /api/admin/stats [get]
func (sc *StatsController) GetStats(ctx *gin.Context) {
	overview, err := sc.Stats.Overview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
