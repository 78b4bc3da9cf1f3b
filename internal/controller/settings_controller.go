package controller

import (
	"edu_resources_backend/internal/service"
	"edu_resources_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Settings *service.SettingsService
}

func NewSettingsController(settings *service.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// @Summary Get plugin settings
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response{data=service.Settings}
// @Security BearerAuth
// @Router /api/admin/settings [get]
func (sc *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := sc.Settings.Load(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary Update plugin settings
// @Tags admin
// @Accept json
// @Produce json
// @Param settings body service.SettingsPatch true "Fields to change; omitted fields keep their values"
// @Success 200 {object} util.Response{data=service.Settings}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/settings [put]
func (sc *SettingsController) UpdateSettings(ctx *gin.Context) {
	var patch service.SettingsPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	settings, err := sc.Settings.Save(ctx.Request.Context(), patch)
	if errors.Is(err, util.ErrInvalidSetting) {
		util.BadRequest(ctx, "invalid setting value")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}
