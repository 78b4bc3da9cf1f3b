package controller

import (
	"edu_resources_backend/internal/service"
	"edu_resources_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ResourceController serves the public read-mostly resource API.
type ResourceController struct {
	Query    *service.ResourceQueryService
	Tracking *service.TrackingService
}

func NewResourceController(query *service.ResourceQueryService, tracking *service.TrackingService) *ResourceController {
	return &ResourceController{Query: query, Tracking: tracking}
}

// @Summary List education resources
// @Description Paginated resource list with type/difficulty/featured/category filters
// @Tags resources
// @Produce json
// @Param page query int false "Page number, from 1" default(1)
// @Param per_page query int false "Items per page (max 100); defaults to the configured page size"
// @Param resource_type query string false "Filter by resource type"
// @Param difficulty_level query string false "Filter by difficulty level"
// @Param featured query boolean false "Only featured resources"
// @Param category query string false "Filter by category slug"
// @Param orderby query string false "Sort field: created_at, download_count, duration_minutes, id" default(created_at)
// @Param order query string false "Sort direction: asc, desc" default(desc)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/resources [get]
func (rc *ResourceController) GetResources(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "0"))

	var featured *bool
	if raw := ctx.Query("featured"); raw != "" {
		if val, err := strconv.ParseBool(raw); err == nil {
			featured = &val
		}
	}

	params := service.ListParams{
		Page:       page,
		PerPage:    perPage,
		Type:       ctx.Query("resource_type"),
		Difficulty: ctx.Query("difficulty_level"),
		Category:   ctx.Query("category"),
		Featured:   featured,
		OrderBy:    ctx.DefaultQuery("orderby", "created_at"),
		Order:      ctx.DefaultQuery("order", "desc"),
	}

	result, err := rc.Query.List(ctx.Request.Context(), params)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	ctx.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))

	util.Success(ctx, util.PageResponse{
		List:       result.Items,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Page:       result.Page,
		PerPage:    result.PerPage,
	})
}

// @Summary Get a single resource
// @Tags resources
// @Produce json
// @Param id path int true "Content item ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/resources/{id} [get]
func (rc *ResourceController) GetResource(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	resource, err := rc.Query.GetByContentID(ctx.Request.Context(), uint(id))
	if errors.Is(err, util.ErrResourceNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}
	rc.Tracking.RecordView(uint(id), userID, ctx.ClientIP())

	util.Success(ctx, resource)
}

// @Summary Record a resource download
// @Description Increments the download counter; returns recorded=false when download tracking is disabled
// @Tags resources
// @Produce json
// @Param id path int true "Content item ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/resources/{id}/download [post]
func (rc *ResourceController) RecordDownload(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid resource id")
		return
	}

	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	recorded, err := rc.Tracking.RecordDownload(ctx.Request.Context(), uint(id), userID, ctx.ClientIP())
	if errors.Is(err, util.ErrResourceNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"recorded": recorded})
}
