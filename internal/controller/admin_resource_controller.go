package controller

import (
	"edu_resources_backend/internal/model"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/service"
	"edu_resources_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminResourceController manages resource meta rows and file uploads.
type AdminResourceController struct {
	Meta     *repository.ResourceMetaRepository
	Content  *repository.ContentRepository
	Settings *service.SettingsService
	Storage  *service.StorageService
}

func NewAdminResourceController(
	meta *repository.ResourceMetaRepository,
	content *repository.ContentRepository,
	settings *service.SettingsService,
	storage *service.StorageService,
) *AdminResourceController {
	return &AdminResourceController{Meta: meta, Content: content, Settings: settings, Storage: storage}
}

type resourceMetaInput struct {
	ResourceURL     *string `json:"resourceUrl" binding:"omitempty,max=2083"`
	ResourceType    *string `json:"resourceType"`
	DifficultyLevel *string `json:"difficultyLevel"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,min=0"`
	IsFeatured      *bool   `json:"isFeatured"`
}

// @Summary Create or update resource meta for a content item
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Content item ID"
// @Param meta body resourceMetaInput true "Fields to set; omitted fields keep their values"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/resources/{id} [put]
func (ac *AdminResourceController) UpsertMeta(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	var input resourceMetaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := ac.Content.FindByID(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if item == nil {
		util.NotFound(ctx)
		return
	}

	settings, err := ac.Settings.Load(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	patch := model.ResourceMetaPatch{
		ResourceURL:     input.ResourceURL,
		DurationMinutes: input.DurationMinutes,
		IsFeatured:      input.IsFeatured,
	}
	if input.ResourceType != nil {
		// Unknown types are stored as unset rather than rejected.
		t := model.NormalizeResourceType(*input.ResourceType)
		patch.ResourceType = &t
	}
	if input.DifficultyLevel != nil {
		d := model.NormalizeDifficulty(*input.DifficultyLevel, settings.DefaultDifficulty)
		patch.DifficultyLevel = &d
	}

	if err := ac.Meta.Upsert(uint(id), patch); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	meta, err := ac.Meta.Get(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, meta)
}

// @Summary Delete resource meta for a content item
// @Tags admin
// @Produce json
// @Param id path int true "Content item ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/resources/{id} [delete]
func (ac *AdminResourceController) DeleteMeta(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	meta, err := ac.Meta.Get(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if meta == nil {
		util.NotFound(ctx)
		return
	}

	if err := ac.Meta.Delete(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload a resource file
// @Description Stores the file and returns its public URL; video uploads also return a probed duration
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resource file"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/resources/upload [post]
func (ac *AdminResourceController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	result, err := ac.Storage.UploadResourceFile(ctx.Request.Context(), file)
	if errors.Is(err, util.ErrUnsupportedUpload) {
		util.BadRequest(ctx, "unsupported file type")
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
