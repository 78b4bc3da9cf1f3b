package controller

import (
	"edu_resources_backend/internal/service"
	"edu_resources_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Content *service.ContentService
}

func NewContentController(content *service.ContentService) *ContentController {
	return &ContentController{Content: content}
}

// @Summary Create a content item
// @Tags admin
// @Accept json
// @Produce json
// @Param content body service.ContentInput true "Content item"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/contents [post]
func (cc *ContentController) CreateContent(ctx *gin.Context) {
	var input service.ContentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := cc.Content.Create(input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// @Summary Update a content item
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Content item ID"
// @Param content body service.ContentInput true "Content item"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/contents/{id} [put]
func (cc *ContentController) UpdateContent(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	var input service.ContentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := cc.Content.Update(uint(id), input)
	if errors.Is(err, util.ErrContentNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// @Summary Delete a content item
// @Description Removes the content item and its resource meta; event history is kept
// @Tags admin
// @Produce json
// @Param id path int true "Content item ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/admin/contents/{id} [delete]
func (cc *ContentController) DeleteContent(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	err = cc.Content.Delete(uint(id))
	if errors.Is(err, util.ErrContentNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
