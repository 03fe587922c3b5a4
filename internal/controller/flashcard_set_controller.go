package controller

import (
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type FlashcardSetController struct {
	SetService    *service.FlashcardSetService
	RatingService *service.RatingService
}

func NewFlashcardSetController(setService *service.FlashcardSetService, ratingService *service.RatingService) *FlashcardSetController {
	return &FlashcardSetController{
		SetService:    setService,
		RatingService: ratingService,
	}
}

// ListSets godoc
// @Summary 闪卡集合列表
// @Description 默认返回公开集合和自己的集合
// @Tags 闪卡集合
// @Produce json
// @Security BearerAuth
// @Param category query string false "分类名称"
// @Param name query string false "集合名称关键字"
// @Param user_only query string false "True 时只返回自己的集合"
// @Param author query string false "作者用户名，只返回其公开集合"
// @Success 200 {object} util.Response{data=[]model.FlashcardSet}
// @Router /api/sets [get]
func (c *FlashcardSetController) ListSets(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := repository.SetFilter{
		ViewerID: user.UserID,
		Category: ctx.Query("category"),
		Name:     ctx.Query("name"),
		Author:   ctx.Query("author"),
		UserOnly: strings.EqualFold(ctx.Query("user_only"), "true"),
	}

	sets, err := c.SetService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sets)
}

// CreateSet godoc
// @Summary 创建闪卡集合
// @Tags 闪卡集合
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SetInput true "集合信息"
// @Success 201 {object} util.Response{data=model.FlashcardSet}
// @Failure 400 {object} util.Response "集合已存在或参数错误"
// @Router /api/sets [post]
func (c *FlashcardSetController) CreateSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.SetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if input.Name == nil || input.CategoryID == nil {
		util.BadRequest(ctx, "name and categoryId are required")
		return
	}

	set, err := c.SetService.Create(user.UserID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, set)
}

// GetSet godoc
// @Summary 闪卡集合详情
// @Tags 闪卡集合
// @Produce json
// @Security BearerAuth
// @Param id path int true "集合ID"
// @Success 200 {object} util.Response{data=model.FlashcardSet}
// @Failure 404 {object} util.Response
// @Router /api/sets/{id} [get]
func (c *FlashcardSetController) GetSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	set, err := c.SetService.Get(user.UserID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// UpdateSet godoc
// @Summary 修改闪卡集合
// @Description PUT 需要 name 和 categoryId，PATCH 只修改提交的字段
// @Tags 闪卡集合
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "集合ID"
// @Param request body service.SetInput true "集合信息"
// @Success 200 {object} util.Response{data=model.FlashcardSet}
// @Failure 403 {object} util.Response
// @Router /api/sets/{id} [put]
// @Router /api/sets/{id} [patch]
func (c *FlashcardSetController) UpdateSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	var input service.SetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if ctx.Request.Method == "PUT" && (input.Name == nil || input.CategoryID == nil) {
		util.BadRequest(ctx, "name and categoryId are required")
		return
	}

	set, err := c.SetService.Update(user.UserID, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, set)
}

// DeleteSet godoc
// @Summary 删除闪卡集合
// @Description 同时删除集合下的闪卡、评分和测验
// @Tags 闪卡集合
// @Produce json
// @Security BearerAuth
// @Param id path int true "集合ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/sets/{id} [delete]
func (c *FlashcardSetController) DeleteSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	if err := c.SetService.Delete(user.UserID, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ExportSet godoc
// @Summary 导出闪卡集合
// @Description 以 JSON 文档写入对象存储并返回地址
// @Tags 闪卡集合
// @Produce json
// @Security BearerAuth
// @Param id path int true "集合ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 403 {object} util.Response
// @Router /api/sets/{id}/export [post]
func (c *FlashcardSetController) ExportSet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	url, err := c.SetService.Export(ctx.Request.Context(), user.UserID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// GetSetRating godoc
// @Summary 集合评分汇总
// @Tags 评分
// @Produce json
// @Security BearerAuth
// @Param id path int true "集合ID"
// @Success 200 {object} util.Response{data=model.RatingSummary}
// @Router /api/sets/{id}/rating [get]
func (c *FlashcardSetController) GetSetRating(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.RatingService.Summary(ctx.Request.Context(), user.UserID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
