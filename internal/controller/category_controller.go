package controller

import (
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// ListCategories godoc
// @Summary 分类列表
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param level query string false "难度 easy/medi/hard"
// @Param name query string false "名称或 slug 关键字"
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/category [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.CategoryService.List(ctx.Query("level"), ctx.Query("name"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// CreateCategory godoc
// @Summary 创建分类
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CategoryInput true "分类信息"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response
// @Router /api/category [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var input service.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// GetCategory godoc
// @Summary 分类详情
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 400 {object} util.Response
// @Router /api/category/{id} [get]
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	category, err := c.CategoryService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// UpdateCategory godoc
// @Summary 修改分类（管理员）
// @Tags 分类
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param request body service.CategoryInput true "分类信息"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 403 {object} util.Response
// @Router /api/category/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	var input service.CategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Update(id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// DeleteCategory godoc
// @Summary 删除分类（管理员）
// @Tags 分类
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/category/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	if err := c.CategoryService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
