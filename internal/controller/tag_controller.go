package controller

import (
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	TagService *service.TagService
}

func NewTagController(tagService *service.TagService) *TagController {
	return &TagController{TagService: tagService}
}

// CreateTagRequest
// swagger:model CreateTagRequest
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=16"`
}

// ListTags godoc
// @Summary 标签列表
// @Tags 标签
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Tag}
// @Router /api/tags [get]
func (c *TagController) ListTags(ctx *gin.Context) {
	tags, err := c.TagService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}

// CreateTag godoc
// @Summary 创建标签
// @Tags 标签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTagRequest true "标签名"
// @Success 201 {object} util.Response{data=model.Tag}
// @Router /api/tags [post]
func (c *TagController) CreateTag(ctx *gin.Context) {
	var req CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tag, err := c.TagService.Create(req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, tag)
}

// DeleteTag godoc
// @Summary 删除标签（管理员）
// @Tags 标签
// @Produce json
// @Security BearerAuth
// @Param id path int true "标签ID"
// @Success 200 {object} util.Response
// @Router /api/tags/{id} [delete]
func (c *TagController) DeleteTag(ctx *gin.Context) {
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	if err := c.TagService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
