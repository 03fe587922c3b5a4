package controller

import (
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FlashcardController struct {
	FlashcardService *service.FlashcardService
}

func NewFlashcardController(flashcardService *service.FlashcardService) *FlashcardController {
	return &FlashcardController{FlashcardService: flashcardService}
}

// ListFlashcards godoc
// @Summary 我的闪卡
// @Tags 闪卡
// @Produce json
// @Security BearerAuth
// @Param flashcard_set query string false "集合名称"
// @Param flashcard_id query int false "闪卡ID"
// @Success 200 {object} util.Response{data=[]model.Flashcard}
// @Router /api/flashcards [get]
func (c *FlashcardController) ListFlashcards(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := repository.FlashcardFilter{
		AuthorID:    user.UserID,
		SetName:     ctx.Query("flashcard_set"),
		FlashcardID: util.MustParseUint(ctx.Query("flashcard_id")),
	}

	cards, err := c.FlashcardService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cards)
}

// CreateFlashcard godoc
// @Summary 添加闪卡
// @Description 只有集合作者可以添加，同一集合内不能重复
// @Tags 闪卡
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.FlashcardInput true "闪卡内容"
// @Success 201 {object} util.Response{data=model.Flashcard}
// @Failure 400 {object} util.Response "闪卡已存在"
// @Failure 403 {object} util.Response
// @Router /api/flashcards [post]
func (c *FlashcardController) CreateFlashcard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.FlashcardInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	card, err := c.FlashcardService.Create(user.UserID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, card)
}

// GetFlashcard godoc
// @Summary 闪卡详情
// @Tags 闪卡
// @Produce json
// @Security BearerAuth
// @Param id path int true "闪卡ID"
// @Success 200 {object} util.Response{data=model.Flashcard}
// @Failure 404 {object} util.Response
// @Router /api/flashcards/{id} [get]
func (c *FlashcardController) GetFlashcard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	card, err := c.FlashcardService.Get(user.UserID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, card)
}

// UpdateFlashcard godoc
// @Summary 修改闪卡
// @Tags 闪卡
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "闪卡ID"
// @Param request body service.FlashcardInput true "闪卡内容"
// @Success 200 {object} util.Response{data=model.Flashcard}
// @Failure 404 {object} util.Response
// @Router /api/flashcards/{id} [put]
// @Router /api/flashcards/{id} [patch]
func (c *FlashcardController) UpdateFlashcard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	var input service.FlashcardInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if ctx.Request.Method == "PUT" && (input.Front == nil || input.Back == nil) {
		util.BadRequest(ctx, util.ErrEmptyFlashcard.Error())
		return
	}

	card, err := c.FlashcardService.Update(user.UserID, id, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, card)
}

// DeleteFlashcard godoc
// @Summary 删除闪卡
// @Tags 闪卡
// @Produce json
// @Security BearerAuth
// @Param id path int true "闪卡ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/flashcards/{id} [delete]
func (c *FlashcardController) DeleteFlashcard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	if err := c.FlashcardService.Delete(user.UserID, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
