package controller

import (
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
}

func NewRatingController(ratingService *service.RatingService) *RatingController {
	return &RatingController{RatingService: ratingService}
}

// ListRatings godoc
// @Summary 评分列表
// @Tags 评分
// @Produce json
// @Security BearerAuth
// @Param flashcard_set query string false "集合名称"
// @Success 200 {object} util.Response{data=[]model.Rating}
// @Router /api/ratings [get]
func (c *RatingController) ListRatings(ctx *gin.Context) {
	ratings, err := c.RatingService.List(ctx.Query("flashcard_set"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ratings)
}

// CreateRating godoc
// @Summary 给集合评分
// @Description 评分 1 到 5，每个用户对同一集合只能评分一次
// @Tags 评分
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.RatingInput true "评分"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "已评分或评分超出范围"
// @Router /api/ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.RatingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, err := c.RatingService.Create(ctx.Request.Context(), user.UserID, input); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, util.Response{
		Code:    http.StatusCreated,
		Message: "rating added",
	})
}
