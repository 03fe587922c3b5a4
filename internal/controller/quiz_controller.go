package controller

import (
	"encoding/json"
	"errors"
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"
	"fmt"

	"github.com/gin-gonic/gin"
)

const quizNotGradedMessage = "quiz was not graded correctly"

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GenerateQuizRequest 生成测验请求
// swagger:model GenerateQuizRequest
type GenerateQuizRequest struct {
	FlashcardSetID uint `json:"flashcards_set" binding:"required"`
}

// CheckQuizRequest answers 可以是对象，也可以是编码成字符串的对象
// swagger:model CheckQuizRequest
type CheckQuizRequest struct {
	QuizID  uint            `json:"quiz_id"`
	Answers json.RawMessage `json:"answers" swaggertype:"object"`
}

// decodeAnswers 解析 {"<题目 id>": "<字母>"}
func decodeAnswers(raw json.RawMessage) (map[string]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return map[string]string{}, nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, err
		}
		raw = json.RawMessage(encoded)
	}

	var answers map[string]string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, fmt.Errorf("answers must map question ids to letters: %w", err)
	}
	return answers, nil
}

// GenerateQuiz godoc
// @Summary 生成测验
// @Description 从闪卡集合随机生成选择题测验，集合至少需要 4 张闪卡
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateQuizRequest true "闪卡集合ID"
// @Success 201 {object} util.Response{data=service.QuizView} "创建成功"
// @Failure 400 {object} util.Response "闪卡数量不足"
// @Failure 404 {object} util.Response "集合不存在"
// @Router /api/quiz/generate [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.QuizService.GenerateQuiz(ctx.Request.Context(), user.UserID, req.FlashcardSetID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// CheckQuiz godoc
// @Summary 提交测验答案
// @Description 校验作答数量后重新计分并标记测验完成，可重复提交
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckQuizRequest true "测验ID和答案"
// @Success 200 {object} util.Response{data=map[string]interface{}} "评分结果"
// @Failure 400 {object} util.Response "作答不完整或测验不存在"
// @Router /api/quiz/check [put]
// @Router /api/quiz/check [patch]
func (c *QuizController) CheckQuiz(ctx *gin.Context) {
	var req CheckQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.QuizID == 0 {
		util.BadRequest(ctx, quizNotGradedMessage)
		return
	}

	answers, err := decodeAnswers(req.Answers)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.QuizService.CheckQuiz(ctx.Request.Context(), req.QuizID, answers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.BadRequest(ctx, quizNotGradedMessage)
			return
		}
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// ListQuizzes godoc
// @Summary 我的测验
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.QuizSummary}
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.ListQuizzes(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary 测验详情
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response{data=service.QuizView}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	view, err := c.QuizService.GetQuiz(ctx.Request.Context(), user.UserID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// DeleteQuiz godoc
// @Summary 删除测验
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := util.ParamID(ctx, "id")
	if !ok {
		return
	}

	if err := c.QuizService.DeleteQuiz(ctx.Request.Context(), user.UserID, id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
