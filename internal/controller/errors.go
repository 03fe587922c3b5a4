package controller

import (
	"errors"
	"flashquiz_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	util.ErrInvalidLevel,
	util.ErrCategoryExists,
	util.ErrInvalidCategoryName,
	util.ErrSetExists,
	util.ErrInvalidSetStatus,
	util.ErrInvalidSetName,
	util.ErrFlashcardExists,
	util.ErrEmptyFlashcard,
	util.ErrAlreadyRated,
	util.ErrInvalidRate,
	util.ErrInsufficientFlashcards,
	util.ErrIncompleteSubmission,
	util.ErrCategoryNotFound,
	util.ErrTagNotFound,
}

var notFoundErrors = []error{
	util.ErrUserNotFound,
	util.ErrSetNotFound,
	util.ErrFlashcardNotFound,
	util.ErrQuizNotFound,
}

// respondError 将业务错误映射为状态码，未知错误按 500 记录
func respondError(ctx *gin.Context, err error) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			util.Error(ctx, http.StatusNotFound, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrEmailRegistered), errors.Is(err, util.ErrNameTaken):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
