package service

import (
	"context"
	"encoding/json"
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"flashquiz_backend/pkg/logger"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const ratingSummaryKeyPrefix = "rating:summary:"

type RatingService struct {
	RatingRepo *repository.RatingRepository
	SetRepo    *repository.FlashcardSetRepository
	Redis      *redis.Client
	CacheTTL   time.Duration
}

// NewRatingService rdb 可以为 nil，此时不使用缓存
func NewRatingService(ratingRepo *repository.RatingRepository, setRepo *repository.FlashcardSetRepository, rdb *redis.Client, ttl time.Duration) *RatingService {
	return &RatingService{
		RatingRepo: ratingRepo,
		SetRepo:    setRepo,
		Redis:      rdb,
		CacheTTL:   ttl,
	}
}

type RatingInput struct {
	SetID uint `json:"set" binding:"required"`
	Rate  int  `json:"rate" binding:"required"`
}

// Create 每个用户对同一集合只能评分一次
func (s *RatingService) Create(ctx context.Context, userID uint, input RatingInput) (*model.Rating, error) {
	if input.Rate < model.MinRate || input.Rate > model.MaxRate {
		return nil, util.ErrInvalidRate
	}

	set, err := s.SetRepo.FindByID(input.SetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSetNotFound
		}
		return nil, err
	}
	if !set.VisibleTo(userID) {
		return nil, util.ErrSetNotFound
	}

	exists, err := s.RatingRepo.Exists(userID, input.SetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyRated
	}

	rating := &model.Rating{SetID: input.SetID, UserID: userID, Rate: input.Rate}
	if err := s.RatingRepo.Create(rating); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.Del(ctx, summaryKey(input.SetID)).Err(); err != nil {
			logger.Log.Warn("Failed to invalidate rating summary", zap.Uint("setID", input.SetID), zap.Error(err))
		}
	}
	return rating, nil
}

func (s *RatingService) List(setName string) ([]model.Rating, error) {
	return s.RatingRepo.List(setName)
}

// Summary 优先读缓存，缓存不可用时直接查库
func (s *RatingService) Summary(ctx context.Context, userID, setID uint) (*model.RatingSummary, error) {
	set, err := s.SetRepo.FindByID(setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSetNotFound
		}
		return nil, err
	}
	if !set.VisibleTo(userID) {
		return nil, util.ErrSetNotFound
	}

	key := summaryKey(setID)
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, key).Bytes()
		if err == nil {
			var cached model.RatingSummary
			if json.Unmarshal(val, &cached) == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("Rating summary cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	summary, err := s.RatingRepo.Summary(setID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.Redis.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("Rating summary cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return summary, nil
}

func summaryKey(setID uint) string {
	return fmt.Sprintf("%s%d", ratingSummaryKeyPrefix, setID)
}
