package repository

import (
	"flashquiz_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	return r.DB.Create(rating).Error
}

func (r *RatingRepository) Exists(userID, setID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Rating{}).
		Where("user_id = ? AND set_id = ?", userID, setID).
		Count(&count).Error
	return count > 0, err
}

// List setName 为空时返回全部评分
func (r *RatingRepository) List(setName string) ([]model.Rating, error) {
	query := r.DB.Model(&model.Rating{})
	if setName != "" {
		query = query.Joins("JOIN flashcard_sets ON flashcard_sets.id = ratings.set_id").
			Where("flashcard_sets.name = ?", setName)
	}

	var ratings []model.Rating
	err := query.Order("ratings.id asc").Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) Summary(setID uint) (*model.RatingSummary, error) {
	var summary model.RatingSummary
	err := r.DB.Model(&model.Rating{}).
		Select("COALESCE(AVG(rate), 0) as average, COUNT(*) as count").
		Where("set_id = ?", setID).
		Scan(&summary).Error
	summary.SetID = setID
	return &summary, err
}
