package repository

import (
	"context"
	"flashquiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// CreateWithQuestions 在同一事务中写入测验、题目和选项
func (r *QuizRepository) CreateWithQuestions(ctx context.Context, quiz *model.Quiz) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
}

func (r *QuizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, id asc")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("letter asc")
		}).
		First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc, id desc").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) CountQuestions(ctx context.Context, quizID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.QuizQuestion{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

// SaveResult 只更新分数和完成状态
func (r *QuizRepository) SaveResult(ctx context.Context, quiz *model.Quiz) error {
	return r.DB.WithContext(ctx).Model(&model.Quiz{}).
		Where("id = ?", quiz.ID).
		Updates(map[string]interface{}{
			"score":       quiz.Score,
			"is_finished": quiz.IsFinished,
		}).Error
}

func (r *QuizRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteQuizzes(tx, []uint{id})
	})
}

func deleteQuizzes(tx *gorm.DB, quizIDs []uint) error {
	var questionIDs []uint
	if err := tx.Model(&model.QuizQuestion{}).Where("quiz_id IN ?", quizIDs).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) > 0 {
		if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.QuizAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", questionIDs).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", quizIDs).Delete(&model.Quiz{}).Error
}
