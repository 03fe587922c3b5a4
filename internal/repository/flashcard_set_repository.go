package repository

import (
	"flashquiz_backend/internal/model"

	"gorm.io/gorm"
)

type FlashcardSetRepository struct {
	DB *gorm.DB
}

func NewFlashcardSetRepository(db *gorm.DB) *FlashcardSetRepository {
	return &FlashcardSetRepository{DB: db}
}

// SetFilter 对应列表接口的查询参数
type SetFilter struct {
	ViewerID uint
	Category string
	Name     string
	Author   string
	UserOnly bool
}

func (r *FlashcardSetRepository) Create(set *model.FlashcardSet) error {
	return r.DB.Create(set).Error
}

func (r *FlashcardSetRepository) FindByID(id uint) (*model.FlashcardSet, error) {
	var set model.FlashcardSet
	err := r.DB.Preload("Author").Preload("Category").Preload("Tag").First(&set, id).Error
	return &set, err
}

func (r *FlashcardSetRepository) Update(set *model.FlashcardSet) error {
	return r.DB.Omit("Author", "Category", "Tag").Save(set).Error
}

func (r *FlashcardSetRepository) Exists(authorID uint, name string, categoryID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.FlashcardSet{}).
		Where("author_id = ? AND name = ? AND category_id = ?", authorID, name, categoryID).
		Count(&count).Error
	return count > 0, err
}

// Delete 删除集合及其闪卡、评分和测验
func (r *FlashcardSetRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).Where("flashcard_set_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			if err := deleteQuizzes(tx, quizIDs); err != nil {
				return err
			}
		}
		if err := tx.Where("set_id = ?", id).Delete(&model.Flashcard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("set_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FlashcardSet{}, id).Error
	})
}

func (r *FlashcardSetRepository) List(f SetFilter) ([]model.FlashcardSet, error) {
	query := r.DB.Model(&model.FlashcardSet{}).
		Preload("Author").Preload("Category").Preload("Tag")

	if f.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = flashcard_sets.category_id").
			Where("categories.name = ?", f.Category)
	}
	if f.Name != "" {
		query = query.Where("flashcard_sets.name LIKE ?", "%"+f.Name+"%")
	}

	switch {
	case f.Author != "" && !f.UserOnly:
		query = query.Joins("JOIN users ON users.id = flashcard_sets.author_id").
			Where("users.name = ? AND flashcard_sets.status = ?", f.Author, model.SetPublic)
	case f.UserOnly:
		query = query.Where("flashcard_sets.author_id = ?", f.ViewerID)
	default:
		query = query.Where("flashcard_sets.status = ? OR flashcard_sets.author_id = ?", model.SetPublic, f.ViewerID)
	}

	var sets []model.FlashcardSet
	err := query.Order("flashcard_sets.id asc").Find(&sets).Error
	return sets, err
}

func (r *FlashcardSetRepository) CountFlashcards(setID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Flashcard{}).Where("set_id = ?", setID).Count(&count).Error
	return count, err
}

type setCountRow struct {
	SetID uint
	Total int64
}

func (r *FlashcardSetRepository) CountFlashcardsBySets(setIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(setIDs))
	if len(setIDs) == 0 {
		return counts, nil
	}

	var rows []setCountRow
	err := r.DB.Model(&model.Flashcard{}).
		Select("set_id, COUNT(*) as total").
		Where("set_id IN ?", setIDs).
		Group("set_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.SetID] = row.Total
	}
	return counts, nil
}
