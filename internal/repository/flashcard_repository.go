package repository

import (
	"flashquiz_backend/internal/model"

	"gorm.io/gorm"
)

type FlashcardRepository struct {
	DB *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) *FlashcardRepository {
	return &FlashcardRepository{DB: db}
}

type FlashcardFilter struct {
	AuthorID    uint
	SetName     string
	FlashcardID uint
}

func (r *FlashcardRepository) Create(card *model.Flashcard) error {
	return r.DB.Create(card).Error
}

// FindOwned 只返回属于 authorID 的闪卡
func (r *FlashcardRepository) FindOwned(id, authorID uint) (*model.Flashcard, error) {
	var card model.Flashcard
	err := r.DB.Where("author_id = ?", authorID).First(&card, id).Error
	return &card, err
}

func (r *FlashcardRepository) Update(card *model.Flashcard) error {
	return r.DB.Save(card).Error
}

func (r *FlashcardRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Flashcard{}, id).Error
}

// Exists 查找同一集合中正反面相同的其他闪卡，excludeID 为 0 时不排除
func (r *FlashcardRepository) Exists(setID uint, front, back string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Flashcard{}).
		Where("set_id = ? AND front = ? AND back = ? AND id <> ?", setID, front, back, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *FlashcardRepository) List(f FlashcardFilter) ([]model.Flashcard, error) {
	query := r.DB.Model(&model.Flashcard{}).Where("flashcards.author_id = ?", f.AuthorID)
	if f.SetName != "" {
		query = query.Joins("JOIN flashcard_sets ON flashcard_sets.id = flashcards.set_id").
			Where("flashcard_sets.name = ?", f.SetName)
	}
	if f.FlashcardID != 0 {
		query = query.Where("flashcards.id = ?", f.FlashcardID)
	}

	var cards []model.Flashcard
	err := query.Order("flashcards.id asc").Find(&cards).Error
	return cards, err
}

func (r *FlashcardRepository) ListBySet(setID uint) ([]model.Flashcard, error) {
	var cards []model.Flashcard
	err := r.DB.Where("set_id = ?", setID).Order("id asc").Find(&cards).Error
	return cards, err
}
