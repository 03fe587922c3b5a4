package repository

import (
	"flashquiz_backend/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	DB *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(tag *model.Tag) error {
	return r.DB.Create(tag).Error
}

func (r *TagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.First(&tag, id).Error
	return &tag, err
}

func (r *TagRepository) List() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Tag{}, id).Error
}
