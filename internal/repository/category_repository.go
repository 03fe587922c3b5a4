package repository

import (
	"flashquiz_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

// SlugTaken 判断 slug 是否已被其他分类占用
func (r *CategoryRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.Unscoped().Model(&model.Category{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, id).Error
}

// List level 精确匹配，name 同时模糊匹配名称和 slug
func (r *CategoryRepository) List(level, name string) ([]model.Category, error) {
	var categories []model.Category
	query := r.DB.Model(&model.Category{})
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if name != "" {
		like := "%" + name + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", like, like)
	}
	err := query.Order("id asc").Find(&categories).Error
	return categories, err
}
