package service

import (
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryInput struct {
	Name  string              `json:"name" binding:"required,max=32"`
	Level model.CategoryLevel `json:"level" binding:"required"`
}

func (s *CategoryService) Create(input CategoryInput) (*model.Category, error) {
	if !input.Level.Valid() {
		return nil, util.ErrInvalidLevel
	}
	category := &model.Category{Name: strings.TrimSpace(input.Name), Level: input.Level}
	if err := s.checkSlug(category.Name, 0); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) checkSlug(name string, excludeID uint) error {
	slug := model.Slugify(name)
	if slug == "" {
		return util.ErrInvalidCategoryName
	}
	taken, err := s.Repo.SlugTaken(slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return util.ErrCategoryExists
	}
	return nil
}

func (s *CategoryService) Get(id uint) (*model.Category, error) {
	category, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, input CategoryInput) (*model.Category, error) {
	if !input.Level.Valid() {
		return nil, util.ErrInvalidLevel
	}
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(input.Name)
	category.Level = input.Level
	if err := s.checkSlug(category.Name, category.ID); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *CategoryService) List(level, name string) ([]model.Category, error) {
	return s.Repo.List(level, name)
}
