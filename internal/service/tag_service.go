package service

import (
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type TagService struct {
	Repo *repository.TagRepository
}

func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{Repo: repo}
}

func (s *TagService) Create(name string) (*model.Tag, error) {
	tag := &model.Tag{Name: strings.TrimSpace(name)}
	if err := s.Repo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) List() ([]model.Tag, error) {
	return s.Repo.List()
}

func (s *TagService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrTagNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}
