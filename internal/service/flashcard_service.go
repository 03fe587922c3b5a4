package service

import (
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type FlashcardService struct {
	FlashcardRepo *repository.FlashcardRepository
	SetRepo       *repository.FlashcardSetRepository
	ActivitySvc   *ActivityService
}

func NewFlashcardService(
	flashcardRepo *repository.FlashcardRepository,
	setRepo *repository.FlashcardSetRepository,
	activitySvc *ActivityService,
) *FlashcardService {
	return &FlashcardService{
		FlashcardRepo: flashcardRepo,
		SetRepo:       setRepo,
		ActivitySvc:   activitySvc,
	}
}

type FlashcardInput struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
	SetID *uint   `json:"flashcardSet"`
}

// Create 只有集合作者可以添加闪卡，同一集合内正反面完全相同视为重复
func (s *FlashcardService) Create(userID uint, input FlashcardInput) (*model.Flashcard, error) {
	if input.Front == nil || input.Back == nil || input.SetID == nil {
		return nil, util.ErrEmptyFlashcard
	}
	card := &model.Flashcard{
		Front:    strings.TrimSpace(*input.Front),
		Back:     strings.TrimSpace(*input.Back),
		SetID:    *input.SetID,
		AuthorID: userID,
	}
	if card.Front == "" || card.Back == "" {
		return nil, util.ErrEmptyFlashcard
	}

	if err := s.checkSetAuthor(userID, card.SetID); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(card); err != nil {
		return nil, err
	}

	if err := s.FlashcardRepo.Create(card); err != nil {
		return nil, err
	}
	s.ActivitySvc.Record(userID, model.ActionFlashcardCreated)
	return card, nil
}

func (s *FlashcardService) checkSetAuthor(userID, setID uint) error {
	set, err := s.SetRepo.FindByID(setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSetNotFound
		}
		return err
	}
	if set.AuthorID != userID {
		return util.ErrPermissionDenied
	}
	return nil
}

func (s *FlashcardService) checkDuplicate(card *model.Flashcard) error {
	exists, err := s.FlashcardRepo.Exists(card.SetID, card.Front, card.Back, card.ID)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrFlashcardExists
	}
	return nil
}

func (s *FlashcardService) Get(userID, id uint) (*model.Flashcard, error) {
	card, err := s.FlashcardRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFlashcardNotFound
		}
		return nil, err
	}
	return card, nil
}

// Update input 中为 nil 的字段保持不变
func (s *FlashcardService) Update(userID, id uint, input FlashcardInput) (*model.Flashcard, error) {
	card, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if input.Front != nil {
		card.Front = strings.TrimSpace(*input.Front)
	}
	if input.Back != nil {
		card.Back = strings.TrimSpace(*input.Back)
	}
	if input.SetID != nil && *input.SetID != card.SetID {
		if err := s.checkSetAuthor(userID, *input.SetID); err != nil {
			return nil, err
		}
		card.SetID = *input.SetID
	}
	if card.Front == "" || card.Back == "" {
		return nil, util.ErrEmptyFlashcard
	}

	if err := s.checkDuplicate(card); err != nil {
		return nil, err
	}
	if err := s.FlashcardRepo.Update(card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *FlashcardService) Delete(userID, id uint) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.FlashcardRepo.Delete(id)
}

func (s *FlashcardService) List(filter repository.FlashcardFilter) ([]model.Flashcard, error) {
	return s.FlashcardRepo.List(filter)
}
