package service

import (
	"context"
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"flashquiz_backend/pkg/logger"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FlashcardSetService struct {
	SetRepo       *repository.FlashcardSetRepository
	FlashcardRepo *repository.FlashcardRepository
	CategoryRepo  *repository.CategoryRepository
	TagRepo       *repository.TagRepository
	ActivitySvc   *ActivityService
	Storage       *StorageService
}

func NewFlashcardSetService(
	setRepo *repository.FlashcardSetRepository,
	flashcardRepo *repository.FlashcardRepository,
	categoryRepo *repository.CategoryRepository,
	tagRepo *repository.TagRepository,
	activitySvc *ActivityService,
	storage *StorageService,
) *FlashcardSetService {
	return &FlashcardSetService{
		SetRepo:       setRepo,
		FlashcardRepo: flashcardRepo,
		CategoryRepo:  categoryRepo,
		TagRepo:       tagRepo,
		ActivitySvc:   activitySvc,
		Storage:       storage,
	}
}

// SetInput 字段为 nil 表示不修改，PATCH 和 PUT 共用
type SetInput struct {
	Name       *string          `json:"name"`
	Status     *model.SetStatus `json:"status"`
	IsPremium  *bool            `json:"isPremium"`
	TagID      *uint            `json:"tagId"`
	CategoryID *uint            `json:"categoryId"`
}

type SetExport struct {
	PublicID   string            `json:"publicId"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Author     string            `json:"author"`
	ExportedAt string            `json:"exportedAt"`
	Flashcards []FlashcardExport `json:"flashcards"`
}

type FlashcardExport struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

func (s *FlashcardSetService) validate(set *model.FlashcardSet) error {
	set.Name = strings.TrimSpace(set.Name)
	if set.Name == "" || len(set.Name) > 96 {
		return util.ErrInvalidSetName
	}
	if !set.Status.Valid() {
		return util.ErrInvalidSetStatus
	}
	if _, err := s.CategoryRepo.FindByID(set.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCategoryNotFound
		}
		return err
	}
	if set.TagID != nil {
		if _, err := s.TagRepo.FindByID(*set.TagID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrTagNotFound
			}
			return err
		}
	}
	return nil
}

func applySetInput(set *model.FlashcardSet, input SetInput) {
	if input.Name != nil {
		set.Name = *input.Name
	}
	if input.Status != nil {
		set.Status = *input.Status
	}
	if input.IsPremium != nil {
		set.IsPremium = *input.IsPremium
	}
	if input.TagID != nil {
		set.TagID = input.TagID
		if *input.TagID == 0 {
			set.TagID = nil
		}
	}
	if input.CategoryID != nil {
		set.CategoryID = *input.CategoryID
	}
}

func (s *FlashcardSetService) Create(userID uint, input SetInput) (*model.FlashcardSet, error) {
	set := &model.FlashcardSet{AuthorID: userID, Status: model.SetPublic}
	applySetInput(set, input)
	if err := s.validate(set); err != nil {
		return nil, err
	}

	exists, err := s.SetRepo.Exists(userID, set.Name, set.CategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrSetExists
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	set.PublicID = publicID

	if err := s.SetRepo.Create(set); err != nil {
		return nil, err
	}
	s.ActivitySvc.Record(userID, model.ActionSetCreated)
	return s.SetRepo.FindByID(set.ID)
}

// Get 私有集合对非作者表现为不存在
func (s *FlashcardSetService) Get(userID, id uint) (*model.FlashcardSet, error) {
	set, err := s.SetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSetNotFound
		}
		return nil, err
	}
	if !set.VisibleTo(userID) {
		return nil, util.ErrSetNotFound
	}

	count, err := s.SetRepo.CountFlashcards(id)
	if err != nil {
		return nil, err
	}
	set.FlashcardCount = count
	return set, nil
}

func (s *FlashcardSetService) findAuthored(userID, id uint) (*model.FlashcardSet, error) {
	set, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if set.AuthorID != userID {
		return nil, util.ErrPermissionDenied
	}
	return set, nil
}

func (s *FlashcardSetService) Update(userID, id uint, input SetInput) (*model.FlashcardSet, error) {
	set, err := s.findAuthored(userID, id)
	if err != nil {
		return nil, err
	}

	oldName, oldCategory := set.Name, set.CategoryID
	applySetInput(set, input)
	if err := s.validate(set); err != nil {
		return nil, err
	}

	if set.Name != oldName || set.CategoryID != oldCategory {
		exists, err := s.SetRepo.Exists(userID, set.Name, set.CategoryID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, util.ErrSetExists
		}
	}

	if err := s.SetRepo.Update(set); err != nil {
		return nil, err
	}
	return s.Get(userID, id)
}

func (s *FlashcardSetService) Delete(userID, id uint) error {
	if _, err := s.findAuthored(userID, id); err != nil {
		return err
	}
	return s.SetRepo.Delete(id)
}

func (s *FlashcardSetService) List(filter repository.SetFilter) ([]model.FlashcardSet, error) {
	sets, err := s.SetRepo.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(sets))
	for _, set := range sets {
		ids = append(ids, set.ID)
	}
	counts, err := s.SetRepo.CountFlashcardsBySets(ids)
	if err != nil {
		return nil, err
	}
	for i := range sets {
		sets[i].FlashcardCount = counts[sets[i].ID]
	}
	return sets, nil
}

// Export 把集合和全部闪卡写成 JSON 文档上传到对象存储
func (s *FlashcardSetService) Export(ctx context.Context, userID, id uint) (string, error) {
	set, err := s.findAuthored(userID, id)
	if err != nil {
		return "", err
	}

	cards, err := s.FlashcardRepo.ListBySet(id)
	if err != nil {
		return "", err
	}

	doc := SetExport{
		PublicID:   set.PublicID,
		Name:       set.Name,
		ExportedAt: time.Now().Format(util.TimeFormat),
		Flashcards: make([]FlashcardExport, 0, len(cards)),
	}
	if set.Category != nil {
		doc.Category = set.Category.Name
	}
	if set.Author != nil {
		doc.Author = set.Author.Name
	}
	for _, c := range cards {
		doc.Flashcards = append(doc.Flashcards, FlashcardExport{Front: c.Front, Back: c.Back})
	}

	url, err := s.Storage.PutJSON(ctx, ExportKey(set.PublicID), doc)
	if err != nil {
		return "", err
	}
	logger.Log.Info("Flashcard set exported", zap.Uint("setID", id), zap.String("url", url))
	return url, nil
}
