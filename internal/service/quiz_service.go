package service

import (
	"context"
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"flashquiz_backend/pkg/logger"
	"flashquiz_backend/pkg/monitoring"
	"flashquiz_backend/pkg/tracing"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo      *repository.QuizRepository
	SetRepo       *repository.FlashcardSetRepository
	FlashcardRepo *repository.FlashcardRepository
	Generator     *QuizGenerator
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	setRepo *repository.FlashcardSetRepository,
	flashcardRepo *repository.FlashcardRepository,
	generator *QuizGenerator,
) *QuizService {
	return &QuizService{
		QuizRepo:      quizRepo,
		SetRepo:       setRepo,
		FlashcardRepo: flashcardRepo,
		Generator:     generator,
	}
}

type QuizAnswerView struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type QuizQuestionView struct {
	ID      uint             `json:"id"`
	Text    string           `json:"text"`
	Answers []QuizAnswerView `json:"answers"`
}

// QuizView 返回给答题者的测验内容，不含正确答案
type QuizView struct {
	QuizID    uint               `json:"quiz_id"`
	Questions []QuizQuestionView `json:"questions"`
}

type QuizSummary struct {
	ID             uint   `json:"id"`
	FlashcardSetID uint   `json:"flashcardSetId"`
	Score          int    `json:"score"`
	IsFinished     bool   `json:"isFinished"`
	CreatedAt      string `json:"createdAt"`
}

func NewQuizView(quiz *model.Quiz) *QuizView {
	view := &QuizView{
		QuizID:    quiz.ID,
		Questions: make([]QuizQuestionView, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		qv := QuizQuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Answers: make([]QuizAnswerView, 0, len(q.Answers)),
		}
		for _, a := range q.Answers {
			qv.Answers = append(qv.Answers, QuizAnswerView{Letter: a.Letter, Text: a.Text})
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}

// GenerateQuiz 生成测验并在一个事务中持久化
func (s *QuizService) GenerateQuiz(ctx context.Context, userID, setID uint) (*QuizView, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.GenerateQuiz")
	defer span.End()
	span.SetAttributes(attribute.Int64("flashcard_set.id", int64(setID)))

	if _, err := s.SetRepo.FindByID(setID); err != nil {
		monitoring.QuizzesGenerated.WithLabelValues("set_not_found").Inc()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSetNotFound
		}
		return nil, fmt.Errorf("load flashcard set: %w", err)
	}

	cards, err := s.FlashcardRepo.ListBySet(setID)
	if err != nil {
		return nil, fmt.Errorf("load flashcards: %w", err)
	}

	quiz, err := s.Generator.Generate(setID, userID, cards)
	if err != nil {
		monitoring.QuizzesGenerated.WithLabelValues("insufficient").Inc()
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.QuizRepo.CreateWithQuestions(ctx, quiz); err != nil {
		monitoring.QuizzesGenerated.WithLabelValues("error").Inc()
		span.RecordError(err)
		return nil, fmt.Errorf("save quiz: %w", err)
	}

	monitoring.QuizzesGenerated.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Int64("quiz.id", int64(quiz.ID)), attribute.Int("quiz.questions", len(quiz.Questions)))
	logger.Log.Info("Quiz generated",
		zap.Uint("quizID", quiz.ID),
		zap.Uint("setID", setID),
		zap.Uint("userID", userID),
		zap.Int("questions", len(quiz.Questions)),
	)
	return NewQuizView(quiz), nil
}

// CheckQuiz 评分并保存分数；作答数量不符时不写库
func (s *QuizService) CheckQuiz(ctx context.Context, quizID uint, answers map[string]string) (*QuizReport, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.CheckQuiz")
	defer span.End()
	span.SetAttributes(attribute.Int64("quiz.id", int64(quizID)))

	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		monitoring.QuizzesGraded.WithLabelValues("not_found").Inc()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, fmt.Errorf("load quiz: %w", err)
	}

	report, err := GradeQuiz(quiz, answers)
	if err != nil {
		monitoring.QuizzesGraded.WithLabelValues("incomplete").Inc()
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := s.QuizRepo.SaveResult(ctx, quiz); err != nil {
		monitoring.QuizzesGraded.WithLabelValues("error").Inc()
		span.RecordError(err)
		return nil, fmt.Errorf("save quiz result: %w", err)
	}

	monitoring.QuizzesGraded.WithLabelValues("ok").Inc()
	if n := len(quiz.Questions); n > 0 {
		monitoring.QuizScoreRatio.Observe(float64(report.FinalScore) / float64(n))
	}
	logger.Log.Info("Quiz graded",
		zap.Uint("quizID", quiz.ID),
		zap.Int("score", report.FinalScore),
		zap.Int("questions", len(quiz.Questions)),
	)
	return report, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context, userID uint) ([]QuizSummary, error) {
	quizzes, err := s.QuizRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, QuizSummary{
			ID:             q.ID,
			FlashcardSetID: q.FlashcardSetID,
			Score:          q.Score,
			IsFinished:     q.IsFinished,
			CreatedAt:      q.CreatedAt.Format(util.TimeFormat),
		})
	}
	return result, nil
}

func (s *QuizService) findOwned(ctx context.Context, userID, quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if quiz.AuthorID != userID {
		return nil, util.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, userID, quizID uint) (*QuizView, error) {
	quiz, err := s.findOwned(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}
	return NewQuizView(quiz), nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, userID, quizID uint) error {
	if _, err := s.findOwned(ctx, userID, quizID); err != nil {
		return err
	}
	return s.QuizRepo.Delete(ctx, quizID)
}
