package service

import (
	"context"
	"encoding/json"
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func newQuizService(f *fixture) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(f.db),
		repository.NewFlashcardSetRepository(f.db),
		repository.NewFlashcardRepository(f.db),
		NewQuizGenerator(rand.NewSource(99)),
	)
}

// correctAnswers 直接读库拿到正确字母
func correctAnswers(t *testing.T, svc *QuizService, quizID uint) map[string]string {
	t.Helper()
	quiz, err := svc.QuizRepo.FindByID(context.Background(), quizID)
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	answers := make(map[string]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		answers[strconv.FormatUint(uint64(q.ID), 10)] = q.CorrectAnswer
	}
	return answers
}

func TestGenerateQuizPersistsWholeQuiz(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "verbs", model.SetPublic, 6)
	svc := newQuizService(f)

	view, err := svc.GenerateQuiz(context.Background(), f.other.ID, set.ID)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	if view.QuizID == 0 || len(view.Questions) != 6 {
		t.Fatalf("view = %+v", view)
	}
	for _, q := range view.Questions {
		if q.ID == 0 || len(q.Answers) != 4 {
			t.Errorf("question %+v", q)
		}
		for i, a := range q.Answers {
			if a.Letter != model.AnswerLetters[i] {
				t.Errorf("answers not sorted by letter: %+v", q.Answers)
			}
		}
	}

	var questions, answers int64
	f.db.Model(&model.QuizQuestion{}).Where("quiz_id = ?", view.QuizID).Count(&questions)
	f.db.Model(&model.QuizAnswer{}).Count(&answers)
	if questions != 6 || answers != 24 {
		t.Errorf("persisted %d questions and %d answers, want 6 and 24", questions, answers)
	}

	stored, err := svc.QuizRepo.FindByID(context.Background(), view.QuizID)
	if err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if stored.AuthorID != f.other.ID || stored.FlashcardSetID != set.ID {
		t.Errorf("quiz stamped with author %d set %d", stored.AuthorID, stored.FlashcardSetID)
	}
	if stored.Score != 0 || stored.IsFinished {
		t.Errorf("new quiz score=%d finished=%v", stored.Score, stored.IsFinished)
	}
}

func TestQuizViewHidesCorrectAnswer(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "nouns", model.SetPublic, 4)
	svc := newQuizService(f)

	view, err := svc.GenerateQuiz(context.Background(), f.user.ID, set.ID)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(strings.ToLower(string(data)), "correct") {
		t.Errorf("view leaks the correct answer: %s", data)
	}
}

func TestGenerateQuizErrors(t *testing.T) {
	f := newFixture(t)
	small := f.createSet(t, f.user.ID, "small", model.SetPublic, 3)
	svc := newQuizService(f)

	if _, err := svc.GenerateQuiz(context.Background(), f.user.ID, small.ID); !errors.Is(err, util.ErrInsufficientFlashcards) {
		t.Errorf("small set: err = %v, want ErrInsufficientFlashcards", err)
	}
	if _, err := svc.GenerateQuiz(context.Background(), f.user.ID, 12345); !errors.Is(err, util.ErrSetNotFound) {
		t.Errorf("missing set: err = %v, want ErrSetNotFound", err)
	}

	var quizzes int64
	f.db.Model(&model.Quiz{}).Count(&quizzes)
	if quizzes != 0 {
		t.Errorf("%d quizzes persisted after failed generation", quizzes)
	}
}

func TestCheckQuiz(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "capitals", model.SetPublic, 4)
	svc := newQuizService(f)
	ctx := context.Background()

	view, err := svc.GenerateQuiz(ctx, f.user.ID, set.ID)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	answers := correctAnswers(t, svc, view.QuizID)

	report, err := svc.CheckQuiz(ctx, view.QuizID, answers)
	if err != nil {
		t.Fatalf("CheckQuiz() error = %v", err)
	}
	if report.FinalScore != 4 {
		t.Errorf("final score = %d, want 4", report.FinalScore)
	}
	for _, q := range view.Questions {
		if report.Results[q.ID] != ResultCorrect {
			t.Errorf("question %d = %q", q.ID, report.Results[q.ID])
		}
	}

	stored, _ := svc.QuizRepo.FindByID(ctx, view.QuizID)
	if stored.Score != 4 || !stored.IsFinished {
		t.Errorf("stored score=%d finished=%v", stored.Score, stored.IsFinished)
	}

	// 不完整提交不能清掉之前的分数
	delete(answers, strconv.FormatUint(uint64(view.Questions[0].ID), 10))
	if _, err := svc.CheckQuiz(ctx, view.QuizID, answers); !errors.Is(err, util.ErrIncompleteSubmission) {
		t.Fatalf("err = %v, want ErrIncompleteSubmission", err)
	}
	stored, _ = svc.QuizRepo.FindByID(ctx, view.QuizID)
	if stored.Score != 4 || !stored.IsFinished {
		t.Errorf("after incomplete submission score=%d finished=%v", stored.Score, stored.IsFinished)
	}

	// 重新提交全部错误答案，分数被替换
	wrong := make(map[string]string)
	for _, q := range stored.Questions {
		letter := "A"
		if q.CorrectAnswer == "A" {
			letter = "B"
		}
		wrong[strconv.FormatUint(uint64(q.ID), 10)] = letter
	}
	report, err = svc.CheckQuiz(ctx, view.QuizID, wrong)
	if err != nil {
		t.Fatalf("CheckQuiz() error = %v", err)
	}
	if report.FinalScore != 0 {
		t.Errorf("regraded score = %d, want 0", report.FinalScore)
	}
}

func TestCheckQuizUnknownQuiz(t *testing.T) {
	f := newFixture(t)
	svc := newQuizService(f)

	if _, err := svc.CheckQuiz(context.Background(), 999, map[string]string{}); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestQuizHistory(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "history", model.SetPublic, 4)
	svc := newQuizService(f)
	ctx := context.Background()

	first, err := svc.GenerateQuiz(ctx, f.user.ID, set.ID)
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	if _, err := svc.GenerateQuiz(ctx, f.other.ID, set.ID); err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}

	list, err := svc.ListQuizzes(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("ListQuizzes() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != first.QuizID {
		t.Fatalf("ListQuizzes() = %+v", list)
	}

	if _, err := svc.GetQuiz(ctx, f.other.ID, first.QuizID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("other user GetQuiz err = %v, want ErrQuizNotFound", err)
	}
	got, err := svc.GetQuiz(ctx, f.user.ID, first.QuizID)
	if err != nil || len(got.Questions) != 4 {
		t.Fatalf("GetQuiz() = %+v, %v", got, err)
	}

	if err := svc.DeleteQuiz(ctx, f.other.ID, first.QuizID); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("other user DeleteQuiz err = %v", err)
	}
	if err := svc.DeleteQuiz(ctx, f.user.ID, first.QuizID); err != nil {
		t.Fatalf("DeleteQuiz() error = %v", err)
	}

	var questions int64
	f.db.Model(&model.QuizQuestion{}).Where("quiz_id = ?", first.QuizID).Count(&questions)
	if questions != 0 {
		t.Errorf("%d questions left after delete", questions)
	}
}
