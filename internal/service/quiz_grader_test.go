package service

import (
	"encoding/json"
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/util"
	"testing"
)

func gradedQuiz() *model.Quiz {
	return &model.Quiz{
		BaseModel: model.BaseModel{ID: 1},
		Questions: []model.QuizQuestion{
			{BaseModel: model.BaseModel{ID: 11}, CorrectAnswer: "A"},
			{BaseModel: model.BaseModel{ID: 12}, CorrectAnswer: "B"},
			{BaseModel: model.BaseModel{ID: 13}, CorrectAnswer: "C"},
		},
	}
}

func TestGradeQuiz(t *testing.T) {
	tests := []struct {
		name      string
		answers   map[string]string
		wantScore int
		want      map[uint]string
	}{
		{
			name:      "all correct",
			answers:   map[string]string{"11": "A", "12": "B", "13": "C"},
			wantScore: 3,
			want:      map[uint]string{11: ResultCorrect, 12: ResultCorrect, 13: ResultCorrect},
		},
		{
			name:      "all wrong",
			answers:   map[string]string{"11": "D", "12": "D", "13": "D"},
			wantScore: 0,
			want:      map[uint]string{11: ResultIncorrect, 12: ResultIncorrect, 13: ResultIncorrect},
		},
		{
			name:      "lowercase and padded letters",
			answers:   map[string]string{"11": " a", "12": "b ", "13": "d"},
			wantScore: 2,
			want:      map[uint]string{11: ResultCorrect, 12: ResultCorrect, 13: ResultIncorrect},
		},
		{
			name:      "right count wrong ids",
			answers:   map[string]string{"11": "A", "12": "B", "99": "C"},
			wantScore: 2,
			want:      map[uint]string{11: ResultCorrect, 12: ResultCorrect, 13: ResultIncorrect},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := gradedQuiz()
			report, err := GradeQuiz(quiz, tt.answers)
			if err != nil {
				t.Fatalf("GradeQuiz() error = %v", err)
			}
			if report.FinalScore != tt.wantScore || quiz.Score != tt.wantScore {
				t.Errorf("score report=%d quiz=%d, want %d", report.FinalScore, quiz.Score, tt.wantScore)
			}
			if !quiz.IsFinished {
				t.Error("quiz not marked finished")
			}
			for id, want := range tt.want {
				if got := report.Results[id]; got != want {
					t.Errorf("question %d = %q, want %q", id, got, want)
				}
			}
		})
	}
}

func TestGradeQuizIncompleteLeavesQuizUntouched(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]string
	}{
		{name: "missing answer", answers: map[string]string{"11": "A", "12": "B"}},
		{name: "extra answer", answers: map[string]string{"11": "A", "12": "B", "13": "C", "14": "D"}},
		{name: "empty", answers: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := gradedQuiz()
			quiz.Score = 2

			report, err := GradeQuiz(quiz, tt.answers)
			if !errors.Is(err, util.ErrIncompleteSubmission) {
				t.Fatalf("err = %v, want ErrIncompleteSubmission", err)
			}
			if report != nil {
				t.Error("expected no report")
			}
			if quiz.Score != 2 || quiz.IsFinished {
				t.Errorf("quiz mutated: score=%d finished=%v", quiz.Score, quiz.IsFinished)
			}
		})
	}
}

func TestGradeQuizRegradeReplacesScore(t *testing.T) {
	quiz := gradedQuiz()
	answers := map[string]string{"11": "A", "12": "B", "13": "C"}

	for i := 0; i < 3; i++ {
		if _, err := GradeQuiz(quiz, answers); err != nil {
			t.Fatalf("GradeQuiz() error = %v", err)
		}
	}
	if quiz.Score != 3 {
		t.Errorf("score after regrading = %d, want 3", quiz.Score)
	}

	if _, err := GradeQuiz(quiz, map[string]string{"11": "B", "12": "B", "13": "B"}); err != nil {
		t.Fatalf("GradeQuiz() error = %v", err)
	}
	if quiz.Score != 1 {
		t.Errorf("score after worse attempt = %d, want 1", quiz.Score)
	}
}

func TestQuizReportJSON(t *testing.T) {
	report := QuizReport{
		Results:    map[uint]string{11: ResultCorrect, 12: ResultIncorrect},
		FinalScore: 1,
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["11"] != ResultCorrect || got["12"] != ResultIncorrect {
		t.Errorf("unexpected results in %s", data)
	}
	if got["final_score"] != float64(1) {
		t.Errorf("final_score = %v, want 1", got["final_score"])
	}
	if len(got) != 3 {
		t.Errorf("report has %d keys, want 3", len(got))
	}
}
