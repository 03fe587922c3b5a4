package service

import (
	"encoding/json"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/util"
	"strconv"
)

const (
	ResultCorrect   = "Correct"
	ResultIncorrect = "Incorrect"
)

// QuizReport 序列化为 {"<题目 id>": "Correct"|"Incorrect", "final_score": n}
type QuizReport struct {
	Results    map[uint]string
	FinalScore int
}

func (r QuizReport) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Results)+1)
	for id, result := range r.Results {
		out[strconv.FormatUint(uint64(id), 10)] = result
	}
	out["final_score"] = r.FinalScore
	return json.Marshal(out)
}

// GradeQuiz 先校验作答数量，数量不符时不修改 quiz。
// 通过校验后分数归零重新计算，并标记为已完成。
func GradeQuiz(quiz *model.Quiz, answers map[string]string) (*QuizReport, error) {
	if len(answers) != len(quiz.Questions) {
		return nil, util.ErrIncompleteSubmission
	}

	report := &QuizReport{Results: make(map[uint]string, len(quiz.Questions))}
	score := 0
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		letter, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if ok && q.IsCorrect(letter) {
			score++
			report.Results[q.ID] = ResultCorrect
		} else {
			report.Results[q.ID] = ResultIncorrect
		}
	}

	quiz.Score = score
	quiz.IsFinished = true
	report.FinalScore = score
	return report, nil
}
