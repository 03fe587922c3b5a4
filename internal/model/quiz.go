package model

import "strings"

var AnswerLetters = []string{"A", "B", "C", "D"}

// Quiz 由闪卡集合生成，题目和选项归属于该测验
// swagger:model Quiz
type Quiz struct {
	BaseModel
	FlashcardSetID uint           `gorm:"index;not null" json:"flashcardSetId"`
	AuthorID       uint           `gorm:"index;not null" json:"authorId"`
	Score          int            `gorm:"not null;default:0" json:"score"`
	IsFinished     bool           `gorm:"default:false" json:"isFinished"`
	Questions      []QuizQuestion `gorm:"foreignKey:QuizID" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizQuestion struct {
	BaseModel
	QuizID        uint         `gorm:"index;not null" json:"quizId"`
	Position      int          `gorm:"not null" json:"position"`
	Text          string       `gorm:"type:text;not null" json:"text"`
	CorrectAnswer string       `gorm:"size:1;not null" json:"-"`
	Answers       []QuizAnswer `gorm:"foreignKey:QuestionID" json:"answers"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

func (q *QuizQuestion) IsCorrect(letter string) bool {
	return strings.ToUpper(strings.TrimSpace(letter)) == q.CorrectAnswer
}

type QuizAnswer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"-"`
	Letter     string `gorm:"size:1;not null" json:"letter"`
	Text       string `gorm:"type:text;not null" json:"text"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
