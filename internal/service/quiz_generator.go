package service

import (
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/util"
	"math/rand"
	"sync"
	"time"
)

// MinQuizFlashcards 每道题需要一个正确答案和三个干扰项
var MinQuizFlashcards = len(model.AnswerLetters)

// QuizGenerator 根据闪卡生成选择题，随机源可注入以便测试
type QuizGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuizGenerator(src rand.Source) *QuizGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &QuizGenerator{rnd: rand.New(src)}
}

// Generate 在内存中构建完整测验，不做持久化。
// 每张闪卡对应一道题，题目顺序随机；正确字母均匀随机，
// 其余字母按字母序填入从其他闪卡中无放回抽取的背面内容。
func (g *QuizGenerator) Generate(setID, authorID uint, cards []model.Flashcard) (*model.Quiz, error) {
	if len(cards) < MinQuizFlashcards {
		return nil, util.ErrInsufficientFlashcards
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	quiz := &model.Quiz{
		FlashcardSetID: setID,
		AuthorID:       authorID,
		Questions:      make([]model.QuizQuestion, 0, len(cards)),
	}

	for pos, idx := range g.rnd.Perm(len(cards)) {
		card := cards[idx]
		correct := model.AnswerLetters[g.rnd.Intn(len(model.AnswerLetters))]
		decoys := g.pickDecoys(cards, idx, len(model.AnswerLetters)-1)

		answers := make([]model.QuizAnswer, 0, len(model.AnswerLetters))
		next := 0
		for _, letter := range model.AnswerLetters {
			text := card.Back
			if letter != correct {
				text = decoys[next]
				next++
			}
			answers = append(answers, model.QuizAnswer{Letter: letter, Text: text})
		}

		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Position:      pos,
			Text:          card.Front,
			CorrectAnswer: correct,
			Answers:       answers,
		})
	}

	return quiz, nil
}

// pickDecoys 按下标排除当前卡片，背面内容重复的其他卡片仍可入选
func (g *QuizGenerator) pickDecoys(cards []model.Flashcard, exclude, n int) []string {
	pool := make([]int, 0, len(cards)-1)
	for i := range cards {
		if i != exclude {
			pool = append(pool, i)
		}
	}

	decoys := make([]string, 0, n)
	for len(decoys) < n {
		j := g.rnd.Intn(len(pool))
		decoys = append(decoys, cards[pool[j]].Back)
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return decoys
}
