package model

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Languages", want: "languages"},
		{name: "spaces", in: "Computer  Science", want: "computer-science"},
		{name: "accents", in: "Español Básico", want: "espanol-basico"},
		{name: "punctuation dropped", in: "C++ & Go!", want: "c-go"},
		{name: "underscore kept", in: "snake_case", want: "snake_case"},
		{name: "trailing separator", in: "math - ", want: "math"},
		{name: "truncated", in: "abcdefghij abcdefghij abcdefghij abcdefghij", want: "abcdefghij-abcdefghij-abcdefghij"},
		{name: "no ascii", in: "日本語", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryLevelValid(t *testing.T) {
	for _, l := range []CategoryLevel{LevelEasy, LevelMedium, LevelHard} {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	if CategoryLevel("medium").Valid() {
		t.Error(`"medium" should be invalid`)
	}
}

func TestQuizQuestionIsCorrect(t *testing.T) {
	q := QuizQuestion{CorrectAnswer: "C"}
	tests := map[string]bool{"C": true, "c": true, " c ": true, "D": false, "": false, "CC": false}
	for letter, want := range tests {
		if got := q.IsCorrect(letter); got != want {
			t.Errorf("IsCorrect(%q) = %v, want %v", letter, got, want)
		}
	}
}

func TestSetVisibleTo(t *testing.T) {
	set := FlashcardSet{AuthorID: 1, Status: SetPrivate}
	if !set.VisibleTo(1) || set.VisibleTo(2) {
		t.Error("private set visibility wrong")
	}
	set.Status = SetPublic
	if !set.VisibleTo(2) {
		t.Error("public set should be visible to everyone")
	}
}
