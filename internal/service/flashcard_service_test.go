package service

import (
	"errors"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"testing"
)

func newFlashcardService(f *fixture) *FlashcardService {
	return NewFlashcardService(
		repository.NewFlashcardRepository(f.db),
		repository.NewFlashcardSetRepository(f.db),
		f.activity(),
	)
}

func TestCreateFlashcard(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "cards", model.SetPublic, 0)
	svc := newFlashcardService(f)

	input := FlashcardInput{Front: strPtr("hola"), Back: strPtr("hello"), SetID: &set.ID}
	card, err := svc.Create(f.user.ID, input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if card.AuthorID != f.user.ID || card.SetID != set.ID {
		t.Errorf("card = %+v", card)
	}

	tests := []struct {
		name   string
		userID uint
		input  FlashcardInput
		want   error
	}{
		{name: "duplicate", userID: f.user.ID, input: input, want: util.ErrFlashcardExists},
		{name: "not set author", userID: f.other.ID, input: FlashcardInput{Front: strPtr("a"), Back: strPtr("b"), SetID: &set.ID}, want: util.ErrPermissionDenied},
		{name: "empty back", userID: f.user.ID, input: FlashcardInput{Front: strPtr("a"), Back: strPtr(" "), SetID: &set.ID}, want: util.ErrEmptyFlashcard},
		{name: "missing set", userID: f.user.ID, input: FlashcardInput{Front: strPtr("a"), Back: strPtr("b"), SetID: uintPtr(404)}, want: util.ErrSetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.userID, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	var logs int64
	f.db.Model(&model.ActivityLog{}).Where("action = ?", model.ActionFlashcardCreated).Count(&logs)
	if logs != 1 {
		t.Errorf("got %d B1 activity entries, want 1", logs)
	}
}

func TestFlashcardOwnership(t *testing.T) {
	f := newFixture(t)
	set := f.createSet(t, f.user.ID, "owned", model.SetPublic, 2)
	svc := newFlashcardService(f)

	cards, err := svc.List(repository.FlashcardFilter{AuthorID: f.user.ID, SetName: "owned"})
	if err != nil || len(cards) != 2 {
		t.Fatalf("List() = %v, %v", cards, err)
	}
	id := cards[0].ID

	if _, err := svc.Get(f.other.ID, id); !errors.Is(err, util.ErrFlashcardNotFound) {
		t.Errorf("Get by other err = %v", err)
	}
	if err := svc.Delete(f.other.ID, id); !errors.Is(err, util.ErrFlashcardNotFound) {
		t.Errorf("Delete by other err = %v", err)
	}

	// 只改背面时不应与自身判重
	updated, err := svc.Update(f.user.ID, id, FlashcardInput{Back: strPtr(cards[0].Back)})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.SetID != set.ID {
		t.Errorf("updated card moved to set %d", updated.SetID)
	}

	// 改成与另一张卡相同
	_, err = svc.Update(f.user.ID, id, FlashcardInput{Front: strPtr(cards[1].Front), Back: strPtr(cards[1].Back)})
	if !errors.Is(err, util.ErrFlashcardExists) {
		t.Errorf("err = %v, want ErrFlashcardExists", err)
	}

	if err := svc.Delete(f.user.ID, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if cards, _ := svc.List(repository.FlashcardFilter{AuthorID: f.user.ID, FlashcardID: id}); len(cards) != 0 {
		t.Errorf("deleted card still listed")
	}
}
