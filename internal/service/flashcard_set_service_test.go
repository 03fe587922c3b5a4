package service

import (
	"context"
	"errors"
	"flashquiz_backend/internal/config"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newSetService(t *testing.T, f *fixture) *FlashcardSetService {
	cfg := &config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()}}
	return NewFlashcardSetService(
		repository.NewFlashcardSetRepository(f.db),
		repository.NewFlashcardRepository(f.db),
		repository.NewCategoryRepository(f.db),
		repository.NewTagRepository(f.db),
		f.activity(),
		NewStorageService(cfg),
	)
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestCreateSet(t *testing.T) {
	f := newFixture(t)
	svc := newSetService(t, f)

	set, err := svc.Create(f.user.ID, SetInput{Name: strPtr("Spanish"), CategoryID: uintPtr(f.category.ID)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if set.Status != model.SetPublic || set.PublicID == "" || set.Author == nil {
		t.Errorf("unexpected set %+v", set)
	}

	_, err = svc.Create(f.user.ID, SetInput{Name: strPtr("Spanish"), CategoryID: uintPtr(f.category.ID)})
	if !errors.Is(err, util.ErrSetExists) {
		t.Errorf("duplicate err = %v, want ErrSetExists", err)
	}

	if _, err := svc.Create(f.other.ID, SetInput{Name: strPtr("Spanish"), CategoryID: uintPtr(f.category.ID)}); err != nil {
		t.Errorf("same name by another author: %v", err)
	}

	var logs []model.ActivityLog
	f.db.Where("user_id = ? AND action = ?", f.user.ID, model.ActionSetCreated).Find(&logs)
	if len(logs) != 1 {
		t.Errorf("got %d B2 activity entries, want 1", len(logs))
	}
}

func TestCreateSetValidation(t *testing.T) {
	f := newFixture(t)
	svc := newSetService(t, f)
	bad := model.SetStatus("hidden")

	tests := []struct {
		name  string
		input SetInput
		want  error
	}{
		{name: "blank name", input: SetInput{Name: strPtr("  "), CategoryID: uintPtr(f.category.ID)}, want: util.ErrInvalidSetName},
		{name: "long name", input: SetInput{Name: strPtr(strings.Repeat("x", 97)), CategoryID: uintPtr(f.category.ID)}, want: util.ErrInvalidSetName},
		{name: "bad status", input: SetInput{Name: strPtr("a"), Status: &bad, CategoryID: uintPtr(f.category.ID)}, want: util.ErrInvalidSetStatus},
		{name: "missing category", input: SetInput{Name: strPtr("a"), CategoryID: uintPtr(404)}, want: util.ErrCategoryNotFound},
		{name: "missing tag", input: SetInput{Name: strPtr("a"), CategoryID: uintPtr(f.category.ID), TagID: uintPtr(404)}, want: util.ErrTagNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(f.user.ID, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetVisibilityAndOwnership(t *testing.T) {
	f := newFixture(t)
	svc := newSetService(t, f)
	private := f.createSet(t, f.user.ID, "secret", model.SetPrivate, 2)
	public := f.createSet(t, f.user.ID, "open", model.SetPublic, 5)

	if _, err := svc.Get(f.other.ID, private.ID); !errors.Is(err, util.ErrSetNotFound) {
		t.Errorf("private set visible to other user: %v", err)
	}
	got, err := svc.Get(f.other.ID, public.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.FlashcardCount != 5 {
		t.Errorf("flashcard count = %d, want 5", got.FlashcardCount)
	}

	if _, err := svc.Update(f.other.ID, public.ID, SetInput{Name: strPtr("mine")}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("update by other err = %v", err)
	}
	if err := svc.Delete(f.other.ID, public.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("delete by other err = %v", err)
	}

	updated, err := svc.Update(f.user.ID, public.ID, SetInput{Name: strPtr("renamed")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "renamed" || updated.Status != model.SetPublic {
		t.Errorf("updated set %+v", updated)
	}
}

func TestListSets(t *testing.T) {
	f := newFixture(t)
	svc := newSetService(t, f)
	f.createSet(t, f.user.ID, "alice public", model.SetPublic, 1)
	f.createSet(t, f.user.ID, "alice private", model.SetPrivate, 2)
	f.createSet(t, f.other.ID, "bob public", model.SetPublic, 3)
	f.createSet(t, f.other.ID, "bob private", model.SetPrivate, 4)

	names := func(sets []model.FlashcardSet) string {
		var out []string
		for _, s := range sets {
			out = append(out, s.Name)
		}
		return strings.Join(out, ",")
	}

	tests := []struct {
		name   string
		filter repository.SetFilter
		want   string
	}{
		{name: "default", filter: repository.SetFilter{ViewerID: f.user.ID}, want: "alice public,alice private,bob public"},
		{name: "user only", filter: repository.SetFilter{ViewerID: f.user.ID, UserOnly: true}, want: "alice public,alice private"},
		{name: "author", filter: repository.SetFilter{ViewerID: f.user.ID, Author: "bob"}, want: "bob public"},
		{name: "name", filter: repository.SetFilter{ViewerID: f.user.ID, Name: "private"}, want: "alice private"},
		{name: "category", filter: repository.SetFilter{ViewerID: f.other.ID, Category: "Languages"}, want: "alice public,bob public,bob private"},
		{name: "unknown category", filter: repository.SetFilter{ViewerID: f.user.ID, Category: "Nope"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := svc.List(tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if got := names(sets); got != tt.want {
				t.Errorf("List() = %q, want %q", got, tt.want)
			}
		})
	}

	sets, _ := svc.List(repository.SetFilter{ViewerID: f.other.ID, UserOnly: true})
	if len(sets) != 2 || sets[0].FlashcardCount != 3 || sets[1].FlashcardCount != 4 {
		t.Errorf("flashcard counts not filled: %+v", sets)
	}
}

func TestDeleteSetCascades(t *testing.T) {
	f := newFixture(t)
	svc := newSetService(t, f)
	set := f.createSet(t, f.user.ID, "doomed", model.SetPublic, 4)

	quizSvc := newQuizService(f)
	if _, err := quizSvc.GenerateQuiz(context.Background(), f.user.ID, set.ID); err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}
	f.db.Create(&model.Rating{SetID: set.ID, UserID: f.other.ID, Rate: 4})

	if err := svc.Delete(f.user.ID, set.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	for _, m := range []interface{}{&model.Flashcard{}, &model.Rating{}, &model.Quiz{}, &model.QuizQuestion{}, &model.QuizAnswer{}} {
		var n int64
		f.db.Model(m).Count(&n)
		if n != 0 {
			t.Errorf("%T: %d rows left", m, n)
		}
	}
}

func TestExportSet(t *testing.T) {
	f := newFixture(t)
	svc := newSetService(t, f)
	set := f.createSet(t, f.user.ID, "export", model.SetPublic, 3)

	if _, err := svc.Export(context.Background(), f.other.ID, set.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("export by other err = %v", err)
	}

	url, err := svc.Export(context.Background(), f.user.ID, set.ID)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/exports/") || !strings.HasSuffix(url, ".json") {
		t.Fatalf("url = %q", url)
	}

	local := svc.Storage.Provider.(*LocalStorageProvider)
	path := filepath.Join(local.Config.LocalPath, filepath.FromSlash(strings.TrimPrefix(url, "/uploads/")))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "export front 2") || !strings.Contains(string(data), `"author": "alice"`) {
		t.Errorf("export document missing content: %s", data)
	}
}
