package service

import (
	"flashquiz_backend/internal/config"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/pkg/database"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, "test")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	db       *gorm.DB
	user     *model.User
	other    *model.User
	category *model.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}
	f.user = &model.User{Name: "alice", Email: "alice@example.com", Password: "x", Role: model.RoleUser}
	f.other = &model.User{Name: "bob", Email: "bob@example.com", Password: "x", Role: model.RoleUser}
	f.category = &model.Category{Name: "Languages", Level: model.LevelEasy}
	for _, v := range []interface{}{f.user, f.other, f.category} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return f
}

func (f *fixture) createSet(t *testing.T, authorID uint, name string, status model.SetStatus, cards int) *model.FlashcardSet {
	t.Helper()
	set := &model.FlashcardSet{
		Name:       name,
		PublicID:   fmt.Sprintf("pid-%s-%d", name, authorID),
		AuthorID:   authorID,
		Status:     status,
		CategoryID: f.category.ID,
	}
	if err := f.db.Create(set).Error; err != nil {
		t.Fatalf("create set: %v", err)
	}
	for i := 0; i < cards; i++ {
		card := &model.Flashcard{
			Front:    fmt.Sprintf("%s front %d", name, i),
			Back:     fmt.Sprintf("%s back %d", name, i),
			SetID:    set.ID,
			AuthorID: authorID,
		}
		if err := f.db.Create(card).Error; err != nil {
			t.Fatalf("create card: %v", err)
		}
	}
	return set
}

func (f *fixture) activity() *ActivityService {
	return NewActivityService(repository.NewActivityLogRepository(f.db))
}
