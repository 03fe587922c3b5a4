// 手动导入闪卡集合脚本
//
// 读取 POST /api/sets/:id/export 导出的 JSON 文档，为指定用户重新创建集合和闪卡。
// 适用于在不同环境之间迁移集合。
//
// 用法: go run scripts/import_set.go -file export.json -email user@example.com -category 1

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"flashquiz_backend/internal/config"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"
	"flashquiz_backend/pkg/database"
	"flashquiz_backend/pkg/logger"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "导出的 JSON 文件")
	email := flag.String("email", "", "集合作者邮箱")
	categoryID := flag.Uint("category", 0, "目标分类ID")
	flag.Parse()

	if *file == "" || *email == "" || *categoryID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	logger.InitLogger(cfg)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("无法读取导出文件: %v", err)
	}
	var doc service.SetExport
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("解析导出文件失败: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	author, err := userRepo.FindByEmail(*email)
	if err != nil {
		log.Fatalf("找不到用户 %s: %v", *email, err)
	}

	setRepo := repository.NewFlashcardSetRepository(db)
	flashcardRepo := repository.NewFlashcardRepository(db)
	activity := service.NewActivityService(repository.NewActivityLogRepository(db))
	setService := service.NewFlashcardSetService(
		setRepo,
		flashcardRepo,
		repository.NewCategoryRepository(db),
		repository.NewTagRepository(db),
		activity,
		service.NewStorageService(cfg),
	)
	flashcardService := service.NewFlashcardService(flashcardRepo, setRepo, activity)

	status := model.SetPrivate
	set, err := setService.Create(author.ID, service.SetInput{
		Name:       &doc.Name,
		Status:     &status,
		CategoryID: categoryID,
	})
	if err != nil {
		log.Fatalf("创建集合失败: %v", err)
	}

	imported, skipped := 0, 0
	for i := range doc.Flashcards {
		card := doc.Flashcards[i]
		_, err := flashcardService.Create(author.ID, service.FlashcardInput{
			Front: &card.Front,
			Back:  &card.Back,
			SetID: &set.ID,
		})
		switch {
		case err == nil:
			imported++
		case errors.Is(err, util.ErrFlashcardExists), errors.Is(err, util.ErrEmptyFlashcard):
			skipped++
		default:
			log.Fatalf("导入闪卡失败: %v", err)
		}
	}

	logger.Log.Info("Flashcard set imported",
		zap.Uint("setID", set.ID),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped),
	)
	logger.Log.Sync()
}
