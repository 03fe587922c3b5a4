package app

import (
	"context"
	"flashquiz_backend/internal/config"
	"flashquiz_backend/internal/controller"
	"flashquiz_backend/internal/middleware"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/service"
	"flashquiz_backend/internal/util"
	"flashquiz_backend/pkg/configwatcher"
	"flashquiz_backend/pkg/database"
	"flashquiz_backend/pkg/logger"
	"flashquiz_backend/pkg/monitoring"
	"flashquiz_backend/pkg/security"
	"flashquiz_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	category  *repository.CategoryRepository
	tag       *repository.TagRepository
	set       *repository.FlashcardSetRepository
	flashcard *repository.FlashcardRepository
	rating    *repository.RatingRepository
	activity  *repository.ActivityLogRepository
	quiz      *repository.QuizRepository
}

type services struct {
	activity  *service.ActivityService
	auth      *service.AuthService
	storage   *service.StorageService
	category  *service.CategoryService
	tag       *service.TagService
	set       *service.FlashcardSetService
	flashcard *service.FlashcardService
	rating    *service.RatingService
	quiz      *service.QuizService
}

type controllers struct {
	auth      *controller.AuthController
	category  *controller.CategoryController
	tag       *controller.TagController
	set       *controller.FlashcardSetController
	flashcard *controller.FlashcardController
	rating    *controller.RatingController
	quiz      *controller.QuizController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		category:  repository.NewCategoryRepository(db),
		tag:       repository.NewTagRepository(db),
		set:       repository.NewFlashcardSetRepository(db),
		flashcard: repository.NewFlashcardRepository(db),
		rating:    repository.NewRatingRepository(db),
		activity:  repository.NewActivityLogRepository(db),
		quiz:      repository.NewQuizRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.activity = service.NewActivityService(repos.activity)
	s.auth = service.NewAuthService(repos.user, s.activity, cfg)
	s.storage = service.NewStorageService(cfg)
	s.category = service.NewCategoryService(repos.category)
	s.tag = service.NewTagService(repos.tag)
	s.set = service.NewFlashcardSetService(
		repos.set,
		repos.flashcard,
		repos.category,
		repos.tag,
		s.activity,
		s.storage,
	)
	s.flashcard = service.NewFlashcardService(repos.flashcard, repos.set, s.activity)
	s.rating = service.NewRatingService(repos.rating, repos.set, rdb, cfg.Redis.CacheTTL)
	s.quiz = service.NewQuizService(repos.quiz, repos.set, repos.flashcard, service.NewQuizGenerator(nil))

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.activity),
		category:  controller.NewCategoryController(s.category),
		tag:       controller.NewTagController(s.tag),
		set:       controller.NewFlashcardSetController(s.set, s.rating),
		flashcard: controller.NewFlashcardController(s.flashcard),
		rating:    controller.NewRatingController(s.rating),
		quiz:      controller.NewQuizController(s.quiz),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := newApp(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app
}

// newApp 使用已建立的连接组装路由，rdb 可以为 nil
func newApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	gin.SetMode(cfg.Server.Mode)

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) watchConfig(stop <-chan struct{}) {
	configFile := filepath.Join("configs", "config.yaml")
	if _, err := os.Stat(configFile); err != nil {
		return
	}

	go func() {
		err := configwatcher.WatchConfig(configFile, func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		}, stop)
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	stopWatch := make(chan struct{})
	a.watchConfig(stopWatch)

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	close(stopWatch)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
