package app

import (
	"flashquiz_backend/docs"
	"flashquiz_backend/internal/config"
	"flashquiz_backend/internal/middleware"
	"flashquiz_backend/internal/model"
	"flashquiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerQuizRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/logout", c.auth.Logout)
	rg.GET("/profile", c.auth.GetProfile)
	rg.GET("/activity", c.auth.GetActivity)

	category := rg.Group("/category")
	{
		category.GET("", c.category.ListCategories)
		category.POST("", c.category.CreateCategory)
		category.GET("/:id", c.category.GetCategory)
	}

	tags := rg.Group("/tags")
	{
		tags.GET("", c.tag.ListTags)
		tags.POST("", c.tag.CreateTag)
	}

	sets := rg.Group("/sets")
	{
		sets.GET("", c.set.ListSets)
		sets.POST("", c.set.CreateSet)
		sets.GET("/:id", c.set.GetSet)
		sets.PUT("/:id", c.set.UpdateSet)
		sets.PATCH("/:id", c.set.UpdateSet)
		sets.DELETE("/:id", c.set.DeleteSet)
		sets.POST("/:id/export", c.set.ExportSet)
		sets.GET("/:id/rating", c.set.GetSetRating)
	}

	flashcards := rg.Group("/flashcards")
	{
		flashcards.GET("", c.flashcard.ListFlashcards)
		flashcards.POST("", c.flashcard.CreateFlashcard)
		flashcards.GET("/:id", c.flashcard.GetFlashcard)
		flashcards.PUT("/:id", c.flashcard.UpdateFlashcard)
		flashcards.PATCH("/:id", c.flashcard.UpdateFlashcard)
		flashcards.DELETE("/:id", c.flashcard.DeleteFlashcard)
	}

	ratings := rg.Group("/ratings")
	{
		ratings.GET("", c.rating.ListRatings)
		ratings.POST("", c.rating.CreateRating)
	}
}

func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	quiz := rg.Group("/quiz")
	{
		quiz.POST("/generate", c.quiz.GenerateQuiz)
		quiz.PUT("/check", c.quiz.CheckQuiz)
		quiz.PATCH("/check", c.quiz.CheckQuiz)
	}

	quizzes := rg.Group("/quizzes")
	{
		quizzes.GET("", c.quiz.ListQuizzes)
		quizzes.GET("/:id", c.quiz.GetQuiz)
		quizzes.DELETE("/:id", c.quiz.DeleteQuiz)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.PUT("/category/:id", c.category.UpdateCategory)
		admin.DELETE("/category/:id", c.category.DeleteCategory)
		admin.DELETE("/tags/:id", c.tag.DeleteTag)
	}
}
