package app

import (
	"github.com/Shandeepsugumar/quize-game-platform/internal/config"
	"github.com/Shandeepsugumar/quize-game-platform/internal/middleware"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/monitoring"

	"github.com/Shandeepsugumar/quize-game-platform/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/google", c.auth.GoogleLogin)
		}

		api.GET("/quizzes", c.quiz.ListQuizzes)
		api.GET("/quizzes/:id", c.quiz.GetQuiz)

		api.GET("/rooms/active/all", c.room.ListActiveRooms)

		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("/global", c.leaderboard.Global)
			leaderboard.GET("/recent", c.leaderboard.RecentGames)
			leaderboard.GET("/user/:userId", c.leaderboard.UserStats)
		}

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.GET("/auth/me", c.auth.Me)
			authorized.PUT("/auth/profile", c.auth.UpdateProfile)
			authorized.POST("/auth/logout", c.auth.Logout)

			authorized.POST("/quizzes", c.quiz.CreateQuiz)
			authorized.GET("/quizzes/my/list", c.quiz.ListMyQuizzes)
			authorized.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)

			authorized.POST("/rooms", c.room.CreateRoom)
			authorized.POST("/rooms/join", c.room.JoinRoom)
			authorized.GET("/rooms/:roomCode", c.room.GetRoom)
			authorized.POST("/rooms/:roomCode/toggle-powerups", c.room.TogglePowerUps)
			authorized.POST("/rooms/:roomCode/start", c.room.StartGame)

			authorized.POST("/game/answer", c.game.SubmitAnswer)
			authorized.POST("/game/complete", c.game.CompleteGame)
			authorized.GET("/game/results/:roomCode", c.game.GetResults)
		}
	}
}
