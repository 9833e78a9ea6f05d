package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shandeepsugumar/quize-game-platform/internal/config"
	"github.com/Shandeepsugumar/quize-game-platform/internal/controller"
	"github.com/Shandeepsugumar/quize-game-platform/internal/repository"
	"github.com/Shandeepsugumar/quize-game-platform/internal/service"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/database"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/logger"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/monitoring"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/security"
	"github.com/Shandeepsugumar/quize-game-platform/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user             *repository.UserRepository
	quiz             *repository.QuizRepository
	room             *repository.RoomRepository
	gameResult       *repository.GameResultRepository
	leaderboardCache *repository.LeaderboardCache
}

type services struct {
	auth        *service.AuthService
	quiz        *service.QuizService
	room        *service.RoomService
	game        *service.GameService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	auth        *controller.AuthController
	quiz        *controller.QuizController
	room        *controller.RoomController
	game        *controller.GameController
	leaderboard *controller.LeaderboardController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:             repository.NewUserRepository(db),
		quiz:             repository.NewQuizRepository(db),
		room:             repository.NewRoomRepository(db),
		gameResult:       repository.NewGameResultRepository(db),
		leaderboardCache: repository.NewLeaderboardCache(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		auth:        service.NewAuthService(repos.user, cfg),
		quiz:        service.NewQuizService(repos.quiz),
		room:        service.NewRoomService(repos.room, repos.quiz, cfg),
		game:        service.NewGameService(repos.room, repos.quiz, repos.user, repos.gameResult, repos.leaderboardCache),
		leaderboard: service.NewLeaderboardService(repos.user, repos.gameResult, repos.leaderboardCache),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		quiz:        controller.NewQuizController(s.quiz),
		room:        controller.NewRoomController(s.room),
		game:        controller.NewGameController(s.game),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quiz-game-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
