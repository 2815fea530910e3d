package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rudasumbwa_backend/internal/config"
	"rudasumbwa_backend/internal/controller"
	"rudasumbwa_backend/internal/middleware"
	"rudasumbwa_backend/internal/repository"
	"rudasumbwa_backend/internal/service"
	"rudasumbwa_backend/pkg/configwatcher"
	"rudasumbwa_backend/pkg/database"
	"rudasumbwa_backend/pkg/logger"
	"rudasumbwa_backend/pkg/monitoring"
	"rudasumbwa_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repositories struct {
	User         *repository.UserRepository
	Quiz         *repository.QuizRepository
	Attempt      *repository.AttemptRepository
	Leaderboard  *repository.LeaderboardRepository
	Note         *repository.NoteRepository
	Club         *repository.ClubRepository
	Announcement *repository.AnnouncementRepository
	Event        *repository.EventRepository
}

type Services struct {
	Auth         *service.AuthService
	User         *service.UserService
	Quiz         *service.QuizService
	Attempt      *service.QuizAttemptService
	Leaderboard  *service.LeaderboardService
	Note         *service.NoteService
	Club         *service.ClubService
	Announcement *service.AnnouncementService
	Event        *service.EventService
	Tutor        *service.TutorService
	Storage      *service.StorageService
}

type Controllers struct {
	Auth         *controller.AuthController
	User         *controller.UserController
	Quiz         *controller.QuizController
	Attempt      *controller.QuizAttemptController
	Leaderboard  *controller.LeaderboardController
	Note         *controller.NoteController
	Club         *controller.ClubController
	Announcement *controller.AnnouncementController
	Tutor        *controller.TutorController
	Storage      *controller.StorageController
	Health       *controller.HealthController
}

type App struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	Router       *gin.Engine
	Repositories *Repositories
	Services     *Services
	Controllers  *Controllers

	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	monitoring.Init()

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("rudasumbwa-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Warn("tracing disabled, collector init failed", zap.Error(err))
		}
	}

	a := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	a.initRepositories()
	if err := a.initServices(); err != nil {
		return nil, err
	}
	a.initControllers()
	a.setupRouter()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		logger.Log.Info("configuration reloaded")
	})

	return a, nil
}

func (a *App) initRepositories() {
	a.Repositories = &Repositories{
		User:         repository.NewUserRepository(a.DB),
		Quiz:         repository.NewQuizRepository(a.DB),
		Attempt:      repository.NewAttemptRepository(a.DB),
		Leaderboard:  repository.NewLeaderboardRepository(a.DB),
		Note:         repository.NewNoteRepository(a.DB),
		Club:         repository.NewClubRepository(a.DB),
		Announcement: repository.NewAnnouncementRepository(a.DB),
		Event:        repository.NewEventRepository(a.DB),
	}
}

func (a *App) initServices() error {
	storage, err := service.NewStorageService(a.Config.Storage)
	if err != nil {
		return err
	}

	leaderboard := service.NewLeaderboardService(a.Repositories.Leaderboard, a.Redis)

	a.Services = &Services{
		Auth:         service.NewAuthService(a.Repositories.User, a.Config),
		User:         service.NewUserService(a.Repositories.User),
		Quiz:         service.NewQuizService(a.Repositories.Quiz, a.DB),
		Attempt:      service.NewQuizAttemptService(a.Repositories.Attempt, a.Repositories.Quiz, leaderboard, a.DB),
		Leaderboard:  leaderboard,
		Note:         service.NewNoteService(a.Repositories.Note),
		Club:         service.NewClubService(a.Repositories.Club),
		Announcement: service.NewAnnouncementService(a.Repositories.Announcement),
		Event:        service.NewEventService(a.Repositories.Event),
		Tutor:        service.NewTutorService(service.NewTutorClient(a.Config.Tutor), a.Redis, a.Config.Tutor),
		Storage:      storage,
	}
	return nil
}

func (a *App) initControllers() {
	a.Controllers = &Controllers{
		Auth:         controller.NewAuthController(a.Services.Auth),
		User:         controller.NewUserController(a.Services.User),
		Quiz:         controller.NewQuizController(a.Services.Quiz),
		Attempt:      controller.NewQuizAttemptController(a.Services.Attempt),
		Leaderboard:  controller.NewLeaderboardController(a.Services.Leaderboard),
		Note:         controller.NewNoteController(a.Services.Note),
		Club:         controller.NewClubController(a.Services.Club),
		Announcement: controller.NewAnnouncementController(a.Services.Announcement, a.Services.Event),
		Tutor:        controller.NewTutorController(a.Services.Tutor),
		Storage:      controller.NewStorageController(a.Services.Storage),
		Health:       controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) authMiddleware() gin.HandlerFunc {
	return middleware.AuthMiddleware(a.Config)
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Run() error {
	a.server = &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.Config.Server.Port))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}

	if err := a.Redis.Close(); err != nil {
		logger.Log.Warn("redis close failed", zap.Error(err))
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("server stopped")
	return nil
}
