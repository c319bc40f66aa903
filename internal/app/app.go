package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scholarship_portal_backend/internal/config"
	"scholarship_portal_backend/internal/controller"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/service"
	"scholarship_portal_backend/pkg/database"
	"scholarship_portal_backend/pkg/logger"
	"scholarship_portal_backend/pkg/monitoring"
	"scholarship_portal_backend/pkg/security"
	"scholarship_portal_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type stores struct {
	applications  repository.ApplicationStore
	users         repository.UserStore
	disbursements repository.DisbursementStore
}

type services struct {
	auth        *service.AuthService
	quiz        *service.QuizService
	storage     *service.StorageService
	application *service.ApplicationService
	user        *service.UserService
	profile     *service.ProfileService
}

type controllers struct {
	auth        *controller.AuthController
	quiz        *controller.QuizController
	application *controller.ApplicationController
	user        *controller.UserController
	profile     *controller.ProfileController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

// initStores selects the backing store from configuration. The memory store
// is the development stand-in; it is never combined with MySQL.
func (a *App) initStores(cfg *config.Config) (*stores, error) {
	if cfg.Database.Driver == "memory" {
		logger.Log.Warn("Using in-memory store; data will not survive a restart")
		return &stores{
			applications:  repository.NewMemoryApplicationStore(),
			users:         repository.NewMemoryUserStore(),
			disbursements: repository.NewMemoryDisbursementStore(),
		}, nil
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}
	a.DB = db

	return &stores{
		applications:  repository.NewApplicationRepository(db),
		users:         repository.NewUserRepository(db),
		disbursements: repository.NewDisbursementRepository(db),
	}, nil
}

func (a *App) initServices(st *stores, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.quiz = service.NewQuizService(rdb)
	s.auth = service.NewAuthService(st.users, cfg)
	s.application = service.NewApplicationService(st.applications, st.disbursements, s.storage, s.quiz)
	s.user = service.NewUserService(st.users)
	s.profile = service.NewProfileService(st.applications, st.disbursements)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, a.Config),
		quiz:        controller.NewQuizController(s.quiz),
		application: controller.NewApplicationController(s.application),
		user:        controller.NewUserController(s.user),
		profile:     controller.NewProfileController(s.profile),
		health:      controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
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

	app := &App{Config: cfg}

	// Server mode is the one setting a running process can honor on reload;
	// secrets, store wiring and middleware keep their boot-time values.
	app.RegisterConfigCallback(func(next *config.Config) {
		logger.SetMode(next.Server.Mode)
	})

	st, err := app.initStores(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize store", zap.Error(err))
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		app.Redis = rdb
	}

	services := app.initServices(st, cfg, app.Redis)
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("scholarship-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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
