package app

import (
	"context"
	"edu_resources_backend/internal/config"
	"edu_resources_backend/internal/controller"
	"edu_resources_backend/internal/repository"
	"edu_resources_backend/internal/service"
	"edu_resources_backend/pkg/database"
	"edu_resources_backend/pkg/logger"
	"edu_resources_backend/pkg/monitoring"
	"edu_resources_backend/pkg/security"
	"edu_resources_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	content *repository.ContentRepository
	term    *repository.TermRepository
	meta    *repository.ResourceMetaRepository
	event   *repository.EventRepository
	setting *repository.SettingRepository
}

type services struct {
	auth     *service.AuthService
	settings *service.SettingsService
	query    *service.ResourceQueryService
	tracking *service.TrackingService
	stats    *service.StatsService
	content  *service.ContentService
	storage  *service.StorageService
}

type controllers struct {
	auth          *controller.AuthController
	resource      *controller.ResourceController
	adminResource *controller.AdminResourceController
	settings      *controller.SettingsController
	stats         *controller.StatsController
	content       *controller.ContentController
	health        *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		content: repository.NewContentRepository(db),
		term:    repository.NewTermRepository(db),
		meta:    repository.NewResourceMetaRepository(db),
		event:   repository.NewEventRepository(db),
		setting: repository.NewSettingRepository(db, rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.storage = storage
	s.auth = service.NewAuthService(repos.user, cfg)
	s.settings = service.NewSettingsService(repos.setting)
	s.query = service.NewResourceQueryService(repos.meta, repos.content, s.settings)
	s.tracking = service.NewTrackingService(repos.meta, repos.content, repos.event, s.settings)
	s.stats = service.NewStatsService(repos.meta, repos.content, repos.event)
	s.content = service.NewContentService(repos.content, repos.meta, repos.term)
	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:          controller.NewAuthController(s.auth),
		resource:      controller.NewResourceController(s.query, s.tracking),
		adminResource: controller.NewAdminResourceController(repos.meta, repos.content, s.settings, s.storage),
		settings:      controller.NewSettingsController(s.settings),
		stats:         controller.NewStatsController(s.stats),
		content:       controller.NewContentController(s.content),
		health:        controller.NewHealthController(db),
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
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.SeedAdminUser(db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Log.Fatal("Failed to seed admin user", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Settings fall back to direct reads when the cache is down.
		logger.Log.Warn("Redis unavailable, running without settings cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("edu-resources", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
