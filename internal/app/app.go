package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduquest_backend/internal/catalog"
	"eduquest_backend/internal/config"
	"eduquest_backend/internal/controller"
	"eduquest_backend/internal/repository"
	"eduquest_backend/internal/service"
	"eduquest_backend/pkg/configwatcher"
	"eduquest_backend/pkg/database"
	"eduquest_backend/pkg/logger"
	"eduquest_backend/pkg/monitoring"
	"eduquest_backend/pkg/security"
	"eduquest_backend/pkg/tracing"

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
	Catalog         *catalog.Catalog
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	class    *repository.ClassRepository
	student  *repository.StudentRepository
	quiz     *repository.QuizRepository
	game     *repository.GameRepository
	activity *repository.ActivityRepository
	share    *repository.ShareRepository
	attempt  *repository.AttemptRepository
	mastery  *repository.MasteryRepository
}

type services struct {
	auth     *service.AuthService
	class    *service.ClassService
	content  *service.ContentService
	share    *service.ShareService
	attempt  *service.AttemptService
	report   *service.ReportService
	remedial *service.RemedialService
}

type controllers struct {
	auth    *controller.AuthController
	class   *controller.ClassController
	content *controller.ContentController
	share   *controller.ShareController
	attempt *controller.AttemptController
	report  *controller.ReportController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		class:    repository.NewClassRepository(db),
		student:  repository.NewStudentRepository(db),
		quiz:     repository.NewQuizRepository(db),
		game:     repository.NewGameRepository(db),
		activity: repository.NewActivityRepository(db),
		share:    repository.NewShareRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		mastery:  repository.NewMasteryRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, rdb, cfg)
	s.class = service.NewClassService(repos.class, repos.student)
	s.content = service.NewContentService(repos.quiz, repos.game, repos.activity)
	s.share = service.NewShareService(repos.share, repos.class, repos.quiz, repos.game, repos.activity)
	s.attempt = service.NewAttemptService(repos.attempt, repos.class, repos.student, repos.mastery)
	s.report = service.NewReportService(repos.attempt, repos.class)
	s.remedial = service.NewRemedialService(a.Catalog, repos.attempt, repos.mastery)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		class:   controller.NewClassController(s.class),
		content: controller.NewContentController(s.content),
		share:   controller.NewShareController(s.share),
		attempt: controller.NewAttemptController(s.attempt),
		report:  controller.NewReportController(s.report, s.remedial, s.class),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})

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
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Log.Fatal("Failed to load content catalog", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: cat,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("eduquest-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, services)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded")
		app.Config = newCfg
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
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
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
