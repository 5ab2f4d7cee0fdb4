package app

import (
	"context"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/controller"
	"lingua_edu_backend/internal/repository"
	"lingua_edu_backend/internal/service"
	"lingua_edu_backend/pkg/database"
	"lingua_edu_backend/pkg/logger"
	"lingua_edu_backend/pkg/monitoring"
	"lingua_edu_backend/pkg/security"
	"lingua_edu_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	hero        *repository.HeroRepository
	stat        *repository.StatRepository
	whyChoose   *repository.WhyChooseUsRepository
	facility    *repository.FacilityRepository
	event       *repository.EventRepository
	termBanner  *repository.TermBannerRepository
	footer      *repository.FooterRepository
	section     *repository.SectionSettingRepository
	programPage *repository.ProgramPageRepository
}

type services struct {
	auth    *service.AuthService
	storage *service.StorageService
	content *service.ContentService
	program *service.ProgramService
	site    *service.SiteService
	media   *service.MediaService
}

type controllers struct {
	auth    *controller.AuthController
	content *controller.ContentController
	program *controller.ProgramController
	site    *controller.SiteController
	media   *controller.MediaController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies a freshly loaded config file. Runtime flags
// survive the reload; listeners pick up the rest.
func (a *App) ReloadConfig(cfg *config.Config) {
	cfg.ForceMigrate = a.Config.ForceMigrate
	cfg.MigrateOnly = a.Config.MigrateOnly
	a.Config = cfg

	logger.Log.Info("configuration reloaded")
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		hero:        repository.NewHeroRepository(db),
		stat:        repository.NewStatRepository(db),
		whyChoose:   repository.NewWhyChooseUsRepository(db),
		facility:    repository.NewFacilityRepository(db),
		event:       repository.NewEventRepository(db),
		termBanner:  repository.NewTermBannerRepository(db),
		footer:      repository.NewFooterRepository(db),
		section:     repository.NewSectionSettingRepository(db),
		programPage: repository.NewProgramPageRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.content = service.NewContentService(
		repos.hero,
		repos.stat,
		repos.whyChoose,
		repos.facility,
		repos.event,
		repos.termBanner,
		repos.footer,
		repos.section,
		repos.programPage,
	)
	s.program = service.NewProgramService(repos.programPage, s.storage, db)
	s.site = service.NewSiteService(
		repos.hero,
		repos.stat,
		repos.whyChoose,
		repos.facility,
		repos.event,
		repos.termBanner,
		repos.footer,
		repos.section,
		s.storage,
	)
	s.media = service.NewMediaService(s.storage, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		content: controller.NewContentController(s.content, s.program, a.Config),
		program: controller.NewProgramController(s.program),
		site:    controller.NewSiteController(s.site, s.content),
		media:   controller.NewMediaController(s.media),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if err := s.site.DeactivateExpiredBanners(); err != nil {
				logger.Log.Error("banner expiry sweep failed", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingua-edu", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

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

	log.Println("Server exiting")
}
