package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"product-slider-backend/internal/config"
	"product-slider-backend/internal/handlers"
	"product-slider-backend/internal/middleware"
	"product-slider-backend/internal/models"
	"product-slider-backend/internal/repository"
	"product-slider-backend/internal/service"
	"product-slider-backend/pkg/cache"
	"product-slider-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Slider     repository.SliderRepository
	SliderMeta repository.SliderMetaRepository
	Product    repository.ProductRepository
	Setting    repository.SettingRepository
}

type serviceContainer struct {
	Slider  *service.SliderService
	Render  *service.RenderService
	Product *service.ProductService
}

type handlerContainer struct {
	Slider   *handlers.SliderHandler
	Render   *handlers.RenderHandler
	Product  *handlers.ProductHandler
	Settings *handlers.SettingsHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.initRepositories()
	app.initServices()
	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Slider{},
		&models.SliderMeta{},
		&models.Product{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) initCache() error {
	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableRedis)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Slider:     repository.NewSliderRepository(a.db),
		SliderMeta: repository.NewSliderMetaRepository(a.db),
		Product:    repository.NewProductRepository(a.db),
		Setting:    repository.NewSettingRepository(a.db),
	}
}

func (a *Application) initServices() {
	a.services = serviceContainer{
		Slider:  service.NewSliderService(a.repositories.Slider, a.repositories.SliderMeta, a.repositories.Setting),
		Render:  service.NewRenderService(a.repositories.Slider, a.repositories.SliderMeta, a.repositories.Product),
		Product: service.NewProductService(a.repositories.Product, a.cache),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Slider:   handlers.NewSliderHandler(a.services.Slider),
		Render:   handlers.NewRenderHandler(a.services.Render),
		Product:  handlers.NewProductHandler(a.services.Product),
		Settings: handlers.NewSettingsHandler(a.services.Slider),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.MetricsMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Slider-State"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		public.Use(middleware.OptionalAuthMiddleware(a.cfg.JWTSecret))
		{
			public.GET("/sliders/:id/render", a.handlers.Render.Render)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/sliders", a.handlers.Slider.Create)
			admin.GET("/sliders", a.handlers.Slider.List)
			admin.GET("/sliders/:id", a.handlers.Slider.Get)
			admin.PUT("/sliders/:id", a.handlers.Slider.Save)
			admin.PATCH("/sliders/:id/status", a.handlers.Slider.UpdateStatus)
			admin.DELETE("/sliders/:id", a.handlers.Slider.Delete)

			admin.POST("/preview", a.handlers.Render.Preview)

			admin.POST("/products", a.handlers.Product.Create)
			admin.GET("/products/search", a.handlers.Product.Search)

			admin.GET("/settings/defaults", a.handlers.Settings.GetDefaults)
			admin.PUT("/settings/defaults", a.handlers.Settings.UpdateDefaults)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
