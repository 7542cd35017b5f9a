package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"arton360/internal/api/handlers"
	"arton360/internal/api/middleware"
	"arton360/internal/catalog"
	"arton360/internal/config"
	"arton360/internal/database"
	"arton360/internal/designer"
	"arton360/internal/events"
	"arton360/internal/logger"
	"arton360/internal/media"
	"arton360/internal/taxonomy"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	db     *database.Database
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database, publisher *events.Publisher) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.DesignerOrigin))

	// Uploaded media and garment base images
	router.Static("/uploads", cfg.UploadDir)
	if cfg.AssetsDir != "" {
		router.Static("/assets", cfg.AssetsDir)
	}

	// Domain services
	ingestor := media.NewIngestor(db.DB, logger, cfg.UploadDir, cfg.SiteURL)
	terms := taxonomy.NewStore(db.DB)
	generator := catalog.NewGenerator(db.DB, logger, terms, cfg.ColorTaxonomy, cfg.SizeTaxonomy)
	service := designer.NewService(db.DB, logger, ingestor, generator, publisher, cfg.SiteURL)

	// Initialize handlers
	designHandler := handlers.NewDesignHandler(service, logger)
	productHandler := handlers.NewProductHandler(db.DB, logger)
	colorMapHandler := handlers.NewColorMapHandler(db.DB, logger, cfg)
	widgetHandler := handlers.NewWidgetHandler(db.DB, logger, cfg)

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Arton360 bridge is running",
			"status":  "healthy",
		})
	})

	// Routes
	v1 := router.Group("/arton360/v1")
	{
		// Color handoff is read by the shop page, no auth
		v1.GET("/products/:id/color-map", colorMapHandler.Get)

		vendor := v1.Group("")
		vendor.Use(middleware.Auth(db.DB, logger), middleware.RequireVendor())
		{
			vendor.POST("/save-design", designHandler.Save)
			vendor.GET("/designer-widget", widgetHandler.Render)
			vendor.GET("/products", productHandler.List)
			vendor.GET("/products/:id", productHandler.Get)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		db:     db,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the Gin router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
