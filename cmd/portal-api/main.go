package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nctu-sis/portal-api/api/swagger"
	"github.com/nctu-sis/portal-api/internal/handler"
	internalmw "github.com/nctu-sis/portal-api/internal/middleware"
	"github.com/nctu-sis/portal-api/internal/service"
	"github.com/nctu-sis/portal-api/internal/store"
	"github.com/nctu-sis/portal-api/pkg/config"
	"github.com/nctu-sis/portal-api/pkg/logger"
	corsmiddleware "github.com/nctu-sis/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nctu-sis/portal-api/pkg/middleware/requestid"
)

// @title NCTU SIS Portal API
// @version 0.1.0
// @description Role-based student information system portal over an in-memory dataset
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// The store is built once and handed to every service; nothing else in
	// the process holds entity state.
	entities := store.New(store.DefaultSeed())
	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	authSvc := service.NewAuthService(entities, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	studentSvc := service.NewStudentService(entities, logr)
	exportSvc := service.NewExportService(studentSvc, logr)
	adminSvc := service.NewAdminService(entities, validate, logr, metricsSvc)
	financeSvc := service.NewFinanceService(entities, logr, metricsSvc)
	profSvc := service.NewProfessorService(entities, validate, logr, metricsSvc)
	newsSvc := service.NewNewsService(entities, validate, logr, metricsSvc)

	assistantCfg := cfg.Assistant
	if !assistantCfg.Enabled {
		// A disabled assistant answers every chat with the fallback reply.
		assistantCfg.APIKey = ""
	}
	assistantSvc := service.NewAssistantService(assistantCfg, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmw.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, handler.Services{
		Auth:      authSvc,
		Students:  studentSvc,
		Exports:   exportSvc,
		Admin:     adminSvc,
		Finance:   financeSvc,
		Prof:      profSvc,
		News:      newsSvc,
		Assistant: assistantSvc,
		Metrics:   metricsSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
