package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/gitfolio/internal/ai"
	"github.com/alimgiray/gitfolio/internal/handlers"
	"github.com/alimgiray/gitfolio/internal/middleware"
	"github.com/alimgiray/gitfolio/internal/services"
	"github.com/alimgiray/gitfolio/pkg/config"
	"github.com/alimgiray/gitfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.Init()

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize dependencies
	githubService := services.NewGitHubService(config.AppConfig.GitHub.Token)
	generator := ai.NewFromConfig(config.AppConfig.AI)
	contentService := services.NewContentService(generator)
	contentstackService := services.NewContentstackService(config.AppConfig.Contentstack)
	launchService := services.NewLaunchService(config.AppConfig.Launch, config.AppConfig.Contentstack.Environment)
	portfolioService := services.NewPortfolioService(
		githubService, contentService, contentstackService, launchService,
		config.AppConfig.Portfolio.BaseURL,
	)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Setup routes
	setupRoutes(router, portfolioService, contentstackService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, portfolioService *services.PortfolioService, contentstackService *services.ContentstackService) {
	generateHandler := handlers.NewGenerateHandler(portfolioService)
	portfolioHandler := handlers.NewPortfolioHandler(contentstackService)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.POST("/generate", generateHandler.Generate)
		api.POST("/generate/stream", generateHandler.Stream)
		api.GET("/palette", generateHandler.Palette)
		api.GET("/portfolios/:slug", portfolioHandler.GetBySlug)
	}
}
