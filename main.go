package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"TASKS_COLLECTION",
		"USERS_COLLECTION",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
}

func setupRouter(serverCfg config.ServerConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(serverCfg.AllowedOrigins))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Repositories over the shared collections
	userRepo := repository.GetUserRepo(utils.MongoClient)
	taskRepo := repository.GetTaskRepo(utils.MongoClient)

	// Analytics services
	statsService := usecase.NewStatsService(userRepo, taskRepo)
	productivityService := usecase.NewProductivityService(taskRepo)

	statsHandler := handler.NewStatsHandler(statsService)
	productivityHandler := handler.NewProductivityHandler(productivityService)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	analytics := router.Group("/api/analytics")
	{
		analytics.GET("/health", handler.HealthHandler)
		analytics.HEAD("/health", handler.HealthHandler)
		analytics.GET("/stats/:userId", statsHandler.GetUserStats)
		analytics.GET("/productivity/:userId", productivityHandler.GetProductivity)
	}

	return router
}

func main() {
	dbCfg := config.LoadDatabaseConfig()
	serverCfg := config.LoadServerConfig()

	// Initialize the shared MongoDB connection
	utils.InitMongoClient(dbCfg)

	router := setupRouter(serverCfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverCfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Analytics service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	utils.CloseMongoClient(ctx)
	log.Println("Server shutdown complete")
}
