package main

import (
	"carbontrack/database"
	"carbontrack/docs"
	"carbontrack/internal/cache"
	"carbontrack/internal/climatiq"
	"carbontrack/internal/config"
	"carbontrack/internal/controllers"
	"carbontrack/internal/emissions"
	"carbontrack/internal/middleware"
	"carbontrack/internal/repository"
	"carbontrack/routes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Carbon Footprint Tracker API"
	docs.SwaggerInfo.Description = "Records user activities and estimates their greenhouse-gas emissions."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	activityRepo := repository.NewActivityRepository(database.DB)

	// The estimate cache is optional: without Redis every estimation
	// goes straight to the provider.
	var estimateCache emissions.EstimateCache
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: estimate cache unavailable: %v", err)
		} else {
			defer redisClient.Close()
			estimateCache = redisClient
			log.Println("Estimate cache connected")
		}
	}

	provider := climatiq.NewClient(cfg.ClimatiqBaseURL, cfg.ClimatiqAPIKey, cfg.ProviderTimeout)
	estimator := emissions.NewEstimator(provider, estimateCache)

	activityController := controllers.NewActivityController(activityRepo, estimator)
	emissionController := controllers.NewEmissionController(activityRepo, estimator)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Carbon Footprint API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterActivityRoutes(router, activityController)
	routes.RegisterEmissionRoutes(router, emissionController)
	routes.RegisterSwaggerRoutes(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
