// File: nestulasli/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"nestulasli/config"
	"nestulasli/cron"
	"nestulasli/database"
	availabilityRepo "nestulasli/database/repository/availability"
	"nestulasli/handlers"
	"nestulasli/middleware"
	"nestulasli/routes"
	"nestulasli/services/availability"
	"nestulasli/services/planner"
	"nestulasli/services/rates"
	"nestulasli/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitRatesCache()

	// The availability backend defaults to the seeded in-memory calendar;
	// Mongo is opt-in for deployments with a real availability store.
	var availRepo availabilityRepo.Repository
	if config.AppConfig.AvailabilityBackend == "mongo" {
		database.InitDB()
		availRepo = availabilityRepo.NewMongoAvailabilityRepo()
	} else {
		availRepo = availabilityRepo.NewMemoryAvailabilityRepo()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{Repo: availRepo}

	displayCurrencies := strings.Split(config.AppConfig.DisplayCurrencies, ",")
	for i := range displayCurrencies {
		displayCurrencies[i] = strings.TrimSpace(displayCurrencies[i])
	}
	ratesSvc := rates.NewService(utils.GetRatesCacheClient(), displayCurrencies, logger)

	presetNames := make([]string, 0, len(config.Villas))
	for _, v := range config.Villas {
		presetNames = append(presetNames, v.Name)
	}
	plannerSvc := planner.NewService(config.Scenarios, config.Pricing.MarketingRampYears, presetNames)

	// Background currency-rate refresh; quotes never wait on it.
	cron.InitRatesWorker(ratesSvc)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetRatesCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Villa:   handlers.NewVillaHandler(availabilitySvc),
		Quote:   handlers.NewQuoteHandler(ratesSvc),
		Enquiry: handlers.NewEnquiryHandler(utils.GetSessionCacheClient(), availabilitySvc, logger),
		Planner: handlers.NewPlannerHandler(plannerSvc, ratesSvc),
		Admin:   handlers.NewAdminHandler(plannerSvc, availRepo),
		Rates:   handlers.NewRatesHandler(ratesSvc),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
