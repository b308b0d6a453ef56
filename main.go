// File: chefly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chefly/config"
	"chefly/cron"
	"chefly/database"
	bookingRepoPkg "chefly/database/repository/booking"
	chefRepoPkg "chefly/database/repository/chef"
	clientRepoPkg "chefly/database/repository/client"
	"chefly/handlers"
	"chefly/middleware"
	"chefly/routes"
	bookingSvc "chefly/services/booking"
	chefSvc "chefly/services/chef"
	"chefly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB(config.AppConfig.DatabaseURL)
	defer database.Disconnect()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	chefRepo := chefRepoPkg.NewMongoChefRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()

	// reminder queue.
	taskQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer taskQueue.Close()

	// services.
	matchingService := &bookingSvc.DefaultMatchingService{
		ChefRepo:    chefRepo,
		CacheClient: utils.GetCacheClient(),
	}
	bookingService := &bookingSvc.DefaultBookingService{
		ChefRepo:            chefRepo,
		BookingRepo:         bookingRepo,
		ClientRepo:          clientRepo,
		CacheClient:         utils.GetCacheClient(),
		TaskQueue:           taskQueue,
		ReminderLeadMinutes: config.AppConfig.ReminderLeadMinutes,
	}
	chefService := &chefSvc.DefaultChefService{Repo: chefRepo, Cache: utils.GetCacheClient()}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService)
	earningsHandler := handlers.NewEarningsHandler(bookingService)
	marketplaceHandler := handlers.NewMarketplaceHandler(matchingService)
	chefHandler := handlers.NewChefHandler(chefService)
	clientHandler := handlers.NewClientHandler(clientRepo)

	routes.RegisterMarketplaceRoutes(router, marketplaceHandler, chefHandler, clientHandler)
	routes.RegisterBookingRoutes(router, bookingHandler, earningsHandler)

	// background workers.
	cron.InitReminderWorker()
	earningsCron := cron.InitEarningsRefresh(chefRepo, bookingService)
	defer earningsCron.Stop()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("chefly listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server exited")
}
