// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibook/config"
	"medibook/database"
	bookingRepo "medibook/database/repository/booking"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/report"
	"medibook/services/user"
	"medibook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	mongoClient, err := database.Connect(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	logger.Info("Connected to MongoDB")

	utils.InitAuthCache()
	sessions := utils.NewRedisSessionStore(utils.GetAuthCacheClient())
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	db := mongoClient.Database(config.AppConfig.DatabaseName)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:     users,
		Sessions: sessions,
		TokenTTL: time.Duration(config.AppConfig.TokenTTLMinutes) * time.Minute,
	}
	reportService := &report.DefaultReportService{
		Repo: bookings,
	}

	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(reportService)

	routes.RegisterRoutes(router, userHandler, adminHandler, sessions)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server running", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := database.Disconnect(context.Background(), mongoClient); err != nil {
		logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}
	logger.Info("Server exited")
}
