package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/config"
	"github.com/pocketpay/pocketpay/internal/pkg/database"
	"github.com/pocketpay/pocketpay/internal/pkg/health"
	"github.com/pocketpay/pocketpay/internal/pkg/logger"
	"github.com/pocketpay/pocketpay/internal/pkg/middleware"
	"github.com/pocketpay/pocketpay/internal/pkg/server"
	"github.com/pocketpay/pocketpay/services/users/handler"
	"github.com/pocketpay/pocketpay/services/users/repository"
	"github.com/pocketpay/pocketpay/services/users/usecase"
)

const serviceName = "users-service"

func main() {
	cfg := config.InitConfig("config/users.env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger, serviceName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer pgClient.Close()

	userRepo := repository.NewUserRepo(cfg, pgClient.GetDB())
	userUC := usecase.NewUserUC(cfg, userRepo)
	userHandler := handler.NewUserHandler(userUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)
	userHandler.RegisterRoutes(e, cfg)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
