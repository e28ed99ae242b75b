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
	"github.com/pocketpay/pocketpay/services/wallet/handler"
	"github.com/pocketpay/pocketpay/services/wallet/repository"
	"github.com/pocketpay/pocketpay/services/wallet/usecase"
)

const serviceName = "wallet-service"

func main() {
	cfg := config.InitConfig("config/wallet.env")

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

	// Balance reads survive without Redis; the repository treats a nil
	// client as a permanent cache miss.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Warn("Failed to connect to redis, balance cache disabled", logger.Err(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	walletRepo := repository.NewWalletRepo(cfg, pgClient.GetDB(), redisClient)
	walletUC := usecase.NewWalletUC(cfg, walletRepo)
	walletHandler := handler.NewWalletHandler(walletUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)
	walletHandler.RegisterRoutes(e, cfg)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
