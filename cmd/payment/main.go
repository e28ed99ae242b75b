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
	gateway "github.com/pocketpay/pocketpay/services/payment/gateway/http"
	"github.com/pocketpay/pocketpay/services/payment/handler"
	"github.com/pocketpay/pocketpay/services/payment/repository"
	"github.com/pocketpay/pocketpay/services/payment/usecase"
)

const serviceName = "payment-service"

func main() {
	cfg := config.InitConfig("config/payment.env")

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

	paymentRepo := repository.NewPaymentRepo(cfg, pgClient.GetDB())
	paymentGW := gateway.NewPaymentGW(cfg)
	paymentUC := usecase.NewPaymentUC(cfg, paymentRepo, paymentGW)
	paymentHandler := handler.NewPaymentHandler(paymentUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName)
	paymentHandler.RegisterRoutes(e, cfg)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
