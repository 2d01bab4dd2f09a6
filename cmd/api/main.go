package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/client"
	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log, cfg.Environment.Name)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	db, err := client.OpenDB(cfg.Database)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	if cfg.Database.Seed {
		if err := userRepo.Seed(context.Background()); err != nil {
			logger.Fatal("seed users failed", zap.Error(err))
		}
		if err := productRepo.Seed(context.Background()); err != nil {
			logger.Fatal("seed products failed", zap.Error(err))
		}
	}

	snapClient := client.NewSnapClient(&cfg.Midtrans)

	orderService := service.NewOrderService(db, logger, orderRepo, userRepo)
	dashboardService := service.NewDashboardService(logger, productRepo, orderRepo, userRepo)
	paymentService := service.NewPaymentService(logger, snapClient, cfg.FrontendURL)
	productService := service.NewProductService(productRepo)
	userService := service.NewUserService(userRepo, cfg.Auth)

	srv := server.NewServer(
		logger,
		cfg.Auth.JWTSecret,
		orderService,
		dashboardService,
		paymentService,
		productService,
		userService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

func newLogger(cfg config.Log, environment string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if environment == "development" || cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err == nil {
		zc.Level = level
	}

	return zc.Build()
}
