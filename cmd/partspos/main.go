// Package main запускает HTTP-сервер POS-системы магазина автозапчастей.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/partspos-system/internal/config"
	"github.com/mmeshcher/partspos-system/internal/handler"
	"github.com/mmeshcher/partspos-system/internal/middleware"
	"github.com/mmeshcher/partspos-system/internal/service"
	"github.com/mmeshcher/partspos-system/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	// .env удобен при локальном запуске, его отсутствие не ошибка.
	_ = godotenv.Load()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	inventory := store.NewInventory(store.SeedProducts())
	orders := store.NewOrders(store.SeedOrders())
	reportLog := store.NewReportLog(store.SeedSalesRecords(), store.SeedInventoryMovements(), store.SeedLowStockEvents())

	svc := service.NewService(inventory, orders, reportLog, logger, service.Options{
		LowStockThreshold: cfg.LowStockThreshold,
		ActionDelay:       cfg.ActionDelay,
	})

	authMiddleware := middleware.NewAuthMiddleware(cfg.AuthSecret, svc)
	h := handler.NewHandler(svc, logger, authMiddleware)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фонового мониторинга низких остатков
	g.Go(func() error {
		svc.StartLowStockMonitor(ctx, 30*time.Second)
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting partspos server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
