package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/technova/inventory-service/internal/config"
	"github.com/technova/inventory-service/internal/metrics"
	"github.com/technova/inventory-service/internal/scheduler"
	"github.com/technova/inventory-service/internal/server/handlers"
	"github.com/technova/inventory-service/internal/server/router"
	"github.com/technova/inventory-service/internal/store"
	"github.com/technova/inventory-service/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	m := metrics.New()

	inventory := store.NewInventoryStore()
	inventory.OnSizeChange(func(count int) {
		m.ItemCount.Set(float64(count))
	})
	seedInventory(inventory, baseLogger)

	itemsHandler := handlers.NewItemsHandler(inventory, m, baseLogger.Named("handlers.items"))
	engine := router.New(itemsHandler, m, baseLogger.Named("router"), cfg.Limits.MaxBodyBytes)

	sched := scheduler.NewScheduler(cfg.Snapshot.CronSchedule, inventory, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("host", cfg.Server.Host),
			zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func seedInventory(inventory *store.InventoryStore, log *zap.Logger) {
	seeds := []struct {
		name  string
		stock int
	}{
		{"Laptop", 10},
		{"Mouse", 50},
	}

	for _, seed := range seeds {
		item := inventory.Add(seed.name, seed.stock)
		log.Info("seeded item", zap.Int("id", item.ID), zap.String("name", item.Name))
	}
}
