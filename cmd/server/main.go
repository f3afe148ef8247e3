package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"garmentsync/internal/cache"
	"garmentsync/internal/commons"
	"garmentsync/internal/events"
	"garmentsync/internal/inbox"
	"garmentsync/internal/infrastructure/email"
	"garmentsync/internal/infrastructure/kafka"
	"garmentsync/internal/infrastructure/logger"
	"garmentsync/internal/infrastructure/storage"
	"garmentsync/internal/media"
	"garmentsync/internal/notification"
	"garmentsync/internal/order"
	"garmentsync/internal/server"
	"garmentsync/internal/stakeholder"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	cfg, err := commons.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	store, err := storage.Open(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("opening store", zap.Error(err))
	}
	defer store.Close()
	zapLogger.Info("store ready", zap.String("driver", cfg.Database.Driver))

	sender, err := email.New(cfg.Email, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating email sender", zap.Error(err))
	}
	dispatcher := notification.NewDispatcher(sender, zapLogger)
	templates := notification.Templates{AppName: cfg.App.Name, PublicURL: cfg.App.PublicURL}

	var orderCache cache.OrderCache = cache.Noop{}
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer client.Close()
		orderCache = cache.NewRedisOrderCache(client, cfg.Redis.TTL, zapLogger)
		zapLogger.Info("order cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Buffer, zapLogger)
		defer producer.Close()
		publisher = producer
		zapLogger.Info("activity events enabled", zap.String("topic", cfg.Kafka.Topic))
	}

	orders := order.NewModule(store, dispatcher, templates, publisher, orderCache, zapLogger)
	router := server.NewRouter(server.Controllers{
		Orders:        orders.Controller,
		Stakeholders:  stakeholder.NewModule(store, dispatcher, templates, orders.Activity, zapLogger),
		Media:         media.NewModule(cfg.App.SeedDemo, zapLogger),
		Notifications: inbox.NewModule(cfg.App.SeedDemo, dispatcher, templates, zapLogger),
	}, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}
