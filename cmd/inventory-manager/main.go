package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/inventory-manager/internal/config"
	httpAPI "github.com/iyhunko/inventory-manager/internal/http"
	"github.com/iyhunko/inventory-manager/internal/http/controller"
	"github.com/iyhunko/inventory-manager/internal/logger"
	"github.com/iyhunko/inventory-manager/internal/metrics"
	"github.com/iyhunko/inventory-manager/internal/model"
	"github.com/iyhunko/inventory-manager/internal/repository/memory"
	"github.com/iyhunko/inventory-manager/internal/service"
	sqspkg "github.com/iyhunko/inventory-manager/internal/sqs"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var seed []model.Product
	if conf.SeedSampleProducts {
		seed = model.SampleProducts()
	}
	productRepository := memory.NewProductRepository(seed)

	// Notifications are optional: without a queue URL the manager publishes nothing
	var publisher service.EventPublisher
	if conf.AWS.NotificationsEnabled() {
		sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
		handleErr("creating SQS client", err)

		outboxWorker := service.NewOutboxWorker(sqspkg.NewPublisher(sqsClient, conf.AWS.SQSQueueURL), service.DefaultOutboxSize)
		go outboxWorker.Start(ctx)
		publisher = outboxWorker
	}

	manager := service.NewProductManager(productRepository, publisher,
		service.WithSearchDebounce(conf.Search.Debounce),
	)
	defer manager.Close()

	ctr := controller.New(conf)
	managerCtr := controller.NewManagerController(manager)
	httpHandler := httpAPI.InitRouter(gin.New(), ctr, managerCtr)

	httpServer := &http.Server{
		Addr:              ":" + conf.HTTPServer.Port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("HTTP server starting", slog.String("port", conf.HTTPServer.Port), slog.Int("products", len(seed)))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			handleErr("listening to HTTP requests", err)
		}
	}()

	metrics.StartMetricsServer(ctx, conf)

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to stop HTTP server", slog.Any("err", err))
	}
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Printf("error while %s: %v", msg, err)
		os.Exit(1)
	}
}
