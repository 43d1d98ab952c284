package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iyhunko/inventory-manager/internal/config"
	"github.com/iyhunko/inventory-manager/internal/logger"
	sqspkg "github.com/iyhunko/inventory-manager/internal/sqs"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)
	handleErr("validating AWS config", conf.ValidateNotifications())

	logger.InitJSONLogger(conf.DebugMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqsClient, err := sqspkg.NewClient(ctx, conf.AWS)
	handleErr("creating SQS client", err)

	consumer := sqspkg.NewConsumer(sqsClient, conf.AWS.SQSQueueURL, sqspkg.LogHandler)

	slog.Info("Notification service started. Listening for messages...", slog.String("queue_url", conf.AWS.SQSQueueURL))
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Consumer error", slog.Any("err", err))
	}
	slog.Info("Shutting down gracefully...")
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Printf("error while %s: %v", msg, err)
		os.Exit(1)
	}
}
