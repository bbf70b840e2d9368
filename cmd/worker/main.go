package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airadmin/config"
	"github.com/Domenick1991/airadmin/internal/email"
	"github.com/Domenick1991/airadmin/internal/kafka"
	"github.com/Domenick1991/airadmin/internal/logging"
	"github.com/joho/godotenv"
)

// The worker consumes booking events and sends notification emails, keeping
// SMTP latency out of the request path.
func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.Init(cfg.AppEnv)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic, logger)
	defer consumer.Close()

	sender := email.NewSender(cfg.SMTP)

	logger.Infow("notification worker starting", "topic", cfg.Kafka.BookingTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if err := sender.Send(event); err != nil {
			// Notification failures are logged, not retried: the booking
			// itself is already committed.
			logger.Warnw("send notification", "reference", event.Reference, "error", err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.Fatalw("consumer stopped", "error", err)
	}
	logger.Infow("notification worker stopped")
}
