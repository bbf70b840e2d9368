package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airadmin/api"
	"github.com/Domenick1991/airadmin/config"
	"github.com/Domenick1991/airadmin/internal/bootstrap"
	"github.com/Domenick1991/airadmin/internal/cache"
	"github.com/Domenick1991/airadmin/internal/kafka"
	"github.com/Domenick1991/airadmin/internal/logging"
	"github.com/Domenick1991/airadmin/internal/metrics"
	"github.com/Domenick1991/airadmin/internal/repository"
	"github.com/Domenick1991/airadmin/internal/service/booking"
	"github.com/Domenick1991/airadmin/internal/service/customers"
	"github.com/Domenick1991/airadmin/internal/service/flights"
	"github.com/Domenick1991/airadmin/internal/service/reports"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalw("connect postgres", "error", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	reg := metrics.NewRegistry()

	flightRepo := repository.NewFlightRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	customerService := customers.NewCustomerService(customerRepo)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		customerRepo,
		logger,
		booking.WithProducer(producer, cfg.Kafka.BookingTopic),
		booking.WithMetrics(reg),
	)
	reportService := reports.NewReportService(flightRepo, customerRepo, bookingRepo)

	logger.Infow("starting http server", "address", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, api.RouterDeps{
		Flights:   flightService,
		Customers: customerService,
		Bookings:  bookingService,
		Reports:   reportService,
		Metrics:   reg,
		Log:       logger,
	}); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}
