package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShadowMirage/Freight-Management/config"
	"github.com/ShadowMirage/Freight-Management/internal/bootstrap"
	"github.com/ShadowMirage/Freight-Management/internal/cache"
	"github.com/ShadowMirage/Freight-Management/internal/kafka"
	"github.com/ShadowMirage/Freight-Management/internal/repository"
	"github.com/ShadowMirage/Freight-Management/internal/service/booking"
	"github.com/ShadowMirage/Freight-Management/internal/service/loads"
	"github.com/ShadowMirage/Freight-Management/internal/service/matching"
	"github.com/ShadowMirage/Freight-Management/internal/service/trucks"
	"github.com/ShadowMirage/Freight-Management/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Booking.TrucksCacheTTLSeconds)*time.Second,
		time.Duration(cfg.Booking.PendingMatchTTLMinutes)*time.Minute)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	truckRepo := repository.NewTruckRepository(pool)
	loadRepo := repository.NewLoadRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	bookingService := booking.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingEventsTopic,
		time.Duration(cfg.Booking.PaymentWindowMinutes)*time.Minute,
		cfg.Payments.BaseURL,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	svc := bootstrap.Services{
		Trucks:   trucks.NewTruckService(truckRepo, redisCache),
		Loads:    loads.NewLoadService(loadRepo),
		Bookings: bookingService,
		Matching: matching.NewService(truckRepo, loadRepo, redisCache, cfg.Booking.MatchLimit),
		Users:    users.NewUserService(userRepo),
	}

	if err := bootstrap.Run(ctx, cfg, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
