package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/agendly/booking-system/internal/infrastructure/config"
	redisdb "github.com/agendly/booking-system/internal/infrastructure/db/redis"
	"github.com/agendly/booking-system/internal/infrastructure/mail"
	"github.com/agendly/booking-system/internal/infrastructure/queue"
	"github.com/agendly/booking-system/pkg/logger"
)

// mailworker drains the cancellation mail queue and delivers over SMTP.
// Run it as a separate process so a slow mail server never blocks the API.
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Msg("connected to redis")

	source := queue.NewRedisJobSource(rdb)
	sent := redisdb.NewSentMailStore(rdb)
	sender := mail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)

	consumer := queue.NewMailConsumer(source, sender, sent, log)

	log.Info().Msg("mail worker started")
	consumer.Run(ctx)
	log.Info().Msg("mail worker stopped")
}
