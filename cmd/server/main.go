package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/agendly/booking-system/internal/api"
	"github.com/agendly/booking-system/internal/infrastructure/config"
	mongodb "github.com/agendly/booking-system/internal/infrastructure/db/mongo"
	"github.com/agendly/booking-system/internal/infrastructure/db/mysql"
	redisdb "github.com/agendly/booking-system/internal/infrastructure/db/redis"
	"github.com/agendly/booking-system/pkg/logger"
)

// @title           Agendly Booking API
// @version         1.0
// @description     Appointment booking service. Users book hour-slots with providers; providers read their daily schedule and notification feed.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("mysql migration failed")
	}
	log.Info().Msg("connected to mysql")

	mongoClient, mongoDB, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}
	log.Info().Msg("connected to mongodb")

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

	e := api.NewRouter(cfg, db, mongoDB, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
