package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	messagehandler "github.com/aletbay/summit-concierge/internal/api/handlers/message"
	reminderhandler "github.com/aletbay/summit-concierge/internal/api/handlers/reminder"
	"github.com/aletbay/summit-concierge/internal/api/router"
	"github.com/aletbay/summit-concierge/internal/api/server"
	"github.com/aletbay/summit-concierge/internal/assistant"
	"github.com/aletbay/summit-concierge/internal/config"
	aiclient "github.com/aletbay/summit-concierge/internal/openai"
	reminderrepo "github.com/aletbay/summit-concierge/internal/repository/reminder"
	"github.com/aletbay/summit-concierge/internal/service/eventinfo"
	remindersvc "github.com/aletbay/summit-concierge/internal/service/reminder"
	rabbitsink "github.com/aletbay/summit-concierge/internal/sink/rabbitmq"
	"github.com/aletbay/summit-concierge/internal/timeparse"
	"github.com/aletbay/summit-concierge/internal/worker"
	"github.com/aletbay/summit-concierge/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	eventLoc, err := time.LoadLocation(cfg.Event.Timezone)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Str("timezone", cfg.Event.Timezone).Msg("failed to load event timezone")
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	gatewaySink, err := rabbitsink.NewSink(ch, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create gateway sink")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migrations.Up(ctx, db.Master); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	repo := reminderrepo.NewRepository(db)
	resolver := timeparse.NewResolver()
	reminders := remindersvc.NewService(repo, resolver, rdb, eventLoc, time.Now)

	info, err := eventinfo.NewService(cfg.Event, eventLoc)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to build event info")
	}

	ai := aiclient.New(cfg.OpenAI.APIKey)
	conversations := assistant.New(reminders, info, ai, eventLoc)

	dispatcher := worker.NewDispatcher(repo, cfg.Dispatcher.Interval, time.Now)
	dispatcher.Start(gatewaySink)

	msgHandler := messagehandler.NewHandler(conversations, val, cfg)
	remHandler := reminderhandler.NewHandler(reminders, val, cfg)

	r := router.New(msgHandler, remHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	dispatcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
