package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	notifhandler "github.com/ns-platform/notification-service/internal/api/handlers/notification"
	"github.com/ns-platform/notification-service/internal/api/router"
	"github.com/ns-platform/notification-service/internal/api/server"
	"github.com/ns-platform/notification-service/internal/channel"
	"github.com/ns-platform/notification-service/internal/config"
	"github.com/ns-platform/notification-service/internal/dispatch"
	"github.com/ns-platform/notification-service/internal/model"
	"github.com/ns-platform/notification-service/internal/rabbitmq"
	"github.com/ns-platform/notification-service/internal/rabbitmq/queue"
	notifrepo "github.com/ns-platform/notification-service/internal/repository/notification"
	notifsvc "github.com/ns-platform/notification-service/internal/service/notification"
	"github.com/ns-platform/notification-service/internal/worker"
	"github.com/ns-platform/notification-service/pkg/email"
	"github.com/ns-platform/notification-service/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(ctx, cfg.RabbitMQ.URL(), cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNotificationQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.Mongo.URI).
			SetConnectTimeout(cfg.Mongo.ConnectTimeout),
	)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	if err := client.Ping(pingCtx, nil); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}
	cancelPing()

	repo := notifrepo.NewRepository(client.Database(cfg.Mongo.Database))

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	smsClient := sms.NewClient(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.From)

	dispatcher := dispatch.New(map[model.Type]dispatch.Sender{
		model.TypeEmail: channel.NewEmailSender(emailClient),
		model.TypeSMS:   channel.NewSMSSender(smsClient),
		model.TypeInApp: channel.NewInAppSender(repo),
	})

	service := notifsvc.NewService(repo, q, rdb)
	handler := notifhandler.NewHandler(service, val, cfg)

	notifier := worker.NewNotifier(q, dispatcher, service)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)
	}()

	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// Let in-flight handlers finish before closing the broker channel.
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}

	if err := client.Disconnect(context.Background()); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to disconnect from mongodb")
	}
}
