package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arkv-lms/library-service/config"
	"github.com/arkv-lms/library-service/internal/handler"
	"github.com/arkv-lms/library-service/internal/repository"
	"github.com/arkv-lms/library-service/internal/server"
	"github.com/arkv-lms/library-service/internal/service"
	"github.com/arkv-lms/library-service/migrations"
	"github.com/arkv-lms/library-service/pkg/kafka"
	"github.com/arkv-lms/library-service/pkg/logger"
	"github.com/arkv-lms/library-service/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "arkv")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	notifier := service.NewNotifier(producer, log)

	authSvc := service.NewAuthService(repo, log, cfg.Auth.TokenTTL, cfg.Auth.RoleTimeout)
	catalogSvc := service.NewCatalogService(repo, notifier, log)
	reservationSvc := service.NewReservationService(repo, notifier, log)

	hub := handler.NewHub()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ChangesConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	consumeCtx, stopConsume := context.WithCancel(context.Background())
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(hub, log), log, kafka.ChangesTopic)

	h := handler.New(authSvc, catalogSvc, reservationSvc, hub, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
