package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"contactbook/contact"
	"contactbook/database"
	"contactbook/httpserver"
	"contactbook/pkg/config"
	"contactbook/pkg/logger"
	"contactbook/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	boot := zap.Must(zap.NewProduction()).Sugar()

	cfg, err := config.LoadConfig()
	if err != nil {
		boot.Fatalw("cannot load config", "error", err)
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		boot.Fatalw("cannot init logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	if cfg.InsecureSecret() {
		log.Warnw("SECRET_KEY is not set, flash cookies are signed with the development key", "app_env", cfg.AppEnv)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalw("cannot open database", "driver", cfg.DB.Driver, "error", err)
	}

	applied, err := database.Migrate(db, cfg.DB.Driver)
	if err != nil {
		log.Fatalw("cannot initialize schema", "error", err)
	}
	log.Infow("schema ready", "applied_migrations", applied)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithContactService(contact.NewUsecase(database.NewContactRepository(db))),
	)
	if err != nil {
		log.Fatalw("cannot create server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server started", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("cannot shutdown server", "error", err)
	}
	log.Info("server stopped")
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	return database.NewConnection(database.Options{
		Driver:      cfg.DB.Driver,
		Path:        cfg.DB.Path,
		BusyTimeout: cfg.DB.BusyTimeout,
		DBName:      cfg.DB.Name,
		DBUser:      cfg.DB.User,
		Password:    cfg.DB.Pass,
		Host:        cfg.DB.Host,
		Port:        strconv.Itoa(cfg.DB.Port),
		SSLMode:     cfg.DB.EnableSSL,
	})
}
