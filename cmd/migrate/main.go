package main

import (
	"flag"
	"strconv"

	"contactbook/database"
	"contactbook/pkg/config"
	"contactbook/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "Revert all applied migrations")
	flag.Parse()

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

	db, err := database.NewConnection(database.Options{
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
	if err != nil {
		log.Fatalw("cannot connecting to db", "error", err)
	}

	if *down {
		total, err := database.Rollback(db, cfg.DB.Driver)
		if err != nil {
			log.Fatalw("cannot revert migrations", "error", err)
		}
		log.Infow("reverted migrations", "total", total)
		return
	}

	total, err := database.Migrate(db, cfg.DB.Driver)
	if err != nil {
		log.Fatalw("cannot execute migration", "error", err)
	}
	log.Infow("applied migrations", "total", total)
}
