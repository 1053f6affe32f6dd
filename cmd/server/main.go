package main

import (
	"context"
	"database/sql"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"sportstroy-calc-backend/internal/app"
	"sportstroy-calc-backend/internal/config"
	"sportstroy-calc-backend/internal/infra/logger"
)

func runMigrations(db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		stdlog.Fatalf("load config %s: %v", cfgPath, err)
	}

	log := logger.New(cfg.App.Env)

	// БД не обязательна: без неё сервис работает в оффлайн-режиме
	// на локальных файлах с ценами.
	var db *sql.DB
	switch {
	case cfg.Postgres.DSN != "":
		db, err = sql.Open("postgres", cfg.Postgres.DSN)
		if err == nil {
			err = db.Ping()
		}
		if err != nil {
			log.Warn("db unavailable, starting offline", "err", err)
			db = nil
		}
	case os.Getenv("DATABASE_URL") != "":
		db, err = app.OpenDBFromEnv()
		if err != nil {
			log.Warn("db unavailable, starting offline", "err", err)
			db = nil
		}
	}

	if db != nil {
		if err := runMigrations(db); err != nil {
			log.Error("migrations failed, starting offline", "err", err)
			db = nil
		} else {
			log.Info("migrations applied")
		}
	}

	a := app.New(db, cfg, log)

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: a.Router()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
