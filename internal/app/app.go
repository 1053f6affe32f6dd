package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"sportstroy-calc-backend/internal/config"
	"sportstroy-calc-backend/internal/handlers"
	"sportstroy-calc-backend/internal/repo"
	"sportstroy-calc-backend/internal/store"
)

type App struct {
	mux *http.ServeMux
	Env *handlers.Env
}

func New(db *sql.DB, cfg config.Config, log *slog.Logger) *App {
	mux := http.NewServeMux()
	ctx := context.Background()

	local := store.NewLocal(cfg.Storage.DataDir)

	var remote store.Store
	if db != nil {
		remote = store.NewPostgres(db)
	}

	repos := repo.NewSet(local, remote, cfg.Storage.RemoteTimeout, log)

	// Политика "один раз громко, дальше оффлайн": ошибка облачной
	// инициализации логируется, работа продолжается на локальных данных.
	if remote != nil {
		if err := repos.InitializeWithCloud(ctx); err != nil {
			log.Error("cloud init failed, continuing offline", "err", err)
		}
	} else {
		if err := repos.InitializeLocal(); err != nil {
			log.Error("local init failed, using in-memory defaults", "err", err)
		}
	}
	log.Info("repositories initialized", "mode", repos.ModeString())

	// Демо-пользователи (admin / manager1), если таблица users пуста
	if err := seedUsersIfEmpty(ctx, db); err != nil {
		log.Error("seed users", "err", err)
	}

	users, err := loadUsers(ctx, db)
	if err != nil {
		log.Error("load users", "err", err)
	}
	if len(users) == 0 {
		users = defaultUsers()
	}

	env := &handlers.Env{
		Log:   log,
		DB:    db,
		Repos: repos,
		Users: users,
	}

	registerRoutes(mux, env, cfg.Metrics.Enabled)

	return &App{
		mux: mux,
		Env: env,
	}
}

func (a *App) Router() *http.ServeMux {
	return a.mux
}
