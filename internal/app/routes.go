package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sportstroy-calc-backend/internal/handlers"
)

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func registerRoutes(mux *http.ServeMux, env *handlers.Env, exposeMetrics bool) {
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, withCORS(h))
	}

	// --- расчёты ---
	api("/api/coverage/calc", env.HandleCoverageCalc)
	api("/api/hockey/calc", env.HandleHockeyCalc)
	api("/api/usp/calc", env.HandleUSPCalc)
	api("/api/usp-round/calc", env.HandleUSPRoundCalc)

	// --- админка прайсов, по семействам ---
	api("/api/coverage/prices", env.HandlePrices(env.Repos.Coverage))
	api("/api/coverage/reset", env.HandleReset(env.Repos.Coverage))
	api("/api/coverage/mode", env.HandleMode(env.Repos.Coverage))

	api("/api/hockey/prices", env.HandlePrices(env.Repos.Hockey))
	api("/api/hockey/coefficients", env.HandleCoefficients(env.Repos.Hockey))
	api("/api/hockey/reset", env.HandleReset(env.Repos.Hockey))
	api("/api/hockey/mode", env.HandleMode(env.Repos.Hockey))

	api("/api/usp/prices", env.HandlePrices(env.Repos.USP))
	api("/api/usp/coefficients", env.HandleCoefficients(env.Repos.USP))
	api("/api/usp/reset", env.HandleReset(env.Repos.USP))
	api("/api/usp/mode", env.HandleMode(env.Repos.USP))

	api("/api/usp-round/prices", env.HandlePrices(env.Repos.USPRound))
	api("/api/usp-round/coefficients", env.HandleCoefficients(env.Repos.USPRound))
	api("/api/usp-round/fixed", env.HandleFixedValues(env.Repos.USPRound))
	api("/api/usp-round/reset", env.HandleReset(env.Repos.USPRound))
	api("/api/usp-round/mode", env.HandleMode(env.Repos.USPRound))

	// сводный режим
	api("/api/mode", env.HandleModeAll)

	api("/api/login", env.HandleLogin)

	// админские пользователи и выгрузка прайсов
	api("/api/admin/users", env.HandleAdminUsers)
	api("/api/admin/users/password", env.HandleAdminUserPassword)
	api("/api/admin/prices/export", env.HandleExportPrices)

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}
}
