package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"sportstroy-calc-backend/internal/domain"
	"sportstroy-calc-backend/internal/repo"
)

// Env хранит зависимости для хендлеров.
type Env struct {
	Log *slog.Logger
	DB  *sql.DB

	Repos *repo.Set
	Users []*domain.User
}

// writeJSON — простой helper для JSON-ответов
func (e *Env) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CurrentUser — простой резолвер "текущего пользователя".
// Для демо берём query-параметр ?as=admin|manager1, иначе admin.
func (e *Env) CurrentUser(r *http.Request) *domain.User {
	as := r.URL.Query().Get("as")
	if as == "" {
		as = "admin"
	}

	for _, u := range e.Users {
		if u.ID == as {
			return u
		}
	}

	if len(e.Users) > 0 {
		return e.Users[0]
	}

	return nil
}

// requireAdmin проверяет права на админские операции (правка прайсов).
// Возвращает false, если ответ уже отправлен.
func (e *Env) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	u := e.CurrentUser(r)
	if !u.IsAdmin() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}
