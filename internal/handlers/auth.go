package handlers

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// POST /api/login — проверка пары id/пароль по bcrypt-хешу из БД.
// Без БД вход невозможен: демо-пользователи паролей не имеют.
func (e *Env) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Password == "" {
		http.Error(w, "id and password are required", http.StatusBadRequest)
		return
	}
	if e.DB == nil {
		http.Error(w, "login requires database", http.StatusServiceUnavailable)
		return
	}

	ok, err := e.CheckUserPassword(r.Context(), req.ID, req.Password)
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	u, err := e.GetUserByID(r.Context(), req.ID)
	if err != nil || u == nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	e.writeJSON(w, u)
}
