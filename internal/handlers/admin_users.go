package handlers

import (
	"encoding/json"
	"net/http"
)

type usersResponse struct {
	Items interface{} `json:"items"`
}

// GET /api/admin/users — список пользователей (только админ).
func (e *Env) HandleAdminUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !e.requireAdmin(w, r) {
		return
	}

	// если есть БД — читаем из неё, иначе отдаём загруженный при старте список
	if e.DB != nil {
		users, err := e.ListUsers(r.Context())
		if err != nil {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		e.writeJSON(w, usersResponse{Items: users})
		return
	}

	e.writeJSON(w, usersResponse{Items: e.Users})
}

type changePasswordRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// POST /api/admin/users/password — смена пароля пользователя (только админ).
func (e *Env) HandleAdminUserPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !e.requireAdmin(w, r) {
		return
	}
	defer r.Body.Close()

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.ID == "" || len(req.Password) < 6 {
		http.Error(w, "id and password (6+ chars) are required", http.StatusBadRequest)
		return
	}

	if err := e.SetUserPassword(r.Context(), req.ID, req.Password); err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
