package handlers

import (
	"encoding/json"
	"net/http"

	"sportstroy-calc-backend/internal/domain"
	"sportstroy-calc-backend/internal/repo"
)

type pricesResponse struct {
	Items  []domain.PriceItem `json:"items"`
	Mode   string             `json:"mode"`
	Online bool               `json:"online"`
}

type savePricesRequest struct {
	Items []domain.PriceItem `json:"items"`
}

// HandlePrices обслуживает /api/{семейство}/prices.
//
// GET  -> плоский прайс семейства для админки (в порядке таблицы).
// POST -> полная замена прайса (только админ): таблица очищается и
//         заполняется присланными позициями.
func (e *Env) HandlePrices(rep *repo.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if !e.requireAdmin(w, r) {
				return
			}
			e.writeJSON(w, pricesResponse{
				Items:  rep.AllPrices(),
				Mode:   rep.ModeString(),
				Online: rep.Online(),
			})

		case http.MethodPost:
			if !e.requireAdmin(w, r) {
				return
			}
			defer r.Body.Close()

			var req savePricesRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
				return
			}
			if len(req.Items) == 0 {
				http.Error(w, "items are required", http.StatusBadRequest)
				return
			}
			for _, it := range req.Items {
				if it.Category == "" || it.Subcategory == "" {
					http.Error(w, "category and subcategory are required", http.StatusBadRequest)
					return
				}
				if it.Price <= 0 {
					http.Error(w, "price must be > 0", http.StatusBadRequest)
					return
				}
			}

			// сохранение не может провалиться для вызывающего:
			// при сбое удалённого хранилища данные остаются локально
			_ = rep.Save(r.Context(), req.Items, rep.Coefficients(), rep.FixedValues())

			e.writeJSON(w, pricesResponse{
				Items:  rep.AllPrices(),
				Mode:   rep.ModeString(),
				Online: rep.Online(),
			})

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// HandleCoefficients обслуживает /api/{семейство}/coefficients.
func (e *Env) HandleCoefficients(rep *repo.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if !e.requireAdmin(w, r) {
				return
			}
			e.writeJSON(w, rep.Coefficients())

		case http.MethodPost:
			if !e.requireAdmin(w, r) {
				return
			}
			defer r.Body.Close()

			var c domain.Coefficients
			if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
				http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
				return
			}
			if c.Dealer <= 0 || c.Wholesale <= 0 || c.Estimate <= 0 {
				http.Error(w, "coefficients must be > 0", http.StatusBadRequest)
				return
			}

			_ = rep.Save(r.Context(), rep.AllPrices(), c, rep.FixedValues())
			e.writeJSON(w, rep.Coefficients())

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// HandleFixedValues обслуживает /api/usp-round/fixed: масса и объём
// элементов, не зависящих от геометрии.
func (e *Env) HandleFixedValues(rep *repo.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if !e.requireAdmin(w, r) {
				return
			}
			e.writeJSON(w, rep.FixedValues())

		case http.MethodPost:
			if !e.requireAdmin(w, r) {
				return
			}
			defer r.Body.Close()

			var fv map[string]domain.FixedValue
			if err := json.NewDecoder(r.Body).Decode(&fv); err != nil {
				http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
				return
			}
			if len(fv) == 0 {
				http.Error(w, "fixed values are required", http.StatusBadRequest)
				return
			}

			_ = rep.Save(r.Context(), rep.AllPrices(), rep.Coefficients(), fv)
			e.writeJSON(w, rep.FixedValues())

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// HandleReset обслуживает POST /api/{семейство}/reset: возврат к дефолтам
// из кода с локальным сохранением, без пуша в общую базу.
func (e *Env) HandleReset(rep *repo.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !e.requireAdmin(w, r) {
			return
		}

		rep.ResetToDefaults()
		e.writeJSON(w, pricesResponse{
			Items:  rep.AllPrices(),
			Mode:   rep.ModeString(),
			Online: rep.Online(),
		})
	}
}

type modeResponse struct {
	Mode   string `json:"mode"`
	Online bool   `json:"online"`
}

// HandleMode обслуживает GET /api/{семейство}/mode.
func (e *Env) HandleMode(rep *repo.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		e.writeJSON(w, modeResponse{Mode: rep.ModeString(), Online: rep.Online()})
	}
}

// HandleModeAll обслуживает GET /api/mode — сводный режим по всем семействам.
func (e *Env) HandleModeAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	e.writeJSON(w, modeResponse{Mode: e.Repos.ModeString(), Online: e.Repos.Online()})
}
