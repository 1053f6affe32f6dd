package handlers

import (
	"encoding/json"
	"net/http"

	"sportstroy-calc-backend/internal/domain"
)

type CoverageCalcRequest struct {
	Material    string  `json:"material"`
	ThicknessMm float64 `json:"thicknessMm"`
	// Составная маркировка толщины (например "10+10" для двухслойного ЕПДМ);
	// если задана, числовая толщина игнорируется.
	Thickness string  `json:"thickness"`
	Area      float64 `json:"area"`
	Region    string  `json:"region"`
}

// POST /api/coverage/calc
func (e *Env) HandleCoverageCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req CoverageCalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	item := domain.NewCoverageItem(e.Repos.Coverage)
	item.SetMaterial(req.Material)
	if req.Thickness != "" {
		item.SetThickness(domain.LabelThickness(req.Thickness))
	} else {
		item.SetThickness(domain.NumericThickness(req.ThicknessMm))
	}
	item.SetArea(req.Area)
	item.SetRegion(req.Region)
	item.Recompute()

	calcTotal.WithLabelValues("coverage").Inc()
	e.writeJSON(w, item.Result())
}

type HockeyCalcRequest struct {
	Width          float64 `json:"width"`
	Length         float64 `json:"length"`
	Radius         float64 `json:"radius"`
	GlassThickness string  `json:"glassThickness"` // "5мм" / "7мм"
	NetHeight      string  `json:"netHeight"`      // "1,5м" / "2м"
}

type hockeyCalcResponse struct {
	Results []domain.HockeyResult `json:"results"`
}

// POST /api/hockey/calc — все семь вариантов комплектации разом.
func (e *Env) HandleHockeyCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req HockeyCalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Width < 0 || req.Length < 0 || req.Radius < 0 {
		http.Error(w, "width, length, radius must be >= 0", http.StatusBadRequest)
		return
	}

	item := domain.NewHockeyItem(e.Repos.Hockey)
	item.SetWidth(req.Width)
	item.SetLength(req.Length)
	item.SetRadius(req.Radius)
	item.SetGlassThickness(req.GlassThickness)
	item.SetNetHeight(req.NetHeight)
	item.Recompute()

	calcTotal.WithLabelValues("hockey").Inc()
	e.writeJSON(w, hockeyCalcResponse{Results: item.Results()})
}

type USPCalcRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height string  `json:"height"` // "3м" / "4м"
	Column string  `json:"column"` // "60х60" / "80х80"
}

type uspCalcResponse struct {
	Results []domain.USPResult `json:"results"`
}

// POST /api/usp/calc — варианты "Без ворот" и "С воротами".
func (e *Env) HandleUSPCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req USPCalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Length < 0 || req.Width < 0 {
		http.Error(w, "length and width must be >= 0", http.StatusBadRequest)
		return
	}

	item := domain.NewUSPItem(e.Repos.USP)
	item.SetLength(req.Length)
	item.SetWidth(req.Width)
	item.SetHeight(req.Height)
	item.SetColumn(req.Column)
	item.Recompute()

	calcTotal.WithLabelValues("usp").Inc()
	e.writeJSON(w, uspCalcResponse{Results: item.Results()})
}

type USPRoundCalcRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

type uspRoundCalcResponse struct {
	Results []domain.USPRoundResult `json:"results"`
}

// POST /api/usp-round/calc — четыре комплектации по геометрии плюс
// фиксированные позиции.
func (e *Env) HandleUSPRoundCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req USPRoundCalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Length < 0 || req.Width < 0 {
		http.Error(w, "length and width must be >= 0", http.StatusBadRequest)
		return
	}

	item := domain.NewUSPRoundItem(e.Repos.USPRound)
	item.SetLength(req.Length)
	item.SetWidth(req.Width)
	item.Recompute()

	calcTotal.WithLabelValues("usp_round").Inc()
	e.writeJSON(w, uspRoundCalcResponse{Results: item.Results()})
}
