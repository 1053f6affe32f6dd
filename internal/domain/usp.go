package domain

import (
	"fmt"
	"sync"
)

// Варианты расчёта УСП на квадратной трубе.
const (
	USPWithoutGates = "Без ворот"
	USPWithGates    = "С воротами"
)

var uspCalcTypes = []string{USPWithoutGates, USPWithGates}

// USPResult — один вариант ограждения универсальной спортивной площадки.
type USPResult struct {
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Wholesale float64 `json:"wholesalePrice"`
	Dealer    float64 `json:"dealerPrice"`
	Area      float64 `json:"area"`
	Mass      float64 `json:"mass"`
	Volume    float64 `json:"volume"`
	Summary   string  `json:"summary"`
}

// USPItem — расчёт ограждения УСП на квадратной трубе.
type USPItem struct {
	mu  sync.Mutex
	src PriceSource

	length float64
	width  float64
	height string // "3м" / "4м"
	column string // "60х60" / "80х80"

	results []USPResult
}

func NewUSPItem(src PriceSource) *USPItem {
	it := &USPItem{src: src}
	it.results = make([]USPResult, len(uspCalcTypes))
	for i, name := range uspCalcTypes {
		it.results[i] = USPResult{Name: name}
	}
	it.Recompute()
	return it
}

func (it *USPItem) SetLength(l float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.length = l
}

func (it *USPItem) SetWidth(w float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.width = w
}

func (it *USPItem) SetHeight(h string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.height = h
}

func (it *USPItem) SetColumn(c string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.column = c
}

func (it *USPItem) Results() []USPResult {
	it.mu.Lock()
	defer it.mu.Unlock()
	out := make([]USPResult, len(it.results))
	copy(out, it.results)
	return out
}

func (it *USPItem) Result(name string) (USPResult, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	for _, r := range it.results {
		if r.Name == name {
			return r, true
		}
	}
	return USPResult{}, false
}

// Perimeter — периметр площадки, пересчитывается от сторон.
func (it *USPItem) Perimeter() float64 {
	it.mu.Lock()
	defer it.mu.Unlock()
	return 2 * (it.length + it.width)
}

func (it *USPItem) Recompute() {
	it.mu.Lock()
	defer it.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			for i := range it.results {
				it.results[i] = USPResult{Name: it.results[i].Name}
			}
		}
	}()
	it.compute()
}

func uspHeightMeters(height string) float64 {
	if height == "4м" {
		return 4
	}
	return 3
}

// uspUnitPriceDefault — цена м² по умолчанию, если позиции нет в прайсе.
func uspUnitPriceDefault(height, column string) float64 {
	switch {
	case height == "3м" && column == "80х80":
		return 2050
	case height == "4м" && column == "80х80":
		return 2350
	case height == "4м" && column == "60х60":
		return 2100
	default: // 3м, 60х60
		return 1850
	}
}

// uspMassPerM2 — масса квадратного метра ограждения по высоте и столбу.
func uspMassPerM2(height, column string) float64 {
	switch {
	case height == "3м" && column == "80х80":
		return 15
	case height == "4м" && column == "80х80":
		return 16
	case height == "4м" && column == "60х60":
		return 14.5
	default: // 3м, 60х60
		return 13
	}
}

func (it *USPItem) compute() {
	c := it.src.Coefficients()

	h := uspHeightMeters(it.height)
	unit := it.src.Price("Столб "+it.column, it.height, uspUnitPriceDefault(it.height, it.column))
	gatePrice := it.src.Price(CategoryGates, "Распашные", 28000)
	massPerM2 := uspMassPerM2(it.height, it.column)

	perimeter := 2 * (it.length + it.width)
	baseArea := perimeter * h

	for i := range it.results {
		var r USPResult
		r.Name = it.results[i].Name

		switch r.Name {
		case USPWithoutGates:
			r.Cost = perimeter * h * unit
			r.Area = baseArea
			r.Mass = baseArea * massPerM2
			r.Volume = baseArea * 0.06 * 1.2
		case USPWithGates:
			// проём ворот вычитается из погонной длины, сами ворота — фикс-цена
			linear := perimeter - 3
			if linear < 0 {
				linear = 0
			}
			r.Cost = linear*h*unit + gatePrice
			// базой остаётся площадь без ворот, сверху — фиксированные добавки
			r.Area = baseArea + 14
			r.Mass = baseArea*massPerM2 + 300
			r.Volume = baseArea*0.06*1.2 + 2
		}

		// опт — наценка, дилер — деление от опта (дилер всегда дешевле опта)
		r.Wholesale = r.Cost * c.Wholesale
		r.Dealer = r.Wholesale / c.Dealer

		r.Summary = fmt.Sprintf("УСП %s, столб %s, %s: %s, %s м², %s кг",
			it.height, it.column, r.Name, rub(r.Cost), num(r.Area), num(r.Mass))

		it.results[i] = r
	}
}
