package domain

import (
	"fmt"
	"math"
	"sync"
)

// Типы расчёта хоккейного корта. Порядок фиксированный: в нём же
// результаты отдаются наружу.
const (
	HockeyNoNet         = "Без защитной сетки"
	HockeyThrowZoneNet  = "С сеткой в зоне выбросов"
	HockeyPerimeterNet  = "С сеткой по периметру"
	HockeyThrowZoneOnly = "Сетка в зоне выбросов отдельно"
	HockeyPerimeterOnly = "Сетка по периметру отдельно"
	HockeyGate          = "Дополнительная калитка"
	HockeyTechGate      = "Дополнительные технические ворота"
)

var hockeyCalcTypes = []string{
	HockeyNoNet,
	HockeyThrowZoneNet,
	HockeyPerimeterNet,
	HockeyThrowZoneOnly,
	HockeyPerimeterOnly,
	HockeyGate,
	HockeyTechGate,
}

// HockeyResult — один вариант комплектации корта.
type HockeyResult struct {
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Dealer    float64 `json:"dealerPrice"`
	Wholesale float64 `json:"wholesalePrice"`
	Estimate  float64 `json:"estimatePrice"`
	Units     int     `json:"units"` // секции борта либо единицы сетки
	Mass      float64 `json:"mass"`
	Volume    float64 `json:"volume"`
	Summary   string  `json:"summary"`
}

// HockeyItem — расчёт хоккейного корта по габаритам площадки.
type HockeyItem struct {
	mu  sync.Mutex
	src PriceSource

	width          float64
	length         float64
	radius         float64
	glassThickness string // "5мм" / "7мм"
	netHeight      string // "1,5м" / "2м"

	results []HockeyResult
}

func NewHockeyItem(src PriceSource) *HockeyItem {
	it := &HockeyItem{src: src}
	it.results = make([]HockeyResult, len(hockeyCalcTypes))
	for i, name := range hockeyCalcTypes {
		it.results[i] = HockeyResult{Name: name}
	}
	it.Recompute()
	return it
}

func (it *HockeyItem) SetWidth(w float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.width = w
}

func (it *HockeyItem) SetLength(l float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.length = l
}

func (it *HockeyItem) SetRadius(r float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.radius = r
}

func (it *HockeyItem) SetGlassThickness(t string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.glassThickness = t
}

func (it *HockeyItem) SetNetHeight(h string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.netHeight = h
}

// Results возвращает все семь вариантов в фиксированном порядке.
func (it *HockeyItem) Results() []HockeyResult {
	it.mu.Lock()
	defer it.mu.Unlock()
	out := make([]HockeyResult, len(it.results))
	copy(out, it.results)
	return out
}

// Result возвращает вариант по имени типа расчёта.
func (it *HockeyItem) Result(name string) (HockeyResult, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	for _, r := range it.results {
		if r.Name == name {
			return r, true
		}
	}
	return HockeyResult{}, false
}

// Recompute пересчитывает все семь вариантов разом: они делят общую
// геометрию (количество секций), поэтому частичный пересчёт не имеет смысла.
func (it *HockeyItem) Recompute() {
	it.mu.Lock()
	defer it.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			for i := range it.results {
				it.results[i] = HockeyResult{Name: it.results[i].Name}
			}
		}
	}()
	it.compute()
}

// RadiusSections — количество радиусных секций по номинальному радиусу
// закругления. Радиус сравнивается с допуском 0.01, чтобы пережить
// плавающий ввод; незнакомый радиус считается как минимальный.
func RadiusSections(radius float64) int {
	table := []struct {
		radius   float64
		sections int
	}{
		{3.0, 12},
		{4.0, 16},
		{5.0, 16},
		{7.5, 24},
		{8.5, 28},
	}
	for _, e := range table {
		if math.Abs(radius-e.radius) < 0.01 {
			return e.sections
		}
	}
	return 12
}

// SideSections — количество прямых секций вдоль стороны площадки.
// Секции монтируются парами, поэтому прямой участок округляется вверх
// до чётного числа секций.
func SideSections(side, radius float64) int {
	run := side - 2*radius
	if run < 0 {
		run = 0
	}
	return int(math.Ceil(run/2)) * 2
}

func (it *HockeyItem) compute() {
	c := it.src.Coefficients()

	rs := RadiusSections(it.radius)
	ws := SideSections(it.width, it.radius)
	ls := SideSections(it.length, it.radius)
	total := ws + ls + rs

	glassPrice := it.src.Price(CategoryGlass, it.glassThickness, 15500)
	throwNetPrice := it.src.Price(CategoryThrowNet, it.netHeight, 4500)
	perimNetPrice := it.src.Price(CategoryPerimeterNet, it.netHeight, 4200)
	gatePrice := it.src.Price(CategoryGates, "Калитка", 35000)
	techGatePrice := it.src.Price(CategoryGates, "Технические ворота", 78000)

	glassMass := 35.0 // кг на секцию при стекле 5мм
	if it.glassThickness == "7мм" {
		glassMass = 36
	}
	const glassVolume = 0.16 // м³ на секцию

	netMass, netVolume := 22.0, 0.20 // единица сетки 1,5м
	if it.netHeight == "2м" {
		netMass, netVolume = 30, 0.25
	}

	// зона выбросов — торцы и закругления; по периметру — все секции
	throwUnits := ws + rs
	perimUnits := total

	// ворота считаются от периметра корта, а не от секций
	straight := 2*math.Max(0, it.width-2*it.radius) + 2*math.Max(0, it.length-2*it.radius)
	perimeter := math.Pi*2*it.radius + straight

	for i := range it.results {
		var r HockeyResult
		r.Name = it.results[i].Name

		switch r.Name {
		case HockeyNoNet:
			r.Units = total
			r.Cost = float64(total) * glassPrice
			r.Mass = float64(total) * glassMass
			r.Volume = float64(total) * glassVolume
		case HockeyThrowZoneNet:
			r.Units = total
			r.Cost = float64(total)*glassPrice + float64(throwUnits)*throwNetPrice
			r.Mass = float64(total)*glassMass + float64(throwUnits)*netMass
			r.Volume = float64(total)*glassVolume + float64(throwUnits)*netVolume
		case HockeyPerimeterNet:
			r.Units = total
			r.Cost = float64(total)*glassPrice + float64(perimUnits)*perimNetPrice
			r.Mass = float64(total)*glassMass + float64(perimUnits)*netMass
			r.Volume = float64(total)*glassVolume + float64(perimUnits)*netVolume
		case HockeyThrowZoneOnly:
			r.Units = throwUnits
			r.Cost = float64(throwUnits) * throwNetPrice
			r.Mass = float64(throwUnits) * netMass
			r.Volume = float64(throwUnits) * netVolume
		case HockeyPerimeterOnly:
			r.Units = perimUnits
			r.Cost = float64(perimUnits) * perimNetPrice
			r.Mass = float64(perimUnits) * netMass
			r.Volume = float64(perimUnits) * netVolume
		case HockeyGate:
			r.Units = 1
			r.Cost = gatePrice
			r.Mass = perimeter * 1.5 * 9.5
			// у калитки объём с запасом на раму
			r.Volume = perimeter * 1.5 * 0.06 * 1.2
		case HockeyTechGate:
			r.Units = 1
			r.Cost = techGatePrice
			r.Mass = perimeter * 1.5 * 9.5
			r.Volume = perimeter * 1.5 * 0.06
		}

		// дилер и опт — независимые наценки от одной базы
		r.Dealer = r.Cost * c.Dealer
		r.Wholesale = r.Cost * c.Wholesale
		r.Estimate = r.Wholesale * c.Estimate

		r.Summary = fmt.Sprintf("%s: %d секц., %s, %s кг, %s м³",
			r.Name, r.Units, rub(r.Cost), num(r.Mass), num(r.Volume))

		it.results[i] = r
	}
}
