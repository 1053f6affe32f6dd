package domain

import (
	"fmt"
	"strconv"
	"sync"
)

// Thickness — толщина покрытия: число в миллиметрах для обычных материалов
// или составная маркировка вида "10+10" для двухслойного ЕПДМ.
type Thickness struct {
	Numeric float64
	Label   string
}

func NumericThickness(mm float64) Thickness { return Thickness{Numeric: mm} }

func LabelThickness(label string) Thickness { return Thickness{Label: label} }

// Key — каноническая строка для поиска в прайсе. Пустая, если толщина не задана.
func (t Thickness) Key() string {
	if t.Label != "" {
		return t.Label
	}
	if t.Numeric <= 0 {
		return ""
	}
	return strconv.FormatFloat(t.Numeric, 'f', -1, 64)
}

// Регионы, в которых выполняется укладка покрытия.
var CoverageRegions = []string{"Москва", "Московская область"}

const (
	coverageRegionError = "Укладка покрытия выполняется только в Москве и Московской области."
	coverageAreaError   = "Минимальный объём заказа — 50 м². Меньшие площади считаются индивидуально."
)

// CoverageResult — результат расчёта покрытия.
type CoverageResult struct {
	Cost       float64 `json:"cost"`
	PricePerM2 float64 `json:"pricePerM2"`
	TierLabel  string  `json:"tierLabel"`
	HasError   bool    `json:"hasError"`
	Error      string  `json:"error,omitempty"`
	Summary    string  `json:"summary"`
}

// CoverageItem — расчёт резинового покрытия: материал, толщина, площадь, регион.
type CoverageItem struct {
	mu  sync.Mutex
	src PriceSource

	material  string
	thickness Thickness
	area      float64
	region    string

	result CoverageResult
}

func NewCoverageItem(src PriceSource) *CoverageItem {
	it := &CoverageItem{src: src}
	it.Recompute()
	return it
}

func (it *CoverageItem) SetMaterial(material string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.material = material
}

func (it *CoverageItem) SetThickness(t Thickness) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.thickness = t
}

func (it *CoverageItem) SetArea(area float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.area = area
}

func (it *CoverageItem) SetRegion(region string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.region = region
}

// Result возвращает текущий результат расчёта.
func (it *CoverageItem) Result() CoverageResult {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.result
}

// Recompute пересчитывает результат по текущим входным данным.
// Вызывается контроллером после изменения любого из полей.
func (it *CoverageItem) Recompute() {
	it.mu.Lock()
	defer it.mu.Unlock()
	defer func() {
		// расчёт никогда не роняет приложение: при панике результат обнуляется
		if r := recover(); r != nil {
			it.result = CoverageResult{}
		}
	}()
	it.result = it.compute()
}

func (it *CoverageItem) compute() CoverageResult {
	var res CoverageResult

	base := 0.0
	if it.material != "" && it.thickness.Key() != "" {
		base = it.src.Price(it.material, it.thickness.Key(), 0)
	}
	res.PricePerM2 = base

	if !coverageRegionAllowed(it.region) {
		res.HasError = true
		res.Error = coverageRegionError
		res.Summary = res.Error
		return res
	}
	if it.area > 0 && it.area < 50 {
		res.HasError = true
		res.Error = coverageAreaError
		res.Summary = res.Error
		return res
	}
	// нулевая площадь или нулевая цена — форма ещё не заполнена, это не ошибка
	if it.area <= 0 || base <= 0 {
		return res
	}

	mult, label := coverageTier(it.area)
	res.Cost = it.area * base * mult
	res.TierLabel = label
	res.PricePerM2 = res.Cost / it.area
	res.Summary = fmt.Sprintf("Покрытие %s, %s мм, %s м², %s: %s %s",
		it.material, it.thickness.Key(), num(it.area), it.region, rub(res.Cost), label)
	return res
}

func coverageRegionAllowed(region string) bool {
	for _, r := range CoverageRegions {
		if r == region {
			return true
		}
	}
	return false
}

// coverageTier — наценка за малый заказ: чем меньше площадь (из допустимых),
// тем дороже квадратный метр. Интервалы полуоткрытые справа.
func coverageTier(area float64) (float64, string) {
	switch {
	case area >= 50 && area < 70:
		return 3, "(x3)"
	case area >= 70 && area < 100:
		return 2, "(x2)"
	case area >= 100 && area < 120:
		return 1.2, "(x1.2)"
	default:
		return 1, ""
	}
}
