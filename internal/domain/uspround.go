package domain

import (
	"fmt"
	"sync"
)

// Варианты расчёта УСП на круглой трубе: четыре комплектации по геометрии
// плюс три фиксированные позиции.
const (
	USPRound3NoGate  = "Высота 3м без ворот"
	USPRound3Gate    = "Высота 3м с воротами"
	USPRound41NoGate = "Высота 4,1м без ворот"
	USPRound41Gate   = "Высота 4,1м с воротами"
	USPRoundBasket   = ExtraBasketballStand
	USPRoundGate3    = ExtraGate3m
	USPRoundGate41   = ExtraGate41m
)

var uspRoundCalcTypes = []string{
	USPRound3NoGate,
	USPRound3Gate,
	USPRound41NoGate,
	USPRound41Gate,
	USPRoundBasket,
	USPRoundGate3,
	USPRoundGate41,
}

// USPRoundResult — один вариант УСП на круглой трубе. Помимо обычного
// ценового трека есть второй — цинк с порошковой покраской.
type USPRoundResult struct {
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Wholesale float64 `json:"wholesalePrice"`
	Dealer    float64 `json:"dealerPrice"`

	ZincCost      float64 `json:"zincCost"`
	ZincWholesale float64 `json:"zincWholesalePrice"`
	ZincDealer    float64 `json:"zincDealerPrice"`

	Area    float64 `json:"area"`
	Mass    float64 `json:"mass"`
	Volume  float64 `json:"volume"`
	Summary string  `json:"summary"`
}

// USPRoundItem — расчёт ограждения УСП на круглой трубе по сторонам площадки.
type USPRoundItem struct {
	mu  sync.Mutex
	src PriceSource

	length float64
	width  float64

	results []USPRoundResult
}

func NewUSPRoundItem(src PriceSource) *USPRoundItem {
	it := &USPRoundItem{src: src}
	it.results = make([]USPRoundResult, len(uspRoundCalcTypes))
	for i, name := range uspRoundCalcTypes {
		it.results[i] = USPRoundResult{Name: name}
	}
	it.Recompute()
	return it
}

func (it *USPRoundItem) SetLength(l float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.length = l
}

func (it *USPRoundItem) SetWidth(w float64) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.width = w
}

func (it *USPRoundItem) Results() []USPRoundResult {
	it.mu.Lock()
	defer it.mu.Unlock()
	out := make([]USPRoundResult, len(it.results))
	copy(out, it.results)
	return out
}

func (it *USPRoundItem) Result(name string) (USPRoundResult, bool) {
	it.mu.Lock()
	defer it.mu.Unlock()
	for _, r := range it.results {
		if r.Name == name {
			return r, true
		}
	}
	return USPRoundResult{}, false
}

func (it *USPRoundItem) Recompute() {
	it.mu.Lock()
	defer it.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			for i := range it.results {
				it.results[i] = USPRoundResult{Name: it.results[i].Name}
			}
		}
	}()
	it.compute()
}

// uspRoundMassPerM2 — масса квадратного метра ограждения по высоте.
func uspRoundMassPerM2(height string) float64 {
	if height == "4,1м" {
		return 12.5
	}
	return 11
}

func (it *USPRoundItem) compute() {
	c := it.src.Coefficients()
	fixed := it.src.FixedValues()

	perimeter := 2 * (it.length + it.width)

	for i := range it.results {
		var r USPRoundResult
		r.Name = it.results[i].Name

		switch r.Name {
		case USPRound3NoGate:
			r = it.computeFence(r.Name, "3м", 3, false, perimeter, c, fixed)
		case USPRound3Gate:
			r = it.computeFence(r.Name, "3м", 3, true, perimeter, c, fixed)
		case USPRound41NoGate:
			r = it.computeFence(r.Name, "4,1м", 4.1, false, perimeter, c, fixed)
		case USPRound41Gate:
			r = it.computeFence(r.Name, "4,1м", 4.1, true, perimeter, c, fixed)
		case USPRoundBasket:
			r = it.computeExtra(r.Name, 48000, c, fixed)
			// продуктовые надбавки баскетбольной стойки поверх обычных
			// коэффициентов; значения фиксированы прайс-политикой
			r.Wholesale *= 1.51
			r.Dealer = r.Wholesale / c.Dealer / 1.13
		case USPRoundGate3:
			r = it.computeExtra(r.Name, 32000, c, fixed)
		case USPRoundGate41:
			r = it.computeExtra(r.Name, 39000, c, fixed)
		}

		// у фиксированных позиций цинкового трека нет
		if r.ZincCost > 0 {
			r.Summary = fmt.Sprintf("%s: %s / цинк %s, %s кг, %s м³",
				r.Name, rub(r.Cost), rub(r.ZincCost), num(r.Mass), num(r.Volume))
		} else {
			r.Summary = fmt.Sprintf("%s: %s, %s кг, %s м³",
				r.Name, rub(r.Cost), num(r.Mass), num(r.Volume))
		}

		it.results[i] = r
	}
}

func (it *USPRoundItem) computeFence(name, height string, meters float64, withGate bool, perimeter float64, c Coefficients, fixed map[string]FixedValue) USPRoundResult {
	r := USPRoundResult{Name: name}

	def := 2250.0
	if height == "4,1м" {
		def = 2600
	}
	unit := it.src.Price(CategoryRoundPost, height, def)

	linear := perimeter
	if withGate {
		// проём калитки вычитается из погонной длины
		linear -= 3
		if linear < 0 {
			linear = 0
		}
	}

	r.Area = perimeter * meters
	r.Cost = linear * meters * unit

	gateKey := ExtraGate3m
	gateDef := 32000.0
	if height == "4,1м" {
		gateKey = ExtraGate41m
		gateDef = 39000
	}
	if withGate {
		r.Cost += it.src.Price(CategoryExtras, gateKey, gateDef)
	}

	// второй трек: та же заводская база плюс порошковая покраска по площади
	r.ZincCost = (r.Cost + r.Area*c.PowderPricePerM2*c.PaintingSecondCoeff) * c.PaintingCoeff

	r.Wholesale = r.Cost * c.Wholesale
	r.Dealer = r.Wholesale / c.Dealer
	r.ZincWholesale = r.ZincCost * c.Wholesale
	r.ZincDealer = r.ZincWholesale / c.Dealer

	r.Mass = r.Area * uspRoundMassPerM2(height)
	r.Volume = r.Area * 0.06 * 1.2
	if withGate {
		fv := fixed[gateKey]
		r.Mass += fv.Mass
		r.Volume += fv.Volume
	}
	return r
}

// computeExtra — позиции с фиксированной ценой: геометрия площадки на них
// не влияет, масса и объём берутся из справочника фиксированных значений.
func (it *USPRoundItem) computeExtra(name string, def float64, c Coefficients, fixed map[string]FixedValue) USPRoundResult {
	r := USPRoundResult{Name: name}
	r.Cost = it.src.Price(CategoryExtras, name, def)
	r.Wholesale = r.Cost * c.Wholesale
	r.Dealer = r.Wholesale / c.Dealer
	fv := fixed[name]
	r.Mass = fv.Mass
	r.Volume = fv.Volume
	return r
}
