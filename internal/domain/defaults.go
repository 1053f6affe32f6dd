package domain

// Категории прайс-листов. Названия совпадают с тем, как их видит
// администратор в таблицах цен.
const (
	CategoryGlass        = "Стеклопластик"
	CategoryThrowNet     = "Сетка в зоне выбросов"
	CategoryPerimeterNet = "Сетка по периметру"
	CategoryGates        = "Ворота"
	CategoryRoundPost    = "Труба d57"
	CategoryExtras       = "Дополнительно"
)

// Подкатегории дополнительных элементов УСП на круглой трубе.
const (
	ExtraBasketballStand = "Баскетбольная стойка"
	ExtraGate3m          = "Калитка 3м"
	ExtraGate41m         = "Калитка 4,1м"
)

// DefaultCoveragePrices — стартовый прайс резиновых покрытий:
// материал -> толщина (мм или составная маркировка) -> цена за м².
func DefaultCoveragePrices() *PriceTable {
	t := NewPriceTable()
	t.Set("Обычное цвет красный/зеленый", "10", 2400)
	t.Set("Обычное цвет красный/зеленый", "20", 3000)
	t.Set("Обычное цвет красный/зеленый", "30", 3600)
	t.Set("Обычное цвет синий", "10", 2600)
	t.Set("Обычное цвет синий", "20", 3200)
	t.Set("Обычное цвет синий", "30", 3800)
	t.Set("ЕПДМ 20%", "10+10", 4200)
	t.Set("ЕПДМ 20%", "20+10", 4900)
	t.Set("ЕПДМ 100%", "10+10", 5600)
	t.Set("ЕПДМ 100%", "20+10", 6400)
	return t
}

// DefaultHockeyPrices — стартовый прайс хоккейных кортов.
func DefaultHockeyPrices() *PriceTable {
	t := NewPriceTable()
	t.Set(CategoryGlass, "5мм", 15500)
	t.Set(CategoryGlass, "7мм", 19500)
	t.Set(CategoryThrowNet, "1,5м", 4500)
	t.Set(CategoryThrowNet, "2м", 5600)
	t.Set(CategoryPerimeterNet, "1,5м", 4200)
	t.Set(CategoryPerimeterNet, "2м", 5200)
	t.Set(CategoryGates, "Калитка", 35000)
	t.Set(CategoryGates, "Технические ворота", 78000)
	return t
}

func DefaultHockeyCoefficients() Coefficients {
	return Coefficients{Dealer: 1.2, Wholesale: 1.4, Estimate: 1.1}
}

// DefaultUSPPrices — стартовый прайс УСП на квадратной трубе:
// столб -> высота ограждения -> цена за м².
func DefaultUSPPrices() *PriceTable {
	t := NewPriceTable()
	t.Set("Столб 60х60", "3м", 1850)
	t.Set("Столб 60х60", "4м", 2100)
	t.Set("Столб 80х80", "3м", 2050)
	t.Set("Столб 80х80", "4м", 2350)
	t.Set(CategoryGates, "Распашные", 28000)
	return t
}

func DefaultUSPCoefficients() Coefficients {
	return Coefficients{Dealer: 1.3, Wholesale: 1.8, Estimate: 1.2}
}

// DefaultUSPRoundPrices — стартовый прайс УСП на круглой трубе.
func DefaultUSPRoundPrices() *PriceTable {
	t := NewPriceTable()
	t.Set(CategoryRoundPost, "3м", 2250)
	t.Set(CategoryRoundPost, "4,1м", 2600)
	t.Set(CategoryExtras, ExtraBasketballStand, 48000)
	t.Set(CategoryExtras, ExtraGate3m, 32000)
	t.Set(CategoryExtras, ExtraGate41m, 39000)
	return t
}

func DefaultUSPRoundCoefficients() Coefficients {
	return Coefficients{
		Dealer:              1.3,
		Wholesale:           1.8,
		Estimate:            1.2,
		PowderPricePerM2:    380,
		PaintingCoeff:       1.18,
		PaintingSecondCoeff: 1.08,
	}
}

func DefaultUSPRoundFixedValues() map[string]FixedValue {
	return map[string]FixedValue{
		ExtraBasketballStand: {Mass: 120, Volume: 1.2},
		ExtraGate3m:          {Mass: 85, Volume: 0.8},
		ExtraGate41m:         {Mass: 110, Volume: 1.1},
	}
}
