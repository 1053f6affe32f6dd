package domain

// Coefficients — бизнес-коэффициенты семейства продуктов.
// Все коэффициенты строго больше нуля; дефолты задаются на семейство.
type Coefficients struct {
	Dealer    float64 `json:"dealerCoeff"`
	Wholesale float64 `json:"wholesaleCoeff"`
	Estimate  float64 `json:"estimateCoeff"`

	// Только для УСП на круглой трубе: порошковая покраска поверх цинка.
	PowderPricePerM2    float64 `json:"powderPricePerM2,omitempty"`
	PaintingCoeff       float64 `json:"paintingCoeff,omitempty"`
	PaintingSecondCoeff float64 `json:"paintingSecondCoeff,omitempty"`
}

// FixedValue — масса и объём элемента, чей физический габарит
// не зависит от геометрии площадки (стойка, калитка).
type FixedValue struct {
	Mass   float64 `json:"mass"`
	Volume float64 `json:"volume"`
}

// PriceSource — то, откуда калькуляторы читают актуальные цены
// и коэффициенты. Реализуется репозиторием цен семейства.
type PriceSource interface {
	Price(category, subcategory string, def float64) float64
	Coefficients() Coefficients
	FixedValues() map[string]FixedValue
}
