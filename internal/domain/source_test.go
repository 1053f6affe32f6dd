package domain

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// stubSource — источник цен для тестов: отдаёт данные напрямую,
// без репозитория и хранилищ.
type stubSource struct {
	prices *PriceTable
	coeffs Coefficients
	fixed  map[string]FixedValue
}

func (s *stubSource) Price(category, subcategory string, def float64) float64 {
	return s.prices.Get(category, subcategory, def)
}

func (s *stubSource) Coefficients() Coefficients { return s.coeffs }

func (s *stubSource) FixedValues() map[string]FixedValue { return s.fixed }

func coverageSource() *stubSource {
	return &stubSource{prices: DefaultCoveragePrices()}
}

func hockeySource() *stubSource {
	return &stubSource{prices: DefaultHockeyPrices(), coeffs: DefaultHockeyCoefficients()}
}

func uspSource() *stubSource {
	return &stubSource{prices: DefaultUSPPrices(), coeffs: DefaultUSPCoefficients()}
}

func uspRoundSource() *stubSource {
	return &stubSource{
		prices: DefaultUSPRoundPrices(),
		coeffs: DefaultUSPRoundCoefficients(),
		fixed:  DefaultUSPRoundFixedValues(),
	}
}
