package domain

import "testing"

// faultySource — источник цен, который можно "сломать" после первого
// расчёта: любое обращение начинает паниковать.
type faultySource struct {
	inner  PriceSource
	broken bool
}

func (s *faultySource) Price(category, subcategory string, def float64) float64 {
	if s.broken {
		panic("price table corrupted")
	}
	return s.inner.Price(category, subcategory, def)
}

func (s *faultySource) Coefficients() Coefficients {
	if s.broken {
		panic("price table corrupted")
	}
	return s.inner.Coefficients()
}

func (s *faultySource) FixedValues() map[string]FixedValue {
	if s.broken {
		panic("price table corrupted")
	}
	return s.inner.FixedValues()
}

func TestCoverage_RecomputePanicZeroesResult(t *testing.T) {
	src := &faultySource{inner: coverageSource()}
	it := NewCoverageItem(src)
	it.SetMaterial("Обычное цвет красный/зеленый")
	it.SetThickness(NumericThickness(20))
	it.SetArea(80)
	it.SetRegion("Москва")
	it.Recompute()
	if it.Result().Cost == 0 {
		t.Fatal("expected non-zero cost before failure")
	}

	src.broken = true
	it.Recompute()

	if got := it.Result(); got != (CoverageResult{}) {
		t.Fatalf("result not zeroed after panic: %+v", got)
	}
}

func TestHockey_RecomputePanicZeroesResults(t *testing.T) {
	src := &faultySource{inner: hockeySource()}
	it := NewHockeyItem(src)
	it.SetWidth(30)
	it.SetLength(60)
	it.SetRadius(3)
	it.SetGlassThickness("5мм")
	it.SetNetHeight("1,5м")
	it.Recompute()

	src.broken = true
	it.Recompute()

	results := it.Results()
	if len(results) != 7 {
		t.Fatalf("len(Results) = %d, want 7", len(results))
	}
	for i, r := range results {
		// имя варианта сохраняется, все числовые поля и сводка обнуляются
		if r != (HockeyResult{Name: hockeyCalcTypes[i]}) {
			t.Errorf("Results[%d] not zeroed: %+v", i, r)
		}
	}
}

func TestUSP_RecomputePanicZeroesResults(t *testing.T) {
	src := &faultySource{inner: uspSource()}
	it := NewUSPItem(src)
	it.SetLength(40)
	it.SetWidth(20)
	it.SetHeight("3м")
	it.SetColumn("60х60")
	it.Recompute()

	src.broken = true
	it.Recompute()

	for i, r := range it.Results() {
		if r != (USPResult{Name: uspCalcTypes[i]}) {
			t.Errorf("Results[%d] not zeroed: %+v", i, r)
		}
	}
}

func TestUSPRound_RecomputePanicZeroesResults(t *testing.T) {
	src := &faultySource{inner: uspRoundSource()}
	it := NewUSPRoundItem(src)
	it.SetLength(40)
	it.SetWidth(20)
	it.Recompute()

	src.broken = true
	it.Recompute()

	for i, r := range it.Results() {
		if r != (USPRoundResult{Name: uspRoundCalcTypes[i]}) {
			t.Errorf("Results[%d] not zeroed: %+v", i, r)
		}
	}
}
