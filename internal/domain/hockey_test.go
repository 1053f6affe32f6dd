package domain

import (
	"math"
	"testing"
)

func TestRadiusSections(t *testing.T) {
	cases := []struct {
		radius float64
		want   int
	}{
		{3.0, 12},
		{4.0, 16},
		{5.0, 16},
		{7.5, 24},
		{8.5, 28},
		{3.001, 12}, // внутри допуска
		{6.0, 12},   // незнакомый радиус — минимум
		{0, 12},
	}
	for _, tc := range cases {
		if got := RadiusSections(tc.radius); got != tc.want {
			t.Errorf("RadiusSections(%v) = %d, want %d", tc.radius, got, tc.want)
		}
	}
}

func TestSideSections(t *testing.T) {
	cases := []struct {
		side, radius float64
		want         int
	}{
		{30, 3, 24},
		{60, 3, 54},
		{31, 3, 26}, // нечётный прямой участок округляется вверх до чётного
		{5, 3, 0},   // сторона короче двух радиусов
		{6, 3, 0},
	}
	for _, tc := range cases {
		got := SideSections(tc.side, tc.radius)
		if got != tc.want {
			t.Errorf("SideSections(%v, %v) = %d, want %d", tc.side, tc.radius, got, tc.want)
		}
		if got%2 != 0 {
			t.Errorf("SideSections(%v, %v) = %d, want even", tc.side, tc.radius, got)
		}
	}
}

func newHockeyForTest() *HockeyItem {
	it := NewHockeyItem(hockeySource())
	it.SetWidth(30)
	it.SetLength(60)
	it.SetRadius(3)
	it.SetGlassThickness("5мм")
	it.SetNetHeight("1,5м")
	it.Recompute()
	return it
}

func TestHockey_NoNet(t *testing.T) {
	it := newHockeyForTest()

	r, ok := it.Result(HockeyNoNet)
	if !ok {
		t.Fatal("no result for NoNet")
	}
	// 24 + 54 + 12 = 90 секций
	if r.Units != 90 {
		t.Fatalf("Units = %d, want 90", r.Units)
	}
	nearlyEqual(t, "Cost", r.Cost, 90*15500) // 1 395 000
	nearlyEqual(t, "Mass", r.Mass, 3150)
	nearlyEqual(t, "Volume", r.Volume, 14.4)
	nearlyEqual(t, "Dealer", r.Dealer, r.Cost*1.2)
	nearlyEqual(t, "Wholesale", r.Wholesale, r.Cost*1.4)
	nearlyEqual(t, "Estimate", r.Estimate, r.Cost*1.4*1.1)
}

func TestHockey_NetVariants(t *testing.T) {
	it := newHockeyForTest()

	throw, _ := it.Result(HockeyThrowZoneOnly)
	// зона выбросов: торцы (24) плюс закругления (12)
	if throw.Units != 36 {
		t.Fatalf("throw Units = %d, want 36", throw.Units)
	}
	nearlyEqual(t, "throw Cost", throw.Cost, 36*4500)

	perim, _ := it.Result(HockeyPerimeterOnly)
	if perim.Units != 90 {
		t.Fatalf("perim Units = %d, want 90", perim.Units)
	}
	nearlyEqual(t, "perim Cost", perim.Cost, 90*4200)

	base, _ := it.Result(HockeyNoNet)
	withThrow, _ := it.Result(HockeyThrowZoneNet)
	withPerim, _ := it.Result(HockeyPerimeterNet)
	nearlyEqual(t, "glass+throw", withThrow.Cost, base.Cost+throw.Cost)
	nearlyEqual(t, "glass+perim", withPerim.Cost, base.Cost+perim.Cost)
}

func TestHockey_Gates(t *testing.T) {
	it := newHockeyForTest()

	perimeter := math.Pi*2*3 + 2*(30-6) + 2*(60-6)

	gate, _ := it.Result(HockeyGate)
	nearlyEqual(t, "gate Cost", gate.Cost, 35000)
	nearlyEqual(t, "gate Mass", gate.Mass, perimeter*1.5*9.5)
	nearlyEqual(t, "gate Volume", gate.Volume, perimeter*1.5*0.06*1.2)

	tech, _ := it.Result(HockeyTechGate)
	nearlyEqual(t, "tech Cost", tech.Cost, 78000)
	nearlyEqual(t, "tech Volume", tech.Volume, perimeter*1.5*0.06)
}

func TestHockey_SevenVariantsInOrder(t *testing.T) {
	it := newHockeyForTest()

	results := it.Results()
	if len(results) != 7 {
		t.Fatalf("len(Results) = %d, want 7", len(results))
	}
	want := []string{
		HockeyNoNet,
		HockeyThrowZoneNet,
		HockeyPerimeterNet,
		HockeyThrowZoneOnly,
		HockeyPerimeterOnly,
		HockeyGate,
		HockeyTechGate,
	}
	for i, r := range results {
		if r.Name != want[i] {
			t.Errorf("Results[%d].Name = %q, want %q", i, r.Name, want[i])
		}
	}
}

func TestHockey_PerimeterOnlySpelling(t *testing.T) {
	// каноническое написание: "отдельно", не "отедльно"
	if HockeyPerimeterOnly != "Сетка по периметру отдельно" {
		t.Fatalf("HockeyPerimeterOnly = %q", HockeyPerimeterOnly)
	}
}

func TestHockey_ThickGlassAndTallNet(t *testing.T) {
	it := newHockeyForTest()
	it.SetGlassThickness("7мм")
	it.SetNetHeight("2м")
	it.Recompute()

	base, _ := it.Result(HockeyNoNet)
	nearlyEqual(t, "Cost 7мм", base.Cost, 90*19500)
	nearlyEqual(t, "Mass 7мм", base.Mass, 90*36)

	throw, _ := it.Result(HockeyThrowZoneOnly)
	nearlyEqual(t, "throw Cost 2м", throw.Cost, 36*5600)
	nearlyEqual(t, "throw Mass 2м", throw.Mass, 36*30)
}
