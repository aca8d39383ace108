package stats

import "testing"

func TestProject_FloorsUnits(t *testing.T) {
	cases := []struct {
		name      string
		days      float64
		rate      float64
		cost      float64
		wantUnits int
		wantMoney float64
	}{
		{"half day at 10/day", 0.5, 10, 1.0, 5, 5.0},
		{"just under a unit", 0.099, 10, 1.0, 0, 0.0},
		{"exactly one unit", 0.1, 10, 1.0, 1, 1.0},
		{"three and a half days at 20", 3.5, 20, 0.5, 70, 35.0},
		{"zero elapsed", 0, 20, 0.5, 0, 0.0},
		{"negative elapsed clamps", -2, 20, 0.5, 0, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Project(tc.days, tc.rate, tc.cost)
			if p.UnitsAvoided != tc.wantUnits {
				t.Errorf("UnitsAvoided = %d, want %d", p.UnitsAvoided, tc.wantUnits)
			}
			if p.MoneySaved != tc.wantMoney {
				t.Errorf("MoneySaved = %v, want %v", p.MoneySaved, tc.wantMoney)
			}
		})
	}
}

func TestProject_MoneyUsesFlooredUnits(t *testing.T) {
	// 1.55 days * 10/day = 15.5 units -> 15. Money must be 15 * cost,
	// not 15.5 * cost.
	p := Project(1.55, 10, 2.0)
	if p.UnitsAvoided != 15 {
		t.Fatalf("UnitsAvoided = %d, want 15", p.UnitsAvoided)
	}
	if p.MoneySaved != 30.0 {
		t.Errorf("MoneySaved = %v, want 30.0 (floored units times cost)", p.MoneySaved)
	}
}

func TestProject_NonPositiveRate(t *testing.T) {
	if p := Project(10, 0, 1.0); p != (Projection{}) {
		t.Errorf("zero rate should project nothing, got %+v", p)
	}
	if p := Project(10, -5, 1.0); p != (Projection{}) {
		t.Errorf("negative rate should project nothing, got %+v", p)
	}
}

func TestProject_NonPositiveCostKeepsUnits(t *testing.T) {
	p := Project(2, 10, 0)
	if p.UnitsAvoided != 20 {
		t.Errorf("UnitsAvoided = %d, want 20", p.UnitsAvoided)
	}
	if p.MoneySaved != 0 {
		t.Errorf("MoneySaved = %v, want 0 with free units", p.MoneySaved)
	}
}

func TestLifeGainedHours(t *testing.T) {
	cases := []struct {
		days float64
		want int
	}{
		{0, 0},
		{-1, 0},
		{0.5, 12},
		{1.0, 24},
		{1.04, 24},
		{3.5, 84},
	}
	for _, tc := range cases {
		if got := LifeGainedHours(tc.days); got != tc.want {
			t.Errorf("LifeGainedHours(%v) = %d, want %d", tc.days, got, tc.want)
		}
	}
}

func TestSavingsEquivalent(t *testing.T) {
	if got := SavingsEquivalent(35.0, 3.5); got != 10 {
		t.Errorf("SavingsEquivalent(35, 3.5) = %d, want 10", got)
	}
	if got := SavingsEquivalent(10.0, 3.0); got != 3 {
		t.Errorf("SavingsEquivalent(10, 3) = %d, want 3", got)
	}
	if got := SavingsEquivalent(0, 3.0); got != 0 {
		t.Errorf("SavingsEquivalent(0, 3) = %d, want 0", got)
	}
	if got := SavingsEquivalent(10.0, 0); got != 0 {
		t.Errorf("SavingsEquivalent(10, 0) = %d, want 0", got)
	}
}
