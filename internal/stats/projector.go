package stats

import "math"

// Projection estimates what quitting has avoided so far.
type Projection struct {
	UnitsAvoided int
	MoneySaved   float64
}

// Project converts elapsed days into avoided units and money saved.
//
// UnitsAvoided floors the continuous product so the count only increments
// once a full unit's worth of time has passed. MoneySaved multiplies the
// floored count, not the continuous product, so the two displayed figures
// always agree. Non-positive rate or cost contributes zero instead of
// failing; input validation belongs to onboarding, not here.
func Project(elapsedDays, dailyRate, unitCost float64) Projection {
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	if dailyRate <= 0 {
		return Projection{}
	}
	units := int(math.Floor(elapsedDays * dailyRate))
	if unitCost <= 0 {
		return Projection{UnitsAvoided: units}
	}
	return Projection{
		UnitsAvoided: units,
		MoneySaved:   float64(units) * unitCost,
	}
}

// LifeGainedHours is the continuous hours-regained metric shown on the home
// screen. It deliberately floors the continuous product rather than reusing
// the unit-based flooring above; the two metrics carry different rounding
// rules and must not be unified.
func LifeGainedHours(elapsedDays float64) int {
	if elapsedDays < 0 {
		return 0
	}
	return int(math.Floor(elapsedDays * 24))
}

// SavingsEquivalent returns how many items at the given price the savings
// cover, for the "that's N coffees" display.
func SavingsEquivalent(moneySaved, itemCost float64) int {
	if moneySaved <= 0 || itemCost <= 0 {
		return 0
	}
	return int(math.Floor(moneySaved / itemCost))
}
