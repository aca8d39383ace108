package stats

import "math"

// Milestone is any static table entry unlocked by crossing a day threshold.
// Both achievements and health benefits satisfy it. Thresholds may be
// fractional (the first achievement unlocks after one hour, 1/24 days) and
// are always compared against the continuous elapsed-days value.
type Milestone interface {
	ThresholdDays() float64
}

// Status pairs a table entry with its derived unlocked state.
type Status[T Milestone] struct {
	Entry    T
	Unlocked bool
}

// Evaluate maps a threshold table to unlocked state. The table must be
// sorted ascending by threshold; Evaluate does not re-sort it.
func Evaluate[T Milestone](table []T, elapsedDays float64) []Status[T] {
	out := make([]Status[T], len(table))
	for i, entry := range table {
		out[i] = Status[T]{
			Entry:    entry,
			Unlocked: elapsedDays >= entry.ThresholdDays(),
		}
	}
	return out
}

// LatestUnlocked returns the most recently crossed entry: the one with the
// largest threshold not exceeding elapsedDays. On equal thresholds the first
// in table order wins.
func LatestUnlocked[T Milestone](table []T, elapsedDays float64) (T, bool) {
	var latest T
	found := false
	for _, entry := range table {
		if entry.ThresholdDays() > elapsedDays {
			break
		}
		if !found || entry.ThresholdDays() > latest.ThresholdDays() {
			latest = entry
			found = true
		}
	}
	return latest, found
}

// NextLocked returns the first entry still ahead: the smallest threshold
// strictly greater than elapsedDays. On equal thresholds the first in table
// order wins.
func NextLocked[T Milestone](table []T, elapsedDays float64) (T, bool) {
	for _, entry := range table {
		if entry.ThresholdDays() > elapsedDays {
			return entry, true
		}
	}
	var zero T
	return zero, false
}

// ProgressToNext reports the fraction of the way to the given threshold,
// clamped to [0, 1].
func ProgressToNext(elapsedDays, thresholdDays float64) float64 {
	if thresholdDays <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0, elapsedDays/thresholdDays))
}

// DaysRemaining returns the whole days left before a threshold unlocks,
// rounded up and floored at zero, matching the countdown display.
func DaysRemaining(elapsedDays, thresholdDays float64) int {
	remaining := math.Ceil(thresholdDays - elapsedDays)
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}
