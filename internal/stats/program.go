package stats

import "math"

// ProgramLength is the fixed number of days in the guided program. There is
// no day-31 content; progress past the end stays pinned to the last day.
const ProgramLength = 30

// SelectDay maps continuous elapsed days to the 1-based program day in
// progress. Partial progress rounds up: day 0.0 through 1.0 is program day 1,
// 1.01 is day 2. Anything past the program clamps to the final day.
func SelectDay(elapsedDays float64) int {
	return ClampDay(int(math.Ceil(elapsedDays)))
}

// ClampDay bounds a day index to [1, ProgramLength].
func ClampDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > ProgramLength {
		return ProgramLength
	}
	return day
}

// StepDay moves a day index by delta, staying within the program. Requests
// that would leave the table are no-ops at the boundary.
func StepDay(day, delta int) int {
	return ClampDay(day + delta)
}
