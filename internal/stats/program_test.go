package stats

import "testing"

func TestSelectDay(t *testing.T) {
	cases := []struct {
		elapsed float64
		want    int
	}{
		{-3, 1},
		{0, 1},
		{0.5, 1},
		{1.0, 1},
		{1.01, 2},
		{2.0, 2},
		{29.0, 29},
		{29.5, 30},
		{30.0, 30},
		{45.0, 30},
	}
	for _, tc := range cases {
		if got := SelectDay(tc.elapsed); got != tc.want {
			t.Errorf("SelectDay(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestClampDay(t *testing.T) {
	if got := ClampDay(0); got != 1 {
		t.Errorf("ClampDay(0) = %d, want 1", got)
	}
	if got := ClampDay(31); got != ProgramLength {
		t.Errorf("ClampDay(31) = %d, want %d", got, ProgramLength)
	}
	if got := ClampDay(15); got != 15 {
		t.Errorf("ClampDay(15) = %d, want 15", got)
	}
}

func TestStepDay_StopsAtBoundaries(t *testing.T) {
	if got := StepDay(1, -1); got != 1 {
		t.Errorf("stepping back from day 1 gave %d", got)
	}
	if got := StepDay(ProgramLength, 1); got != ProgramLength {
		t.Errorf("stepping forward from the last day gave %d", got)
	}
	if got := StepDay(10, 5); got != 15 {
		t.Errorf("StepDay(10, 5) = %d, want 15", got)
	}
}
