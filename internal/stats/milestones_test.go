package stats

import (
	"testing"

	"github.com/exhale-app/exhale/internal/content"
)

type fakeMilestone struct {
	name      string
	threshold float64
}

func (f fakeMilestone) ThresholdDays() float64 { return f.threshold }

var fakeTable = []fakeMilestone{
	{"first-hour", 1.0 / 24.0},
	{"first-day", 1},
	{"three-days", 3},
	{"one-week", 7},
}

func TestEvaluate_UnlocksAtThreshold(t *testing.T) {
	statuses := Evaluate(fakeTable, 3.0)

	want := map[string]bool{
		"first-hour": true,
		"first-day":  true,
		"three-days": true,
		"one-week":   false,
	}
	for _, st := range statuses {
		if st.Unlocked != want[st.Entry.name] {
			t.Errorf("%s: unlocked = %v, want %v", st.Entry.name, st.Unlocked, want[st.Entry.name])
		}
	}
}

func TestEvaluate_FractionalThreshold(t *testing.T) {
	// 30 minutes in: the one-hour milestone is still locked.
	statuses := Evaluate(fakeTable, 0.5/24.0)
	if statuses[0].Unlocked {
		t.Error("one-hour milestone unlocked after 30 minutes")
	}

	// 61 minutes in: unlocked.
	statuses = Evaluate(fakeTable, 61.0/(24.0*60.0))
	if !statuses[0].Unlocked {
		t.Error("one-hour milestone still locked after 61 minutes")
	}
}

func TestEvaluate_IsMonotonic(t *testing.T) {
	// Unlock state must never regress as elapsed time grows.
	points := []float64{0, 0.02, 0.05, 0.5, 1, 1.5, 3, 5, 7, 30}
	prevUnlocked := 0
	for _, p := range points {
		count := 0
		for _, st := range Evaluate(fakeTable, p) {
			if st.Unlocked {
				count++
			}
		}
		if count < prevUnlocked {
			t.Fatalf("unlocked count regressed at %v days: %d -> %d", p, prevUnlocked, count)
		}
		prevUnlocked = count
	}
}

func TestLatestUnlocked(t *testing.T) {
	got, ok := LatestUnlocked(fakeTable, 4.2)
	if !ok || got.name != "three-days" {
		t.Errorf("LatestUnlocked(4.2) = %v, %v; want three-days", got.name, ok)
	}

	if _, ok := LatestUnlocked(fakeTable, 0.01); ok {
		t.Error("LatestUnlocked before any threshold should report none")
	}

	got, ok = LatestUnlocked(fakeTable, 100)
	if !ok || got.name != "one-week" {
		t.Errorf("LatestUnlocked(100) = %v, %v; want one-week", got.name, ok)
	}
}

func TestLatestUnlocked_EqualThresholdsFirstWins(t *testing.T) {
	table := []fakeMilestone{
		{"a", 2},
		{"b", 2},
	}
	got, ok := LatestUnlocked(table, 5)
	if !ok || got.name != "a" {
		t.Errorf("expected first of equal thresholds, got %v", got.name)
	}
}

func TestNextLocked(t *testing.T) {
	got, ok := NextLocked(fakeTable, 1.0)
	if !ok || got.name != "three-days" {
		t.Errorf("NextLocked(1.0) = %v; want three-days (threshold met is not next)", got.name)
	}

	if _, ok := NextLocked(fakeTable, 7.0); ok {
		t.Error("NextLocked past the whole table should report none")
	}
}

func TestProgressToNext(t *testing.T) {
	if got := ProgressToNext(3.5, 7); got != 0.5 {
		t.Errorf("ProgressToNext(3.5, 7) = %v, want 0.5", got)
	}
	if got := ProgressToNext(10, 7); got != 1 {
		t.Errorf("progress must clamp to 1, got %v", got)
	}
	if got := ProgressToNext(-1, 7); got != 0 {
		t.Errorf("progress must clamp to 0, got %v", got)
	}
	if got := ProgressToNext(5, 0); got != 1 {
		t.Errorf("non-positive threshold counts as reached, got %v", got)
	}
}

func TestDaysRemaining(t *testing.T) {
	if got := DaysRemaining(3.5, 7); got != 4 {
		t.Errorf("DaysRemaining(3.5, 7) = %d, want 4", got)
	}
	if got := DaysRemaining(7, 7); got != 0 {
		t.Errorf("DaysRemaining at threshold = %d, want 0", got)
	}
	if got := DaysRemaining(10, 7); got != 0 {
		t.Errorf("DaysRemaining past threshold = %d, want 0", got)
	}
}

func TestContentTables_WorkAsMilestones(t *testing.T) {
	// At 3.5 days the 3-day achievement is the latest and the week is next.
	latest, ok := LatestUnlocked(content.Achievements, 3.5)
	if !ok || latest.DaysRequired != 3 {
		t.Errorf("latest achievement at 3.5 days: got %v (ok=%v), want threshold 3", latest.DaysRequired, ok)
	}
	next, ok := NextLocked(content.Achievements, 3.5)
	if !ok || next.DaysRequired != 7 {
		t.Errorf("next achievement at 3.5 days: got %v (ok=%v), want threshold 7", next.DaysRequired, ok)
	}

	benefit, ok := NextLocked(content.HealthBenefits, 0)
	if !ok || benefit.Days <= 0 {
		t.Errorf("expected a first health benefit ahead at day zero, got %+v (ok=%v)", benefit, ok)
	}
}
