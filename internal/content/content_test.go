package content

import (
	"testing"
	"time"
)

func TestAchievements_SortedAscendingAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	prev := -1.0
	for _, a := range Achievements {
		if a.DaysRequired <= prev {
			t.Errorf("achievement %s breaks ascending threshold order (%v after %v)", a.ID, a.DaysRequired, prev)
		}
		prev = a.DaysRequired
		if seen[a.ID] {
			t.Errorf("duplicate achievement ID %s", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" || a.Description == "" {
			t.Errorf("achievement %s has empty display text", a.ID)
		}
	}
}

func TestAchievements_FirstUnlocksWithinAnHour(t *testing.T) {
	if len(Achievements) == 0 {
		t.Fatal("no achievements defined")
	}
	if got := Achievements[0].DaysRequired; got != 1.0/24.0 {
		t.Errorf("first achievement threshold = %v, want one hour (1/24 days)", got)
	}
}

func TestHealthBenefits_SortedAscending(t *testing.T) {
	prev := 0.0
	for i, b := range HealthBenefits {
		if b.Days <= prev && i > 0 {
			t.Errorf("benefit %q breaks ascending order (%v after %v)", b.Title, b.Days, prev)
		}
		prev = b.Days
	}
}

func TestProgram_CoversEveryDayInOrder(t *testing.T) {
	if len(Program) != 30 {
		t.Fatalf("program has %d days, want 30", len(Program))
	}
	for i, d := range Program {
		if d.Day != i+1 {
			t.Errorf("Program[%d].Day = %d, want %d", i, d.Day, i+1)
		}
		if d.Challenge == "" || d.HealthTip == "" || d.MentalExercise == "" || d.MotivationalMessage == "" {
			t.Errorf("day %d has empty content fields", d.Day)
		}
	}
}

func TestProgram_FreeDays(t *testing.T) {
	free := map[int]bool{1: true, 2: true, 3: true, 7: true, 14: true, 21: true, 30: true}
	for _, d := range Program {
		if d.IsPremium == free[d.Day] {
			t.Errorf("day %d premium flag = %v, want %v", d.Day, d.IsPremium, !free[d.Day])
		}
	}
}

func TestProgramDayAt_Clamps(t *testing.T) {
	if got := ProgramDayAt(0); got.Day != 1 {
		t.Errorf("ProgramDayAt(0).Day = %d, want 1", got.Day)
	}
	if got := ProgramDayAt(99); got.Day != 30 {
		t.Errorf("ProgramDayAt(99).Day = %d, want 30", got.Day)
	}
	if got := ProgramDayAt(17); got.Day != 17 {
		t.Errorf("ProgramDayAt(17).Day = %d, want 17", got.Day)
	}
}

func TestTipFor(t *testing.T) {
	if got := TipFor(-2); got != DailyTips[0] {
		t.Errorf("negative elapsed should give the first tip")
	}
	if got := TipFor(0.9); got != DailyTips[0] {
		t.Errorf("day one (0.9 elapsed) should give the first tip")
	}
	if got := TipFor(5.2); got != DailyTips[5] {
		t.Errorf("5.2 elapsed should floor to index 5")
	}
	if got := TipFor(500); got != FallbackTip {
		t.Errorf("past the tip table the fallback applies, got %+v", got)
	}
}

func TestBreathingCycle_PhaseAt(t *testing.T) {
	var total time.Duration
	for _, p := range BreathingCycle {
		if p.Duration <= 0 {
			t.Fatalf("phase %q has non-positive duration", p.Label)
		}
		total += p.Duration
	}

	phase, remaining := PhaseAt(0)
	if phase.Label != BreathingCycle[0].Label {
		t.Errorf("offset 0 should land in the first phase, got %q", phase.Label)
	}
	if remaining != BreathingCycle[0].Duration {
		t.Errorf("remaining at offset 0 = %v, want %v", remaining, BreathingCycle[0].Duration)
	}

	// One full cycle later the first phase starts over.
	phase, _ = PhaseAt(total)
	if phase.Label != BreathingCycle[0].Label {
		t.Errorf("offset of one full cycle should wrap to the first phase, got %q", phase.Label)
	}

	// Just into the second phase.
	phase, _ = PhaseAt(BreathingCycle[0].Duration + time.Millisecond)
	if phase.Label != BreathingCycle[1].Label {
		t.Errorf("expected second phase, got %q", phase.Label)
	}
}
