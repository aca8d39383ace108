package journal

import (
	"testing"
	"time"

	"github.com/exhale-app/exhale/internal/models"
)

func TestAppendCraving_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	original := []models.CravingEvent{
		{ID: "existing", Timestamp: now.Add(-time.Hour), Avoided: true, Intensity: 2},
	}

	next, event := AppendCraving(original, false, 5, now)

	if len(original) != 1 {
		t.Fatalf("input slice was mutated, len = %d", len(original))
	}
	if len(next) != 2 {
		t.Fatalf("expected 2 events, got %d", len(next))
	}
	if event.ID == "" || event.ID == "existing" {
		t.Errorf("expected a fresh ID, got %q", event.ID)
	}
	if !event.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", event.Timestamp, now)
	}
	if event.Avoided || event.Intensity != 5 {
		t.Errorf("event fields not carried: %+v", event)
	}
}

func TestAppendCraving_UniqueIDs(t *testing.T) {
	now := time.Now()
	var events []models.CravingEvent
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		var event models.CravingEvent
		events, event = AppendCraving(events, true, 3, now)
		if seen[event.ID] {
			t.Fatalf("duplicate ID generated: %s", event.ID)
		}
		seen[event.ID] = true
	}
}

func TestAppendMood(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	next, event := AppendMood(nil, models.MoodDifficult, "rough afternoon", now)

	if len(next) != 1 {
		t.Fatalf("expected 1 event, got %d", len(next))
	}
	if event.Mood != models.MoodDifficult || event.Note != "rough afternoon" {
		t.Errorf("event fields not carried: %+v", event)
	}
}

func TestUpsertDailyLog_NewEntry(t *testing.T) {
	logs, entry := UpsertDailyLog(nil, "2026-03-01", 2, "stressful day")

	if len(logs) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(logs))
	}
	if entry.ID == "" {
		t.Error("new entry should get an ID")
	}
	if entry.Date != "2026-03-01" || entry.Count != 2 || entry.Notes != "stressful day" {
		t.Errorf("entry fields not carried: %+v", entry)
	}
}

func TestUpsertDailyLog_SameDateReplacesKeepingID(t *testing.T) {
	logs, first := UpsertDailyLog(nil, "2026-03-01", 2, "slipped")
	logs, second := UpsertDailyLog(logs, "2026-03-01", 0, "corrected, clean day")

	if len(logs) != 1 {
		t.Fatalf("upsert on the same date must not grow the map, len = %d", len(logs))
	}
	if second.ID != first.ID {
		t.Errorf("re-logging a date must keep the entry ID: %s != %s", second.ID, first.ID)
	}
	if got := logs["2026-03-01"]; got.Count != 0 || got.Notes != "corrected, clean day" {
		t.Errorf("entry not replaced: %+v", got)
	}
}

func TestUpsertDailyLog_DoesNotMutateInput(t *testing.T) {
	logs, _ := UpsertDailyLog(nil, "2026-03-01", 1, "")
	next, _ := UpsertDailyLog(logs, "2026-03-02", 0, "")

	if len(logs) != 1 {
		t.Errorf("input map was mutated, len = %d", len(logs))
	}
	if len(next) != 2 {
		t.Errorf("expected 2 entries in the result, got %d", len(next))
	}
}

func TestUpsertDailyLog_NegativeCountClampsToZero(t *testing.T) {
	_, entry := UpsertDailyLog(nil, "2026-03-01", -4, "")
	if entry.Count != 0 {
		t.Errorf("negative count should clamp to 0, got %d", entry.Count)
	}
}

func TestRecentWindow_NewestFirst(t *testing.T) {
	var logs map[string]models.DailyLogEntry
	for _, date := range []string{"2026-02-27", "2026-03-02", "2026-02-28", "2026-03-01"} {
		logs, _ = UpsertDailyLog(logs, date, 0, "")
	}

	window := RecentWindow(logs, 3)

	want := []string{"2026-03-02", "2026-03-01", "2026-02-28"}
	if len(window) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(window))
	}
	for i, date := range want {
		if window[i].Date != date {
			t.Errorf("window[%d] = %s, want %s", i, window[i].Date, date)
		}
	}
}

func TestRecentWindow_EmptyAndZero(t *testing.T) {
	if got := RecentWindow(nil, 5); len(got) != 0 {
		t.Errorf("empty logs should give empty window, got %d", len(got))
	}
	logs, _ := UpsertDailyLog(nil, "2026-03-01", 0, "")
	if got := RecentWindow(logs, 0); got != nil {
		t.Errorf("zero window should be nil, got %v", got)
	}
}

func TestRelapseRisk(t *testing.T) {
	var logs map[string]models.DailyLogEntry
	logs, _ = UpsertDailyLog(logs, "2026-03-01", 0, "")
	logs, _ = UpsertDailyLog(logs, "2026-03-02", 0, "")
	logs, _ = UpsertDailyLog(logs, "2026-03-03", 0, "")

	if RelapseRisk(logs) {
		t.Error("three clean days should not flag relapse risk")
	}

	logs, _ = UpsertDailyLog(logs, "2026-03-04", 2, "")
	if !RelapseRisk(logs) {
		t.Error("consumption in the window should flag relapse risk")
	}

	// The slip ages out of the window after three newer clean days.
	logs, _ = UpsertDailyLog(logs, "2026-03-05", 0, "")
	logs, _ = UpsertDailyLog(logs, "2026-03-06", 0, "")
	logs, _ = UpsertDailyLog(logs, "2026-03-07", 0, "")
	if RelapseRisk(logs) {
		t.Error("slip outside the recent window should not flag risk")
	}
}

func TestCountWhere(t *testing.T) {
	now := time.Now()
	var events []models.CravingEvent
	events, _ = AppendCraving(events, true, 3, now)
	events, _ = AppendCraving(events, false, 5, now)
	events, _ = AppendCraving(events, true, 1, now)

	avoided := CountWhere(events, func(c models.CravingEvent) bool { return c.Avoided })
	if avoided != 2 {
		t.Errorf("avoided count = %d, want 2", avoided)
	}

	strong := CountWhere(events, func(c models.CravingEvent) bool { return c.Intensity >= 5 })
	if strong != 1 {
		t.Errorf("strong count = %d, want 1", strong)
	}
}
