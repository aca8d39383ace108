package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/exhale-app/exhale/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exhale.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_InitSeedsDefaultProfile(t *testing.T) {
	store := setupTestSQLiteStore(t)

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile after init failed: %v", err)
	}
	if profile.IsOnboarded {
		t.Error("seeded profile should not be onboarded")
	}
	if profile.ConsumptionType != models.ConsumptionCigarettes {
		t.Errorf("seeded consumption type = %s, want cigarettes", profile.ConsumptionType)
	}
}

func TestSQLiteStore_ProfileRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	quit := time.Date(2026, 2, 14, 20, 30, 0, 0, time.UTC)
	profile := models.UserProfile{
		ConsumptionType:  models.ConsumptionNicotine,
		QuitDate:         quit,
		DailyConsumption: 12,
		CostPerUnit:      0.75,
		Currency:         "£",
		IsOnboarded:      true,
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.ConsumptionType != models.ConsumptionNicotine || !got.QuitDate.Equal(quit) ||
		got.DailyConsumption != 12 || got.CostPerUnit != 0.75 || got.Currency != "£" || !got.IsOnboarded {
		t.Errorf("profile did not round-trip: %+v", got)
	}
}

func TestSQLiteStore_CravingsRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	events := []models.CravingEvent{
		{ID: "c1", Timestamp: now, Avoided: true, Intensity: 2},
		{ID: "c2", Timestamp: now.Add(time.Hour), Avoided: false, Intensity: 5},
	}
	if err := store.SaveCravings(events); err != nil {
		t.Fatalf("SaveCravings failed: %v", err)
	}

	got, err := store.GetCravings()
	if err != nil {
		t.Fatalf("GetCravings failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cravings, got %d", len(got))
	}
	if got[0].ID != "c1" || !got[0].Avoided || got[0].Intensity != 2 {
		t.Errorf("first craving did not round-trip: %+v", got[0])
	}
	if !got[1].Timestamp.Equal(now.Add(time.Hour)) {
		t.Errorf("timestamp did not round-trip: %v", got[1].Timestamp)
	}
}

func TestSQLiteStore_SaveReplacesCollection(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.SaveMoods([]models.MoodEvent{
		{ID: "m1", Timestamp: time.Now(), Mood: models.MoodOkay},
		{ID: "m2", Timestamp: time.Now(), Mood: models.MoodGood},
	}); err != nil {
		t.Fatalf("first SaveMoods failed: %v", err)
	}

	// A later save is the whole new collection, not an append.
	if err := store.SaveMoods([]models.MoodEvent{
		{ID: "m3", Timestamp: time.Now(), Mood: models.MoodStruggling, Note: "only survivor"},
	}); err != nil {
		t.Fatalf("second SaveMoods failed: %v", err)
	}

	got, err := store.GetMoods()
	if err != nil {
		t.Fatalf("GetMoods failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m3" {
		t.Errorf("save should replace the collection, got %+v", got)
	}
}

func TestSQLiteStore_DailyLogsRoundTrip(t *testing.T) {
	store := setupTestSQLiteStore(t)

	logs := map[string]models.DailyLogEntry{
		"2026-03-01": {ID: "d1", Date: "2026-03-01", Count: 0, Notes: "clean"},
		"2026-03-02": {ID: "d2", Date: "2026-03-02", Count: 3, Notes: "hard day"},
	}
	if err := store.SaveDailyLogs(logs); err != nil {
		t.Fatalf("SaveDailyLogs failed: %v", err)
	}

	got, err := store.GetDailyLogs()
	if err != nil {
		t.Fatalf("GetDailyLogs failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(got))
	}
	if got["2026-03-02"].Count != 3 || got["2026-03-02"].Notes != "hard day" {
		t.Errorf("daily log did not round-trip: %+v", got["2026-03-02"])
	}
}

func TestSQLiteStore_Reset(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if err := store.SaveProfile(models.UserProfile{IsOnboarded: true, DailyConsumption: 20}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := store.SaveCravings([]models.CravingEvent{{ID: "c1", Timestamp: time.Now()}}); err != nil {
		t.Fatalf("SaveCravings failed: %v", err)
	}
	if err := store.SaveDailyLogs(map[string]models.DailyLogEntry{
		"2026-03-01": {ID: "d1", Date: "2026-03-01", Count: 1},
	}); err != nil {
		t.Fatalf("SaveDailyLogs failed: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	profile, err := store.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile after reset failed: %v", err)
	}
	if profile.IsOnboarded {
		t.Error("reset should restore the default profile")
	}
	cravings, _ := store.GetCravings()
	if len(cravings) != 0 {
		t.Errorf("reset should clear cravings, got %d", len(cravings))
	}
	logs, _ := store.GetDailyLogs()
	if len(logs) != 0 {
		t.Errorf("reset should clear daily logs, got %d", len(logs))
	}
}
