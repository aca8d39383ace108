package app

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/exhale-app/exhale/internal/models"
	"github.com/exhale-app/exhale/internal/storage"
)

func setupTestSession(t *testing.T) *Session {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "exhale.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	session, err := NewSession(store)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func TestSession_AddCraving(t *testing.T) {
	session := setupTestSession(t)

	event, err := session.AddCraving(true, 4)
	if err != nil {
		t.Fatalf("AddCraving failed: %v", err)
	}
	if event.ID == "" || !event.Avoided || event.Intensity != 4 {
		t.Errorf("event fields wrong: %+v", event)
	}
	if len(session.Cravings) != 1 {
		t.Errorf("expected 1 craving in memory, got %d", len(session.Cravings))
	}

	snap := session.Stats(time.Now())
	if snap.CravingsAvoided != 1 || snap.TotalCravings != 1 {
		t.Errorf("snapshot counts wrong: %+v", snap)
	}
}

func TestSession_LogTodayTwiceKeepsOneEntry(t *testing.T) {
	session := setupTestSession(t)

	first, err := session.LogToday(2, "slipped twice")
	if err != nil {
		t.Fatalf("first LogToday failed: %v", err)
	}
	second, err := session.LogToday(0, "miscounted, clean day")
	if err != nil {
		t.Fatalf("second LogToday failed: %v", err)
	}

	if len(session.DailyLogs) != 1 {
		t.Fatalf("expected one entry for today, got %d", len(session.DailyLogs))
	}
	if second.ID != first.ID {
		t.Errorf("re-logging today must keep the entry ID")
	}

	entry, ok := session.TodayLog()
	if !ok || entry.Count != 0 || entry.Notes != "miscounted, clean day" {
		t.Errorf("today's entry wrong: %+v ok=%v", entry, ok)
	}
}

func TestSession_Reset(t *testing.T) {
	session := setupTestSession(t)

	if _, err := session.AddCraving(false, 5); err != nil {
		t.Fatalf("AddCraving failed: %v", err)
	}
	if _, err := session.LogToday(3, ""); err != nil {
		t.Fatalf("LogToday failed: %v", err)
	}
	if err := session.UpdateProfile(models.UserProfile{IsOnboarded: true, DailyConsumption: 20, CostPerUnit: 0.5}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if err := session.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if session.Profile.IsOnboarded {
		t.Error("reset should clear onboarding")
	}
	if len(session.Cravings) != 0 || len(session.Moods) != 0 || len(session.DailyLogs) != 0 {
		t.Error("reset should clear all collections")
	}
	if session.RelapseRisk() {
		t.Error("no relapse risk after reset")
	}
}

// failingStore delegates reads to a real store but fails every write, to
// verify errors leave the in-memory state untouched.
type failingStore struct {
	storage.Provider
}

func (f *failingStore) SaveCravings([]models.CravingEvent) error {
	return fmt.Errorf("disk full")
}

func (f *failingStore) SaveMoods([]models.MoodEvent) error {
	return fmt.Errorf("disk full")
}

func (f *failingStore) SaveDailyLogs(map[string]models.DailyLogEntry) error {
	return fmt.Errorf("disk full")
}

func (f *failingStore) SaveProfile(models.UserProfile) error {
	return fmt.Errorf("disk full")
}

func TestSession_FailedWriteLeavesMemoryUnchanged(t *testing.T) {
	inner := storage.NewJSONStore(filepath.Join(t.TempDir(), "exhale.json"))
	if err := inner.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	session, err := NewSession(&failingStore{Provider: inner})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	originalProfile := session.Profile

	if _, err := session.AddCraving(true, 3); err == nil {
		t.Fatal("expected AddCraving to surface the store error")
	}
	if len(session.Cravings) != 0 {
		t.Error("failed craving write must not appear in memory")
	}

	if _, err := session.AddMood(models.MoodOkay, ""); err == nil {
		t.Fatal("expected AddMood to surface the store error")
	}
	if len(session.Moods) != 0 {
		t.Error("failed mood write must not appear in memory")
	}

	if _, err := session.LogToday(1, ""); err == nil {
		t.Fatal("expected LogToday to surface the store error")
	}
	if len(session.DailyLogs) != 0 {
		t.Error("failed log write must not appear in memory")
	}

	if err := session.UpdateProfile(models.UserProfile{IsOnboarded: true}); err == nil {
		t.Fatal("expected UpdateProfile to surface the store error")
	}
	if session.Profile != originalProfile {
		t.Error("failed profile write must not replace the in-memory profile")
	}
}
