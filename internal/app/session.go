// Package app owns the in-memory mirror of the persisted user records for
// the duration of a run. The Session is constructed once at the top level
// and handed by reference to whatever needs it; derived statistics are
// computed from its snapshots, never stored on it.
package app

import (
	"fmt"
	"time"

	"github.com/exhale-app/exhale/internal/journal"
	"github.com/exhale-app/exhale/internal/models"
	"github.com/exhale-app/exhale/internal/stats"
	"github.com/exhale-app/exhale/internal/storage"
)

type Session struct {
	store storage.Provider

	Profile   models.UserProfile
	Cravings  []models.CravingEvent
	Moods     []models.MoodEvent
	DailyLogs map[string]models.DailyLogEntry
}

// NewSession loads the store and mirrors all four record groups into memory.
func NewSession(store storage.Provider) (*Session, error) {
	if err := store.Load(); err != nil {
		return nil, err
	}

	profile, err := store.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	cravings, err := store.GetCravings()
	if err != nil {
		return nil, fmt.Errorf("failed to load craving log: %w", err)
	}
	moods, err := store.GetMoods()
	if err != nil {
		return nil, fmt.Errorf("failed to load mood log: %w", err)
	}
	logs, err := store.GetDailyLogs()
	if err != nil {
		return nil, fmt.Errorf("failed to load daily logs: %w", err)
	}

	return &Session{
		store:     store,
		Profile:   profile,
		Cravings:  cravings,
		Moods:     moods,
		DailyLogs: logs,
	}, nil
}

// AddCraving records an urge now. The in-memory collection is only replaced
// once the store has acknowledged the write; on error the visible state is
// unchanged.
func (s *Session) AddCraving(avoided bool, intensity int) (models.CravingEvent, error) {
	next, event := journal.AppendCraving(s.Cravings, avoided, intensity, time.Now())
	if err := s.store.SaveCravings(next); err != nil {
		return models.CravingEvent{}, fmt.Errorf("failed to save craving log: %w", err)
	}
	s.Cravings = next
	return event, nil
}

// AddMood records a self-report now.
func (s *Session) AddMood(mood models.Mood, note string) (models.MoodEvent, error) {
	next, event := journal.AppendMood(s.Moods, mood, note, time.Now())
	if err := s.store.SaveMoods(next); err != nil {
		return models.MoodEvent{}, fmt.Errorf("failed to save mood log: %w", err)
	}
	s.Moods = next
	return event, nil
}

// LogToday upserts the daily log for the current local calendar date. Past
// dates are not editable through this path.
func (s *Session) LogToday(count int, notes string) (models.DailyLogEntry, error) {
	today := time.Now().Format(journal.DateFormat)
	next, entry := journal.UpsertDailyLog(s.DailyLogs, today, count, notes)
	if err := s.store.SaveDailyLogs(next); err != nil {
		return models.DailyLogEntry{}, fmt.Errorf("failed to save daily logs: %w", err)
	}
	s.DailyLogs = next
	return entry, nil
}

// TodayLog returns today's entry if one exists.
func (s *Session) TodayLog() (models.DailyLogEntry, bool) {
	entry, ok := s.DailyLogs[time.Now().Format(journal.DateFormat)]
	return entry, ok
}

// UpdateProfile persists the new profile wholesale, then makes it visible.
func (s *Session) UpdateProfile(profile models.UserProfile) error {
	if err := s.store.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.Profile = profile
	return nil
}

// Reset clears every record group and restores the default profile, in the
// store first and in memory only once that succeeds.
func (s *Session) Reset() error {
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	profile, err := s.store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to reload profile after reset: %w", err)
	}
	s.Profile = profile
	s.Cravings = []models.CravingEvent{}
	s.Moods = []models.MoodEvent{}
	s.DailyLogs = make(map[string]models.DailyLogEntry)
	return nil
}

// Stats computes the derived figures for the given instant.
func (s *Session) Stats(now time.Time) stats.Snapshot {
	return stats.Compute(s.Profile, s.Cravings, now)
}

// RelapseRisk reports whether recent daily logs show consumption.
func (s *Session) RelapseRisk() bool {
	return journal.RelapseRisk(s.DailyLogs)
}
