package storage

import "github.com/exhale-app/exhale/internal/models"

// Provider is the persistence boundary. Collections are read and written
// whole; each Save replaces the stored collection atomically for its key, so
// callers follow a read-modify-write cycle and treat a returned error as
// "nothing committed".
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Craving log
	GetCravings() ([]models.CravingEvent, error)
	SaveCravings([]models.CravingEvent) error

	// Mood log
	GetMoods() ([]models.MoodEvent, error)
	SaveMoods([]models.MoodEvent) error

	// Daily logs, keyed by YYYY-MM-DD date
	GetDailyLogs() (map[string]models.DailyLogEntry, error)
	SaveDailyLogs(map[string]models.DailyLogEntry) error

	// Reset clears every record group and restores the default profile.
	Reset() error

	// Utils
	GetConfigPath() string
}
