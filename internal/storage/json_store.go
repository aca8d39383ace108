package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/exhale-app/exhale/internal/models"
)

// Store is the JSON file layout: one document holding all four record
// groups, mirroring the app's logical storage keys.
type Store struct {
	Version   int                             `json:"version"`
	Profile   models.UserProfile              `json:"profile"`
	Cravings  []models.CravingEvent           `json:"cravings"`
	Moods     []models.MoodEvent              `json:"moods"`
	DailyLogs map[string]models.DailyLogEntry `json:"daily_logs"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

func defaultStore() *Store {
	return &Store{
		Version:   1,
		Profile:   models.DefaultProfile(time.Now()),
		Cravings:  []models.CravingEvent{},
		Moods:     []models.MoodEvent{},
		DailyLogs: make(map[string]models.DailyLogEntry),
	}
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'exhale init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.store.Cravings == nil {
		s.store.Cravings = []models.CravingEvent{}
	}
	if s.store.Moods == nil {
		s.store.Moods = []models.MoodEvent{}
	}
	if s.store.DailyLogs == nil {
		s.store.DailyLogs = make(map[string]models.DailyLogEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	if s.store == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Profile = profile
	return s.save()
}

func (s *JSONStore) GetCravings() ([]models.CravingEvent, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	out := make([]models.CravingEvent, len(s.store.Cravings))
	copy(out, s.store.Cravings)
	return out, nil
}

func (s *JSONStore) SaveCravings(events []models.CravingEvent) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Cravings = events
	return s.save()
}

func (s *JSONStore) GetMoods() ([]models.MoodEvent, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	out := make([]models.MoodEvent, len(s.store.Moods))
	copy(out, s.store.Moods)
	return out, nil
}

func (s *JSONStore) SaveMoods(events []models.MoodEvent) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Moods = events
	return s.save()
}

func (s *JSONStore) GetDailyLogs() (map[string]models.DailyLogEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	out := make(map[string]models.DailyLogEntry, len(s.store.DailyLogs))
	for k, v := range s.store.DailyLogs {
		out[k] = v
	}
	return out, nil
}

func (s *JSONStore) SaveDailyLogs(logs map[string]models.DailyLogEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.DailyLogs = logs
	return s.save()
}

func (s *JSONStore) Reset() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store = defaultStore()
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple exhale processes sharing the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
