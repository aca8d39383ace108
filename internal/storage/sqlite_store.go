package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/exhale-app/exhale/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	consumption_type TEXT NOT NULL,
	quit_date TEXT NOT NULL,
	daily_consumption REAL NOT NULL,
	cost_per_unit REAL NOT NULL,
	currency TEXT NOT NULL,
	is_onboarded INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS cravings (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	avoided INTEGER NOT NULL,
	intensity INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS moods (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	mood TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS daily_logs (
	date TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	count INTEGER NOT NULL,
	notes TEXT NOT NULL DEFAULT ''
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the default profile if this is a fresh database
	if _, err := s.GetProfile(); err != nil {
		if err := s.SaveProfile(models.DefaultProfile(time.Now())); err != nil {
			return fmt.Errorf("failed to save default profile: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'exhale init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetProfile() (models.UserProfile, error) {
	row := s.db.QueryRow(`
		SELECT consumption_type, quit_date, daily_consumption, cost_per_unit, currency, is_onboarded
		FROM profile WHERE id = 1`)

	var p models.UserProfile
	var consumptionType, quitDate string
	var onboarded bool
	if err := row.Scan(&consumptionType, &quitDate, &p.DailyConsumption, &p.CostPerUnit, &p.Currency, &onboarded); err != nil {
		return models.UserProfile{}, err
	}

	p.ConsumptionType = models.ConsumptionType(consumptionType)
	p.IsOnboarded = onboarded

	quit, err := time.Parse(time.RFC3339, quitDate)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("invalid quit date in profile: %w", err)
	}
	p.QuitDate = quit

	return p, nil
}

func (s *SQLiteStore) SaveProfile(profile models.UserProfile) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO profile (id, consumption_type, quit_date, daily_consumption, cost_per_unit, currency, is_onboarded)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		string(profile.ConsumptionType), profile.QuitDate.Format(time.RFC3339),
		profile.DailyConsumption, profile.CostPerUnit, profile.Currency, profile.IsOnboarded,
	)
	return err
}

func (s *SQLiteStore) GetCravings() ([]models.CravingEvent, error) {
	rows, err := s.db.Query("SELECT id, timestamp, avoided, intensity FROM cravings ORDER BY timestamp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CravingEvent
	for rows.Next() {
		var e models.CravingEvent
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Avoided, &e.Intensity); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("invalid craving timestamp: %w", err)
		}
		e.Timestamp = t
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *SQLiteStore) SaveCravings(events []models.CravingEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Whole-collection replace keeps the stored log identical to the
	// in-memory collection after the write.
	if _, err := tx.Exec("DELETE FROM cravings"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO cravings (id, timestamp, avoided, intensity) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(e.ID, e.Timestamp.Format(time.RFC3339), e.Avoided, e.Intensity); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetMoods() ([]models.MoodEvent, error) {
	rows, err := s.db.Query("SELECT id, timestamp, mood, note FROM moods ORDER BY timestamp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.MoodEvent
	for rows.Next() {
		var e models.MoodEvent
		var ts, mood string
		if err := rows.Scan(&e.ID, &ts, &mood, &e.Note); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("invalid mood timestamp: %w", err)
		}
		e.Timestamp = t
		e.Mood = models.Mood(mood)
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *SQLiteStore) SaveMoods(events []models.MoodEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM moods"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO moods (id, timestamp, mood, note) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(e.ID, e.Timestamp.Format(time.RFC3339), string(e.Mood), e.Note); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetDailyLogs() (map[string]models.DailyLogEntry, error) {
	rows, err := s.db.Query("SELECT date, id, count, notes FROM daily_logs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make(map[string]models.DailyLogEntry)
	for rows.Next() {
		var entry models.DailyLogEntry
		if err := rows.Scan(&entry.Date, &entry.ID, &entry.Count, &entry.Notes); err != nil {
			return nil, err
		}
		logs[entry.Date] = entry
	}

	return logs, rows.Err()
}

func (s *SQLiteStore) SaveDailyLogs(logs map[string]models.DailyLogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM daily_logs"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO daily_logs (date, id, count, notes) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range logs {
		if _, err := stmt.Exec(entry.Date, entry.ID, entry.Count, entry.Notes); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"cravings", "moods", "daily_logs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	p := models.DefaultProfile(time.Now())
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO profile (id, consumption_type, quit_date, daily_consumption, cost_per_unit, currency, is_onboarded)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		string(p.ConsumptionType), p.QuitDate.Format(time.RFC3339),
		p.DailyConsumption, p.CostPerUnit, p.Currency, p.IsOnboarded,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for diagnostics (doctor command).
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
