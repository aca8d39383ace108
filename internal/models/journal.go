package models

import "time"

// CravingEvent is a point-in-time record of an urge. Events are append-only
// and immutable once created.
type CravingEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Avoided   bool      `json:"avoided"`
	Intensity int       `json:"intensity"`
}

type Mood string

const (
	MoodExcellent  Mood = "excellent"
	MoodGood       Mood = "good"
	MoodOkay       Mood = "okay"
	MoodDifficult  Mood = "difficult"
	MoodStruggling Mood = "struggling"
)

// MoodEvent is a point-in-time self-report, same lifecycle as CravingEvent.
type MoodEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      Mood      `json:"mood"`
	Note      string    `json:"note,omitempty"`
}

// DailyLogEntry records consumption for one calendar date. Date uses the
// device-local YYYY-MM-DD form; there is at most one entry per date.
type DailyLogEntry struct {
	ID    string `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD format
	Count int    `json:"count"`
	Notes string `json:"notes,omitempty"`
}
