// Package journal holds the pure in-memory transforms over the user's event
// collections. Every operation returns a new collection and leaves its input
// untouched; the caller treats the return value as the new authoritative
// state once persistence has acknowledged it.
package journal

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/exhale-app/exhale/internal/models"
)

// DateFormat is the calendar-date key for daily logs, device-local.
const DateFormat = "2006-01-02"

// AppendCraving records an urge at now. ID and timestamp are assigned here,
// never caller-supplied.
func AppendCraving(events []models.CravingEvent, avoided bool, intensity int, now time.Time) ([]models.CravingEvent, models.CravingEvent) {
	event := models.CravingEvent{
		ID:        uuid.New().String(),
		Timestamp: now,
		Avoided:   avoided,
		Intensity: intensity,
	}
	next := make([]models.CravingEvent, len(events), len(events)+1)
	copy(next, events)
	return append(next, event), event
}

// AppendMood records a self-report at now.
func AppendMood(events []models.MoodEvent, mood models.Mood, note string, now time.Time) ([]models.MoodEvent, models.MoodEvent) {
	event := models.MoodEvent{
		ID:        uuid.New().String(),
		Timestamp: now,
		Mood:      mood,
		Note:      note,
	}
	next := make([]models.MoodEvent, len(events), len(events)+1)
	copy(next, events)
	return append(next, event), event
}

// CountWhere counts craving events matching the predicate.
func CountWhere(events []models.CravingEvent, pred func(models.CravingEvent) bool) int {
	n := 0
	for _, e := range events {
		if pred(e) {
			n++
		}
	}
	return n
}

// UpsertDailyLog writes the log for one calendar date. An existing entry for
// the date keeps its ID and has count/notes replaced; otherwise a fresh
// entry is created. The map keying makes the one-entry-per-date invariant
// structural rather than scan-enforced.
func UpsertDailyLog(logs map[string]models.DailyLogEntry, date string, count int, notes string) (map[string]models.DailyLogEntry, models.DailyLogEntry) {
	if count < 0 {
		count = 0
	}
	entry, ok := logs[date]
	if ok {
		entry.Count = count
		entry.Notes = notes
	} else {
		entry = models.DailyLogEntry{
			ID:    uuid.New().String(),
			Date:  date,
			Count: count,
			Notes: notes,
		}
	}
	next := make(map[string]models.DailyLogEntry, len(logs)+1)
	for k, v := range logs {
		next[k] = v
	}
	next[date] = entry
	return next, entry
}

// RecentWindow returns the most recent n daily logs, newest first. The
// YYYY-MM-DD keys sort lexicographically in date order.
func RecentWindow(logs map[string]models.DailyLogEntry, n int) []models.DailyLogEntry {
	if n <= 0 {
		return nil
	}
	dates := make([]string, 0, len(logs))
	for date := range logs {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > n {
		dates = dates[:n]
	}
	out := make([]models.DailyLogEntry, 0, len(dates))
	for _, date := range dates {
		out = append(out, logs[date])
	}
	return out
}

// relapseWindow is how many recent daily logs feed the relapse signal.
const relapseWindow = 3

// RelapseRisk reports whether any of the last few daily logs recorded
// consumption.
func RelapseRisk(logs map[string]models.DailyLogEntry) bool {
	for _, entry := range RecentWindow(logs, relapseWindow) {
		if entry.Count > 0 {
			return true
		}
	}
	return false
}
