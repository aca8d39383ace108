package stats

import "time"

const (
	msPerDay    = 1000 * 60 * 60 * 24
	msPerHour   = 1000 * 60 * 60
	msPerMinute = 1000 * 60
)

// ElapsedTime holds continuous totals since the quit date. Hours and Minutes
// are totals, not remainders within the current day or hour; callers wanting
// a wrapped display use the HoursPart/MinutesPart/SecondsPart helpers.
type ElapsedTime struct {
	Days    float64
	Hours   float64
	Minutes float64
}

// Elapsed computes the time elapsed between the quit date and now. All fields
// clamp to zero when now precedes quit (clock skew, or a quit date edited into
// the future).
func Elapsed(quit, now time.Time) ElapsedTime {
	ms := float64(now.Sub(quit).Milliseconds())
	if ms < 0 {
		ms = 0
	}
	return ElapsedTime{
		Days:    ms / msPerDay,
		Hours:   ms / msPerHour,
		Minutes: ms / msPerMinute,
	}
}

// DaysPart returns whole days for display.
func (e ElapsedTime) DaysPart() int { return int(e.Days) }

// HoursPart returns hours within the current day (0-23).
func (e ElapsedTime) HoursPart() int { return int(e.Hours) % 24 }

// MinutesPart returns minutes within the current hour (0-59).
func (e ElapsedTime) MinutesPart() int { return int(e.Minutes) % 60 }

// SecondsPart returns seconds within the current minute (0-59).
func (e ElapsedTime) SecondsPart() int { return int(e.Minutes*60) % 60 }
