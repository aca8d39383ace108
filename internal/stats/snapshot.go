package stats

import (
	"time"

	"github.com/exhale-app/exhale/internal/journal"
	"github.com/exhale-app/exhale/internal/models"
)

// Snapshot is the full set of derived figures for one instant. It is
// recomputed on demand (the TUI does so every second); nothing here is
// persisted.
type Snapshot struct {
	Elapsed         ElapsedTime
	Projection      Projection
	LifeGainedHours int
	CravingsAvoided int
	TotalCravings   int
	ProgramDay      int
}

// Compute derives a Snapshot from the current profile and craving log. The
// caller supplies now so displays tick and tests pin time.
func Compute(profile models.UserProfile, cravings []models.CravingEvent, now time.Time) Snapshot {
	elapsed := Elapsed(profile.QuitDate, now)
	return Snapshot{
		Elapsed:         elapsed,
		Projection:      Project(elapsed.Days, profile.DailyConsumption, profile.CostPerUnit),
		LifeGainedHours: LifeGainedHours(elapsed.Days),
		CravingsAvoided: journal.CountWhere(cravings, func(c models.CravingEvent) bool { return c.Avoided }),
		TotalCravings:   len(cravings),
		ProgramDay:      SelectDay(elapsed.Days),
	}
}
