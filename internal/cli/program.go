package cli

import (
	"fmt"
	"time"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/content"
	"github.com/exhale-app/exhale/internal/stats"
)

type ProgramCmd struct {
	Day int `arg:"" optional:"" help:"Program day to show (1-30, default: current)."`
}

func (c *ProgramCmd) Validate() error {
	if c.Day != 0 && (c.Day < 1 || c.Day > stats.ProgramLength) {
		return fmt.Errorf("day must be between 1 and %d", stats.ProgramLength)
	}
	return nil
}

func (c *ProgramCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	snap := session.Stats(time.Now())
	currentDay := snap.ProgramDay

	day := c.Day
	if day == 0 {
		day = currentDay
	}

	entry := content.ProgramDayAt(day)

	header := fmt.Sprintf("Day %d of %d", entry.Day, stats.ProgramLength)
	switch {
	case entry.Day == currentDay:
		header += " (today)"
	case entry.Day < currentDay:
		header += " (completed)"
	default:
		header += " (upcoming)"
	}
	fmt.Println(header)

	if entry.IsPremium {
		fmt.Println("★ Premium day")
	}

	fmt.Printf("\n  Challenge:  %s\n", entry.Challenge)
	fmt.Printf("  Health:     %s\n", entry.HealthTip)
	fmt.Printf("  Mind:       %s\n", entry.MentalExercise)
	fmt.Printf("\n  %s\n", entry.MotivationalMessage)

	return nil
}
