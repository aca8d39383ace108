package cli

import (
	"fmt"
	"time"

	"github.com/exhale-app/exhale/internal/app"
	"github.com/exhale-app/exhale/internal/content"
	"github.com/exhale-app/exhale/internal/stats"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	session, err := app.NewSession(ctx.Store)
	if err != nil {
		return err
	}

	if !session.Profile.IsOnboarded {
		fmt.Println("No quit profile yet. Run 'exhale onboard' first.")
		return nil
	}

	snap := session.Stats(time.Now())
	profile := session.Profile

	fmt.Printf("Smoke-free for %s\n\n", formatElapsed(snap.Elapsed))
	fmt.Printf("  %-18s %d\n", "Units avoided:", snap.Projection.UnitsAvoided)
	fmt.Printf("  %-18s %s\n", "Money saved:", formatMoney(snap.Projection.MoneySaved, profile.Currency))
	fmt.Printf("  %-18s %dh\n", "Life regained:", snap.LifeGainedHours)
	fmt.Printf("  %-18s %d/%d resisted\n", "Cravings:", snap.CravingsAvoided, snap.TotalCravings)
	fmt.Printf("  %-18s day %d of %d\n", "Program:", snap.ProgramDay, stats.ProgramLength)

	if snap.Projection.MoneySaved > 0 {
		fmt.Printf("\nThat's roughly")
		for i, item := range content.SavingsItems {
			sep := " or"
			if i == 0 {
				sep = ""
			}
			fmt.Printf("%s %d %s", sep, stats.SavingsEquivalent(snap.Projection.MoneySaved, item.Cost), item.Label)
		}
		fmt.Println(".")
	}

	if next, ok := stats.NextLocked(content.HealthBenefits, snap.Elapsed.Days); ok {
		progress := stats.ProgressToNext(snap.Elapsed.Days, next.Days)
		remaining := stats.DaysRemaining(snap.Elapsed.Days, next.Days)
		fmt.Printf("\nNext benefit: %s (%.0f%%, %d day(s) to go)\n", next.Title, progress*100, remaining)
	}

	if session.RelapseRisk() {
		fmt.Println("\n⚠ Recent daily logs show consumption. Consider 'exhale breathe' when a craving hits.")
	}

	tip := content.TipFor(snap.Elapsed.Days)
	fmt.Printf("\nTip of the day: %s\n  %s\n", tip.Title, tip.Content)

	return nil
}
